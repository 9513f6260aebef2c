package routes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyProtectedPrefixes(t *testing.T) {
	for _, p := range ProtectedPaths() {
		assert.Equal(t, RouteClassProtected, Classify(p), "exact %s", p)
		assert.Equal(t, RouteClassProtected, Classify(p+"/anything"), "subpath of %s", p)
	}
}

func TestClassifyAdminPrefixes(t *testing.T) {
	for _, p := range AdminPaths() {
		assert.Equal(t, RouteClassAdmin, Classify(p), "exact %s", p)
		assert.Equal(t, RouteClassAdmin, Classify(p+"/newsletter"), "subpath of %s", p)
	}
}

func TestClassifyPublicNeverProtected(t *testing.T) {
	for _, p := range PublicPaths() {
		assert.NotEqual(t, RouteClassProtected, Classify(p), "%s", p)
		assert.NotEqual(t, RouteClassAdmin, Classify(p), "%s", p)
	}
}

func TestClassifyLanding(t *testing.T) {
	assert.Equal(t, RouteClassPublic, Classify("/"))
}

func TestClassifyUnknownIsNone(t *testing.T) {
	assert.Equal(t, RouteClassNone, Classify("/totally-unknown"))
	assert.Equal(t, RouteClassNone, Classify("/dashboards"))
	assert.Equal(t, RouteClassNone, Classify(""))
}

func TestClassifyPrefixRequiresSeparator(t *testing.T) {
	assert.Equal(t, RouteClassNone, Classify("/adminx"))
	assert.Equal(t, RouteClassAdmin, Classify("/admin/vehicles/42"))
}
