package routes

import "strings"

// RouteClass is the guard-relevant classification of a URL path.
type RouteClass string

const (
	RouteClassNone      RouteClass = "NONE"
	RouteClassPublic    RouteClass = "PUBLIC"
	RouteClassProtected RouteClass = "PROTECTED"
	RouteClassAdmin     RouteClass = "ADMIN"
)

// The three tables partition the known route space. A path matching none of
// them is RouteClassNone and the guard takes no action on it.
var (
	protectedPrefixes = []string{
		"/dashboard",
		"/profile",
		"/settings",
		"/bookings",
		"/favorites",
		"/compare",
		"/checkout",
	}

	adminPrefixes = []string{
		"/admin",
	}

	publicPrefixes = []string{
		"/",
		"/login",
		"/register",
		"/forgot-password",
		"/reset-password",
		"/cars",
		"/about",
		"/contact",
		"/faq",
	}
)

// Classify maps a URL path to its route class. Protected is checked before
// Admin, Admin before Public. Pure and total; never errors.
func Classify(path string) RouteClass {
	if matchesAny(path, protectedPrefixes) {
		return RouteClassProtected
	}
	if matchesAny(path, adminPrefixes) {
		return RouteClassAdmin
	}
	if matchesAny(path, publicPrefixes) {
		return RouteClassPublic
	}
	return RouteClassNone
}

// ProtectedPaths returns a copy of the protected route table.
func ProtectedPaths() []string {
	return append([]string{}, protectedPrefixes...)
}

// AdminPaths returns a copy of the admin route table.
func AdminPaths() []string {
	return append([]string{}, adminPrefixes...)
}

// PublicPaths returns a copy of the public route table.
func PublicPaths() []string {
	return append([]string{}, publicPrefixes...)
}

func matchesAny(path string, prefixes []string) bool {
	for _, prefix := range prefixes {
		if path == prefix {
			return true
		}
		if prefix != "/" && strings.HasPrefix(path, prefix+"/") {
			return true
		}
	}
	return false
}
