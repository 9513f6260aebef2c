package dto

// GuardEvaluateRequest carries one navigation event from the client.
type GuardEvaluateRequest struct {
	Path    string `json:"path"`
	Trigger string `json:"trigger"`
}

// GuardEvaluateResponse tells the client what to do with the navigation.
type GuardEvaluateResponse struct {
	Action  string `json:"action"`
	Target  string `json:"target,omitempty"`
	Replace bool   `json:"replace,omitempty"`
	Message string `json:"message,omitempty"`
}
