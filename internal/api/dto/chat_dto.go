package dto

// ChatMessageRequest payload.
type ChatMessageRequest struct {
	Message string `json:"message"`
}

// ChatMessageResponse is the widget's canned reply.
type ChatMessageResponse struct {
	Topic   string `json:"topic"`
	Message string `json:"message"`
}
