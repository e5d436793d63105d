package internal

// CommentRequest is the body accepted by POST /api/code-comment.
type CommentRequest struct {
	Code     string `json:"code"`
	Language string `json:"language"`
}

// CommentResponse is returned when the backend produced text.
type CommentResponse struct {
	CommentedCode string `json:"commentedCode"`
}

// ErrorResponse carries the message shown to the user on failure.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Messages returned to callers. The underlying cause is never exposed.
const (
	MsgMissingInput     = "Missing code or language."
	MsgGenerationFailed = "Failed to generate comments."
)
