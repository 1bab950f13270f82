package dto

// Notice levels.
const (
	NoticeSuccess = "success"
	NoticeWarning = "warning"
	NoticeError   = "error"
)

// Notice is the user-visible outcome of an action and where the client should go next.
type Notice struct {
	Level    string `json:"level"`
	Message  string `json:"message"`
	Redirect string `json:"redirect,omitempty"`
}

// NoticeResponse is the body of every action answered with a notice.
type NoticeResponse struct {
	Notice Notice `json:"notice"`
	Data   any    `json:"data,omitempty"`
}
