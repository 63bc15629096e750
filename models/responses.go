package models

// Response statuses used in every JSON envelope.
const (
	StatusSuccess = "success"
	StatusFailed  = "failed"
)

// Envelope is the JSON shape of every API response. Data carries the
// operation-specific payload, Token is only set by login.
type Envelope[T any] struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Data    *T     `json:"data,omitempty"`
	Token   string `json:"token,omitempty"`
}

// NoData is the payload type of envelopes that carry only a message.
type NoData struct{}

// Success wraps data into a successful envelope.
func Success[T any](data T) Envelope[T] {
	return Envelope[T]{Status: StatusSuccess, Data: &data}
}

// SuccessMessage builds a successful envelope without payload.
func SuccessMessage(message string) Envelope[NoData] {
	return Envelope[NoData]{Status: StatusSuccess, Message: message}
}

// Failure builds a failed envelope with the given client-facing message.
func Failure(message string) Envelope[NoData] {
	return Envelope[NoData]{Status: StatusFailed, Message: message}
}

// UserData is the payload of signup and login responses.
type UserData struct {
	User User `json:"user"`
}

// PostData is the payload of create and get-one responses.
type PostData struct {
	Post Post `json:"post"`
}

// UpdatedPostData is the payload of the update response.
type UpdatedPostData struct {
	UpdatedPost Post `json:"updatedPost"`
}

// PostsData is the payload of the search response.
type PostsData struct {
	Posts []Post `json:"posts"`
}
