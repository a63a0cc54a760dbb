package shared

import "fmt"

type ApiErrorType string

const (
	ApiErrorTypeUnauthorized  ApiErrorType = "unauthorized"
	ApiErrorTypeRequestFailed ApiErrorType = "request_failed"
	ApiErrorTypeNetwork       ApiErrorType = "network"
	ApiErrorTypeUpload        ApiErrorType = "upload"

	ApiErrorTypeOther ApiErrorType = "other"
)

const (
	MsgUnauthorized  = "Unauthorized"
	MsgRequestFailed = "Request failed"
	MsgUploadFailed  = "Upload failed"
)

type ApiError struct {
	Type   ApiErrorType `json:"type"`
	Status int          `json:"status"`
	Msg    string       `json:"msg"`

	// underlying transport error, set for network and upload failures
	Err error `json:"-"`
}

func (e *ApiError) Error() string {
	if e.Err != nil && e.Msg == "" {
		return e.Err.Error()
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	if e.Status != 0 {
		return fmt.Sprintf("%s (status %d)", e.Msg, e.Status)
	}
	return e.Msg
}

func (e *ApiError) Unwrap() error {
	return e.Err
}

func (e *ApiError) IsUnauthorized() bool {
	return e.Type == ApiErrorTypeUnauthorized
}
