package apiclient

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ResponseError is returned for transport failures (StatusCode 0) and non-2xx responses
type ResponseError struct {
	StatusCode int
	Data       []byte
	Message    string
	Code       string
	Err        error
}

func (e *ResponseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("API error (status %d): %s: %v", e.StatusCode, e.Message, e.Err)
	}
	return fmt.Sprintf("API error (status %d): %s", e.StatusCode, e.Message)
}

func (e *ResponseError) Unwrap() error {
	return e.Err
}

// NewTransportError wraps a failure that prevented a response from being received
func NewTransportError(message string, err error) error {
	return &ResponseError{
		Message: message,
		Err:     err,
	}
}

// NewResponseError builds an error from a non-2xx response. A JSON body of the
// form {"message": "...", "code": "..."} fills Message and Code.
func NewResponseError(statusCode int, data []byte) error {
	respErr := &ResponseError{
		StatusCode: statusCode,
		Data:       data,
	}

	var body struct {
		Message string `json:"message"`
		Code    string `json:"code"`
	}
	if err := json.Unmarshal(data, &body); err == nil {
		respErr.Message = body.Message
		respErr.Code = body.Code
	}
	if respErr.Message == "" {
		respErr.Message = string(data)
	}

	return respErr
}

// AsResponseError unwraps err into a *ResponseError if it carries one
func AsResponseError(err error) (*ResponseError, bool) {
	var respErr *ResponseError
	if errors.As(err, &respErr) {
		return respErr, true
	}
	return nil, false
}
