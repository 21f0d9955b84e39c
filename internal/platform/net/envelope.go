package net

import (
	"net/http"

	perr "alaynorm/internal/platform/errors"
)

// Envelope wraps every API body
type Envelope struct {
	StatusCode int            `json:"status_code"`
	Status     string         `json:"status"`
	Code       perr.ErrorCode `json:"code,omitempty"`
	Error      string         `json:"error,omitempty"`
	Field      string         `json:"field,omitempty"`
	RequestID  string         `json:"request_id,omitempty"`
	Data       any            `json:"data,omitempty"`
}

// OK wraps data with status (200 when zero)
func OK(status int, data any, reqID string) Envelope {
	if status == 0 {
		status = http.StatusOK
	}
	return Envelope{
		StatusCode: status,
		Status:     http.StatusText(status),
		RequestID:  reqID,
		Data:       data,
	}
}

// Fail maps err to its status and wire form; nil err gives an empty 200
func Fail(err error, reqID string) Envelope {
	if err == nil {
		return OK(http.StatusOK, nil, reqID)
	}
	status, w := perr.HTTP(err)
	return Envelope{
		StatusCode: status,
		Status:     http.StatusText(status),
		Code:       w.Code,
		Error:      w.Message,
		Field:      w.Field,
		RequestID:  reqID,
	}
}
