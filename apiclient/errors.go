package apiclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Kind classifies a failed API call so callers branch on the kind, not the text.
type Kind string

const (
	KindValidation Kind = "validation"
	KindAuth       Kind = "auth"
	KindForbidden  Kind = "forbidden"
	KindConflict   Kind = "conflict"
	KindNotFound   Kind = "not_found"
	KindNetwork    Kind = "network"
	KindUnknown    Kind = "unknown"
)

// Error is the only error type the client returns. Message is display-ready.
type Error struct {
	Kind    Kind
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s (%d): %s", e.Kind, e.Status, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// KindForStatus maps an HTTP status to an error kind.
func KindForStatus(status int) Kind {
	switch status {
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return KindValidation
	case http.StatusUnauthorized:
		return KindAuth
	case http.StatusForbidden:
		return KindForbidden
	case http.StatusNotFound:
		return KindNotFound
	case http.StatusConflict:
		return KindConflict
	}
	return KindUnknown
}

// Classify returns the kind of err, KindUnknown for foreign errors and "" for nil.
func Classify(err error) Kind {
	if err == nil {
		return ""
	}
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}
	return KindUnknown
}

func IsKind(err error, kind Kind) bool {
	return err != nil && Classify(err) == kind
}

// StatusOf returns the HTTP status carried by err, 0 when there is none.
func StatusOf(err error) int {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return 0
}

// MessageOf returns the display message of err, or fallback when err carries none.
func MessageOf(err error, fallback string) string {
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}

// errorBody is what the REST API sends on failure. message is either a string
// or a list of strings (validation pipes).
type errorBody struct {
	Message json.RawMessage `json:"message"`
	Error   string          `json:"error"`
}

// extractMessage pulls the server message out of a failure body, flattening
// array-valued messages into one comma-joined string.
func extractMessage(body []byte) string {
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err != nil {
		return ""
	}
	if msg := flattenMessage(eb.Message); msg != "" {
		return msg
	}
	return strings.TrimSpace(eb.Error)
}

func flattenMessage(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return strings.TrimSpace(s)
	}
	var list []any
	if err := json.Unmarshal(raw, &list); err == nil {
		parts := make([]string, 0, len(list))
		for _, item := range list {
			if str := strings.TrimSpace(fmt.Sprint(item)); str != "" {
				parts = append(parts, str)
			}
		}
		return strings.Join(parts, ", ")
	}
	return ""
}

func newStatusError(status int, body []byte, fallback string) *Error {
	msg := extractMessage(body)
	if msg == "" {
		msg = fallback
	}
	return &Error{Kind: KindForStatus(status), Status: status, Message: msg}
}

func newNetworkError(err error, fallback string) *Error {
	return &Error{Kind: KindNetwork, Message: fallback, Err: err}
}
