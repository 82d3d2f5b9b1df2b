package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var errConfigNotObject = errors.New("notification method config is not an object")

// ResponseError is returned when the backend answers with a non-2xx status.
// Body holds the response text verbatim; the dashboard shows it to users.
type ResponseError struct {
	StatusCode int
	Body       string
}

func (e *ResponseError) Error() string {
	if msg := e.Message(); msg != "" {
		return fmt.Sprintf("api %d: %s", e.StatusCode, msg)
	}
	return fmt.Sprintf("api %d: %s", e.StatusCode, http.StatusText(e.StatusCode))
}

// Message is the trimmed response body.
func (e *ResponseError) Message() string {
	return strings.TrimSpace(e.Body)
}

// Temporary reports whether repeating the request could succeed.
func (e *ResponseError) Temporary() bool {
	return e.StatusCode >= 500 || e.StatusCode == http.StatusTooManyRequests
}

// ErrorMessage extracts the text a user should see for err: the backend body
// for a ResponseError, the error string otherwise, fallback when both are empty.
func ErrorMessage(err error, fallback string) string {
	var re *ResponseError
	if errors.As(err, &re) {
		if msg := re.Message(); msg != "" {
			return msg
		}
		return fallback
	}
	if err == nil || err.Error() == "" {
		return fallback
	}
	return err.Error()
}
