package service

import (
	"fmt"
	"net/http"
	"strings"
)

// BackendError is a non-2xx response from the media backend, kept exactly as
// received. The client does not interpret it.
type BackendError struct {
	StatusCode int
	Status     string
	Header     http.Header
	Body       []byte
}

func (e *BackendError) Error() string {
	msg := strings.TrimSpace(string(e.Body))
	if msg == "" {
		return fmt.Sprintf("media backend status %d", e.StatusCode)
	}
	return fmt.Sprintf("media backend status %d: %s", e.StatusCode, msg)
}
