package api

import (
	"errors"
	"fmt"
	"net/http"
)

// StatusError is returned for non-2xx responses from the platform API
type StatusError struct {
	StatusCode   int    // e.g. 400
	Status       string // e.g. "400 Bad Request"
	ErrorMessage string `json:"error"`
}

func (e StatusError) Error() string {
	switch {
	case e.Status != "" && e.ErrorMessage != "":
		return fmt.Sprintf("%s: %s", e.Status, e.ErrorMessage)
	case e.Status != "":
		return e.Status
	case e.ErrorMessage != "":
		return e.ErrorMessage
	default:
		return "unexpected response from the server"
	}
}

// Message returns the server supplied message, falling back to the status
func (e StatusError) Message() string {
	if e.ErrorMessage != "" {
		return e.ErrorMessage
	}
	return e.Error()
}

// IsNotFound reports whether err is a 404 from the API
func IsNotFound(err error) bool {
	var se StatusError
	return errors.As(err, &se) && se.StatusCode == http.StatusNotFound
}

// IsUnauthorized reports whether err is a 401 or 403 from the API
func IsUnauthorized(err error) bool {
	var se StatusError
	return errors.As(err, &se) &&
		(se.StatusCode == http.StatusUnauthorized || se.StatusCode == http.StatusForbidden)
}

// UserMessage turns err into text suitable for a notification
func UserMessage(err error) string {
	var se StatusError
	if errors.As(err, &se) {
		return se.Message()
	}
	return err.Error()
}
