package domain

import (
	"errors"
	"fmt"
)

var ErrNoToken = errors.New("hbnb: login response carried no access token")

// StatusError is a non-2xx answer from the places API.
type StatusError struct {
	Status int
	Detail string
}

func (e *StatusError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("hbnb: bad status %d", e.Status)
	}
	return fmt.Sprintf("hbnb: bad status %d: %s", e.Status, e.Detail)
}

// NetworkError covers transport failures and bodies that do not decode.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string { return "hbnb: " + e.Op + ": " + e.Err.Error() }

func (e *NetworkError) Unwrap() error { return e.Err }
