package api

import (
	"errors"
	"fmt"
)

// ConnectivityError wraps a transport or server failure. It is recoverable:
// the caller retries by repeating the same user action, with prior state
// preserved.
type ConnectivityError struct {
	Op  string
	Err error
}

func (e *ConnectivityError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *ConnectivityError) Unwrap() error { return e.Err }

// PayloadError indicates the server returned a response that fails integrity
// checks. It points at a bad question source, not at the user or the network,
// and the affected question must not be rendered.
type PayloadError struct {
	Op  string
	Err error
}

func (e *PayloadError) Error() string {
	return fmt.Sprintf("%s: bad payload: %v", e.Op, e.Err)
}

func (e *PayloadError) Unwrap() error { return e.Err }

// ErrServerIncompatible is returned by CheckServer when the server reports a
// version older than the client supports.
var ErrServerIncompatible = errors.New("server version is not supported")

// IsConnectivity reports whether err is a transport-level failure.
func IsConnectivity(err error) bool {
	var ce *ConnectivityError
	return errors.As(err, &ce)
}
