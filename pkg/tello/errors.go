package tello

import (
	"errors"
	"fmt"

	"github.com/einherij/tellopilot/pkg/ack"
)

var (
	ErrNotConnected      = errors.New("tello not connected")
	ErrConnectInProgress = errors.New("tello connection attempt already in progress")
	// ErrForbiddenCommand is returned for any command that would change the
	// drone's wifi settings. Use Land or Emergency to end a session instead.
	ErrForbiddenCommand = errors.New("wifi commands are not allowed")
	ErrAckTimeout       = ack.ErrTimeout
)

// TransportError is a socket level failure: bind, send, or a session that
// closed or never existed.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("tello %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// RejectedError carries a drone reply that reports a failure.
type RejectedError struct {
	Command  string
	Response string
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("tello rejected %q: %s", e.Command, e.Response)
}
