package cleanenv

import (
	"errors"
	"fmt"
	"runtime"
	"syscall"
)

// Op names the step of Provider.Environment that failed.
type Op string

const (
	// OpOpenToken is the acquisition of the current process's token.
	OpOpenToken Op = "open process token"
	// OpCreateBlock is the creation of the default environment block.
	OpCreateBlock Op = "create environment block"
)

// ErrUnsupported is returned on systems without a default environment
// template.
var ErrUnsupported = fmt.Errorf("no default environment template on %s: %w", runtime.GOOS, errors.ErrUnsupported)

// Error is returned by Provider.Environment when the operating system
// refuses a request. Err is the underlying OS error.
type Error struct {
	Op  Op
	Err error
}

func (e *Error) Error() string {
	msg := "unknown error"
	if e.Err != nil {
		msg = e.Err.Error()
	}
	if code, ok := e.Code(); ok {
		return fmt.Sprintf("%s: %s (code %d)", e.Op, msg, code)
	}
	return fmt.Sprintf("%s: %s", e.Op, msg)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Code returns the platform error code behind the failure, if there is one.
func (e *Error) Code() (uintptr, bool) {
	var errno syscall.Errno
	if errors.As(e.Err, &errno) {
		return uintptr(errno), true
	}
	return 0, false
}
