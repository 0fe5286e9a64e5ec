//go:build !windows

package cleanenv

import (
	"errors"
	"testing"
)

func TestGet_Unsupported(t *testing.T) {
	_, err := Get()
	if err == nil {
		t.Fatal("Get() succeeded on a system without environment templates")
	}
	if !errors.Is(err, errors.ErrUnsupported) {
		t.Errorf("error %v does not wrap errors.ErrUnsupported", err)
	}

	var envErr *Error
	if !errors.As(err, &envErr) || envErr.Op != OpOpenToken {
		t.Errorf("error = %#v, want *Error with Op %q", err, OpOpenToken)
	}
}
