package platform

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a ResourceError.
type ErrorKind int

const (
	// KindIO means an OS call reported failure. Err holds the native error.
	KindIO ErrorKind = iota + 1
	// KindGeneric means a library-level failure, described by Reason.
	KindGeneric
)

func (k ErrorKind) String() string {
	switch k {
	case KindIO:
		return "io"
	case KindGeneric:
		return "generic"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// ResourceError is returned by every fallible operation in this package.
// It is terminal for the call that produced it; nothing is retried.
type ResourceError struct {
	Kind ErrorKind
	// Op names the failing native call, e.g. "GetDiskFreeSpaceW" or "sysctl kern.osrelease".
	Op string
	// Err is the underlying error (syscall.Errno on every backend) when one exists.
	Err error
	// Reason is set for KindGeneric errors.
	Reason string
}

func (e *ResourceError) Error() string {
	switch {
	case e.Reason != "" && e.Err != nil:
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Reason, e.Err)
	case e.Reason != "":
		return fmt.Sprintf("%s: %s", e.Op, e.Reason)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	default:
		return e.Op + ": " + e.Kind.String() + " error"
	}
}

func (e *ResourceError) Unwrap() error { return e.Err }

func ioError(op string, err error) error {
	return &ResourceError{Kind: KindIO, Op: op, Err: err}
}

func genericError(op, reason string) error {
	return &ResourceError{Kind: KindGeneric, Op: op, Reason: reason}
}

// IsIO reports whether err is a ResourceError of kind KindIO.
func IsIO(err error) bool {
	var re *ResourceError
	return errors.As(err, &re) && re.Kind == KindIO
}

// IsGeneric reports whether err is a ResourceError of kind KindGeneric.
func IsGeneric(err error) bool {
	var re *ResourceError
	return errors.As(err, &re) && re.Kind == KindGeneric
}
