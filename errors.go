package brine

import (
	"fmt"
)

// ErrorKind classifies a failure as either an OS-level file problem or a
// serialization problem. These are the only two kinds the store produces.
type ErrorKind int

const (
	IOError ErrorKind = iota
	SerializationError
)

func (k ErrorKind) String() string {
	switch k {
	case IOError:
		return "io"
	case SerializationError:
		return "serialization"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// Error is the failure type returned by all fallible store operations.
type Error struct {
	Kind ErrorKind
	Msg  string
	Err  error
}

func ioErrf(err error, format string, args ...any) error {
	return &Error{IOError, fmt.Sprintf(format, args...), err}
}

func serErrf(err error, format string, args ...any) error {
	return &Error{SerializationError, fmt.Sprintf(format, args...), err}
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Msg)
}

// DataError describes bytes that failed to decode, carrying a bounded
// hex snippet of the data for diagnostics.
type DataError struct {
	Data []byte
	Err  error
	Msg  string
}

func dataErrf(data []byte, err error, format string, args ...any) error {
	return &DataError{data, err, fmt.Sprintf(format, args...)}
}

func (e *DataError) Unwrap() error {
	return e.Err
}

func (e *DataError) Error() string {
	const prefixLen = 64
	const suffixLen = 32
	n := len(e.Data)
	if n <= prefixLen+suffixLen {
		if e.Err != nil {
			return fmt.Sprintf("%s: %v: (%d) %x", e.Msg, e.Err, n, e.Data)
		} else {
			return fmt.Sprintf("%s: (%d) %x", e.Msg, n, e.Data)
		}
	} else {
		p, s := e.Data[:prefixLen], e.Data[n-suffixLen:]
		if e.Err != nil {
			return fmt.Sprintf("%s: %v: (%d) %x...%x", e.Msg, e.Err, n, p, s)
		} else {
			return fmt.Sprintf("%s: (%d) %x...%x", e.Msg, n, p, s)
		}
	}
}
