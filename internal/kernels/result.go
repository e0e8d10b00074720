package kernels

import (
	"errors"
	"fmt"
)

// FailureKind classifies why a kernel call failed.
type FailureKind int

const (
	KindNone               FailureKind = iota // Success
	KindUnknownOperation                      // Operation name not recognized
	KindMissingParameter                      // Required positional parameter absent
	KindUnsupportedConfig                     // Parameter present but rejected
	KindOutOfBounds                           // Coordinates outside the plane
	KindBufferSizeMismatch                    // len(pixels) != width*height
)

var kindNames = [...]string{
	KindNone:               "none",
	KindUnknownOperation:   "unknown_operation",
	KindMissingParameter:   "missing_parameter",
	KindUnsupportedConfig:  "unsupported_config",
	KindOutOfBounds:        "out_of_bounds",
	KindBufferSizeMismatch: "buffer_size_mismatch",
}

func (k FailureKind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("FailureKind(%d)", int(k))
	}
	return kindNames[k]
}

// MarshalText encodes the kind by name so JSON bodies stay readable.
func (k FailureKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText is the inverse of MarshalText.
func (k *FailureKind) UnmarshalText(text []byte) error {
	for i, name := range kindNames {
		if name == string(text) {
			*k = FailureKind(i)
			return nil
		}
	}
	return fmt.Errorf("unknown failure kind %q", text)
}

// Sentinel errors, one per failure kind. Use errors.Is against Result.Err().
var (
	ErrUnknownOperation   = errors.New("unknown operation")
	ErrMissingParameter   = errors.New("missing parameter")
	ErrUnsupportedConfig  = errors.New("unsupported configuration")
	ErrOutOfBounds        = errors.New("coordinates out of bounds")
	ErrBufferSizeMismatch = errors.New("buffer size mismatch")
)

var kindSentinels = map[FailureKind]error{
	KindUnknownOperation:   ErrUnknownOperation,
	KindMissingParameter:   ErrMissingParameter,
	KindUnsupportedConfig:  ErrUnsupportedConfig,
	KindOutOfBounds:        ErrOutOfBounds,
	KindBufferSizeMismatch: ErrBufferSizeMismatch,
}

// Error is the error form of a failed Result.
type Error struct {
	Kind    FailureKind
	Message string
}

func newError(kind FailureKind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func (e *Error) Error() string { return e.Message }

// Is matches the sentinel for e.Kind.
func (e *Error) Is(target error) bool {
	return kindSentinels[e.Kind] == target
}

// Result is the outcome of one kernel invocation.
//
// Exactly one side is meaningful: when Success is true, Data holds the output
// plane and Error is empty; otherwise Error describes the failure, Kind
// classifies it and Data is nil.
type Result struct {
	Success bool        `json:"success"`
	Error   string      `json:"error"`
	Data    []byte      `json:"data"`
	Kind    FailureKind `json:"kind"`
}

func succeed(data []byte) Result {
	return Result{Success: true, Data: data}
}

func fail(kind FailureKind, format string, args ...interface{}) Result {
	return failWith(newError(kind, format, args...))
}

// failWith converts err into a failed Result. Errors that did not originate
// in this package are reported as unsupported configuration.
func failWith(err error) Result {
	var kerr *Error
	if errors.As(err, &kerr) {
		return Result{Error: kerr.Message, Kind: kerr.Kind}
	}
	return Result{Error: err.Error(), Kind: KindUnsupportedConfig}
}

// Err returns nil for a successful Result and an *Error otherwise.
func (r Result) Err() error {
	if r.Success {
		return nil
	}
	return &Error{Kind: r.Kind, Message: r.Error}
}
