package dc

import (
	"errors"
	"fmt"
)

// UnknownCommandError is returned by Parse when no registered pattern matches
// at some point in the text; nothing has been executed when it is returned.
type UnknownCommandError struct {
	// Offset is the byte offset of the first character that matched nothing.
	Offset int

	// Remaining is the length of the unconsumed suffix starting at Offset,
	// i.e. how far from the end of the text parsing failed.
	Remaining int
}

func (err UnknownCommandError) Error() string {
	return fmt.Sprintf("unknown command at offset %v (%v bytes from end)", err.Offset, err.Remaining)
}

// EmptyStackError is returned when a command needs more values than the
// stack holds. Values popped before the shortfall was noticed stay popped.
type EmptyStackError struct {
	Need int
	Have int
}

func (err EmptyStackError) Error() string {
	if err.Need == 1 {
		return "empty stack"
	}
	return fmt.Sprintf("empty stack: need %v values, have %v", err.Need, err.Have)
}

// CommandError wraps any error returned by the handler of a Token.
type CommandError struct {
	Token
	Err error
}

func (err CommandError) Error() string {
	return fmt.Sprintf("%q @%v: %v", err.Text, err.Offset, err.Err)
}

func (err CommandError) Unwrap() error { return err.Err }

// TypeError is returned when an operation is given a value of the wrong kind,
// e.g. a Text for '+'.
type TypeError struct {
	Op    string
	Value Value
}

func (err TypeError) Error() string {
	return fmt.Sprintf("%v: unsupported %v", err.Op, describe(err.Value))
}

// NumberError is returned when a Number cannot serve as an integer count.
type NumberError struct {
	Number Number
	Reason string
}

func (err NumberError) Error() string {
	return fmt.Sprintf("invalid integer %v: %v", err.Number, err.Reason)
}

// PrecisionError is returned by 'k' for out of range precisions.
type PrecisionError struct{ Precision int64 }

func (err PrecisionError) Error() string {
	return fmt.Sprintf("precision %v out of range [1, %v]", err.Precision, MaxPrecision)
}

// ReplicateError is returned when replicating a Text would be too large.
type ReplicateError struct {
	Text  Text
	Count int64
}

func (err ReplicateError) Error() string {
	return fmt.Sprintf("cannot replicate %v bytes of text %v times", len(err.Text), err.Count)
}

var (
	errModZero        = errors.New("modulus is zero")
	errNegativeModExp = errors.New("negative exponent")
)

// IsUnknownCommand returns true if err is, or wraps, an UnknownCommandError.
func IsUnknownCommand(err error) bool {
	var uce UnknownCommandError
	return errors.As(err, &uce)
}

// IsEmptyStack returns true if err is, or wraps, an EmptyStackError.
func IsEmptyStack(err error) bool {
	var ese EmptyStackError
	return errors.As(err, &ese)
}

func describe(v Value) string {
	switch v := v.(type) {
	case nil:
		return "nil value"
	case Text:
		return fmt.Sprintf("text [%v]", string(v))
	case Number:
		return fmt.Sprintf("number %v", v)
	default:
		return fmt.Sprintf("%T", v)
	}
}
