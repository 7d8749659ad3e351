package universe

import (
	"errors"
	"fmt"
	"strconv"
)

//Code is a machine-readable error code
type Code string

const (
	//CodeInvalidInput marks a batch element which is not a well-formed coordinate pair
	CodeInvalidInput Code = "INVALID_INPUT"
)

//Error is the engine error type
type Error struct {
	Code     Code              //machine-readable error code
	Message  string            //human readable message
	Metadata map[string]string //additional context, e.g. the batch index
	Cause    error             //wrapped underlying error
}

//ErrInvalidInput matches any InvalidInput error with errors.Is
var ErrInvalidInput = &Error{Code: CodeInvalidInput, Message: "invalid input"}

//ErrUnknownTemplate is returned by Runner.SettleTemplate for a name that was never added
var ErrUnknownTemplate = errors.New("unknown template")

func (e *Error) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

//Is reports whether target is an *Error with the same code
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return false
}

//invalidInput creates the InvalidInput error for the batch element at index
func invalidInput(index int, cause error) *Error {
	return &Error{
		Code:     CodeInvalidInput,
		Message:  fmt.Sprintf("batch element %d is not a coordinate pair", index),
		Metadata: map[string]string{"index": strconv.Itoa(index)},
		Cause:    cause,
	}
}
