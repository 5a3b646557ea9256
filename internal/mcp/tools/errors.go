package tools

import (
	"fmt"
)

// Error codes for MCP tool responses.
const (
	ErrCodeInvalidInput = "INVALID_INPUT"
	ErrCodeParseError   = "PARSE_ERROR"
	ErrCodeInferError   = "INFER_ERROR"
)

// CodedError is an error with an associated error code.
type CodedError struct {
	Code    string
	Message string
	Cause   error
}

func (e *CodedError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *CodedError) Unwrap() error {
	return e.Cause
}

// ErrInvalidInput creates an invalid input error.
func ErrInvalidInput(message string) error {
	return &CodedError{
		Code:    ErrCodeInvalidInput,
		Message: message,
	}
}

// ErrParse wraps a sample decoding failure.
func ErrParse(which int, err error) error {
	return &CodedError{
		Code:    ErrCodeParseError,
		Message: fmt.Sprintf("sample %d did not parse", which),
		Cause:   err,
	}
}

// ErrInfer wraps an inference failure.
func ErrInfer(err error) error {
	return &CodedError{
		Code:    ErrCodeInferError,
		Message: "schema inference failed",
		Cause:   err,
	}
}
