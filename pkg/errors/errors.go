package errors

import (
	stdErrors "errors"
	"fmt"
)

type Code string

const (
	CodeValidation     Code = "VALIDATION_ERROR"
	CodeUnknownShopper Code = "UNKNOWN_SHOPPER"
	CodeNotFound       Code = "NOT_FOUND"
	CodeDuplicateLine  Code = "DUPLICATE_LINE"
	CodeConflict       Code = "CONFLICT"
	CodeInternal       Code = "INTERNAL_ERROR"
	CodeDependency     Code = "DEPENDENCY_ERROR"
)

// Metadata describes how the session should treat a code: fatal errors end
// the session, everything else is reported and control returns to the menu.
type Metadata struct {
	Fatal          bool
	Retryable      bool
	PublicMessage  string
	DetailsAllowed bool
}

var metadataByCode = map[Code]Metadata{
	CodeValidation: {
		Fatal:          false,
		Retryable:      false,
		PublicMessage:  "validation failed",
		DetailsAllowed: true,
	},
	CodeUnknownShopper: {
		Fatal:          true,
		Retryable:      false,
		PublicMessage:  "unknown shopper",
		DetailsAllowed: false,
	},
	CodeNotFound: {
		Fatal:          false,
		Retryable:      false,
		PublicMessage:  "not found",
		DetailsAllowed: false,
	},
	CodeDuplicateLine: {
		Fatal:          false,
		Retryable:      false,
		PublicMessage:  "item already in basket",
		DetailsAllowed: true,
	},
	CodeConflict: {
		Fatal:          false,
		Retryable:      false,
		PublicMessage:  "conflict detected",
		DetailsAllowed: false,
	},
	CodeInternal: {
		Fatal:          false,
		Retryable:      true,
		PublicMessage:  "something went wrong, please try again",
		DetailsAllowed: false,
	},
	CodeDependency: {
		Fatal:          false,
		Retryable:      true,
		PublicMessage:  "the database is unavailable",
		DetailsAllowed: true,
	},
}

func MetadataFor(code Code) Metadata {
	if meta, ok := metadataByCode[code]; ok {
		return meta
	}
	return metadataByCode[CodeInternal]
}

type Error struct {
	code    Code
	message string
	details any
	cause   error
}

func New(code Code, message string) *Error {
	return &Error{code: code, message: message}
}

func Wrap(code Code, err error, message string) *Error {
	if err == nil {
		return New(code, message)
	}
	return &Error{code: code, message: message, cause: err}
}

func (e *Error) Code() Code {
	if e == nil {
		return CodeInternal
	}
	return e.code
}

func (e *Error) Message() string {
	if e == nil {
		return ""
	}
	return e.message
}

func (e *Error) Details() any {
	if e == nil {
		return nil
	}
	return e.details
}

func (e *Error) WithDetails(details any) *Error {
	if e == nil {
		return nil
	}
	e.details = details
	return e
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s: %s", e.code, e.message)
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.cause
}

func As(err error) *Error {
	if err == nil {
		return nil
	}
	var typed *Error
	if stdErrors.As(err, &typed) {
		return typed
	}
	return nil
}

// IsFatal reports whether the error should end the shopper session.
func IsFatal(err error) bool {
	typed := As(err)
	if typed == nil {
		return false
	}
	return MetadataFor(typed.Code()).Fatal
}
