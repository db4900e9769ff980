// Package apperror classifies failures so handlers can choose a response
// without inspecting error strings.
package apperror

import (
	"errors"
	"fmt"
)

type Kind string

const (
	KindUnknown    Kind = "unknown"
	KindValidation Kind = "validation"
	KindNotFound   Kind = "not_found"
	KindStore      Kind = "store"
	KindUpload     Kind = "upload"
	KindEncoding   Kind = "encoding"
	KindRender     Kind = "render"
)

type Error struct {
	Kind   Kind
	Op     string
	Reason string
	Err    error
}

func (e *Error) Error() string {
	msg := e.Reason
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	} else if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	if e.Op == "" {
		return msg
	}
	return e.Op + ": " + msg
}

func (e *Error) Unwrap() error { return e.Err }

func Validation(op, reason string) error {
	return &Error{Kind: KindValidation, Op: op, Reason: reason}
}

func NotFound(op, reason string) error {
	return &Error{Kind: KindNotFound, Op: op, Reason: reason}
}

func Store(op string, err error) error {
	return &Error{Kind: KindStore, Op: op, Err: err}
}

func Upload(op string, err error) error {
	return &Error{Kind: KindUpload, Op: op, Err: err}
}

func Encoding(op string, err error) error {
	return &Error{Kind: KindEncoding, Op: op, Err: err}
}

func Render(op string, err error) error {
	return &Error{Kind: KindRender, Op: op, Err: err}
}

// KindOf reports the kind of the first *Error in err's chain.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindUnknown
}

func Is(err error, kind Kind) bool {
	return KindOf(err) == kind
}

// ReasonOf returns the user-facing reason, falling back to the error text.
func ReasonOf(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) && appErr.Reason != "" {
		return appErr.Reason
	}
	return err.Error()
}
