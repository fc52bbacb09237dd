package domain

import "fmt"

type ErrCode string

const (
	CodeNotFound        ErrCode = "not_found"
	CodeInvalidArgument ErrCode = "invalid_argument"
	CodeForbidden       ErrCode = "forbidden"
	CodeConflict        ErrCode = "conflict"
)

type AppError struct {
	Code    ErrCode
	Message string
	Meta    map[string]string
}

func (e *AppError) Error() string {
	if len(e.Meta) == 0 {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Meta)
}

func ErrNotFound(msg string) error        { return &AppError{Code: CodeNotFound, Message: msg} }
func ErrInvalidArgument(msg string) error { return &AppError{Code: CodeInvalidArgument, Message: msg} }
func ErrInvalidArgumentMeta(msg string, meta map[string]string) error {
	return &AppError{Code: CodeInvalidArgument, Message: msg, Meta: meta}
}
func ErrForbidden(msg string) error { return &AppError{Code: CodeForbidden, Message: msg} }
func ErrConflict(msg string) error  { return &AppError{Code: CodeConflict, Message: msg} }
