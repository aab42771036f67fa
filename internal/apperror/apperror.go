// Package apperror defines the errors surfaced by the API and the single
// table that maps each of them to an HTTP status and a stable numeric code.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

type Kind int

const (
	KindValidation Kind = iota
	KindInvalidCategory
	KindUserNotFound
	KindItemNotFound
	KindUserEmpty
	KindItemEmpty
	KindBadQuery
	KindBadPath
	KindBadJSONData
	KindBadJSONSyntax
	KindMissingJSONContentType
	KindBadBody
	KindDatabase
)

// Error 业务错误，Kind 决定状态码，Code 为对外稳定的错误码
type Error struct {
	Kind    Kind
	Code    int
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Status returns the HTTP status for the error kind.
func (e *Error) Status() int {
	switch e.Kind {
	case KindUserEmpty, KindItemEmpty:
		return http.StatusNoContent
	case KindBadQuery, KindBadPath, KindBadJSONSyntax, KindBadBody:
		return http.StatusBadRequest
	case KindUserNotFound, KindItemNotFound:
		return http.StatusNotFound
	case KindMissingJSONContentType:
		return http.StatusUnsupportedMediaType
	case KindValidation, KindInvalidCategory, KindBadJSONData:
		return http.StatusUnprocessableEntity
	case KindDatabase:
		if e.Code == CodeDBConnection {
			return http.StatusServiceUnavailable
		}
		return http.StatusInternalServerError
	}
	return http.StatusInternalServerError
}

// HasBody reports whether the error is rendered with a JSON body.
func (e *Error) HasBody() bool {
	return e.Kind != KindUserEmpty && e.Kind != KindItemEmpty
}

const (
	CodeValidation      = 40000
	CodeUserNotFound    = 40001
	CodeItemNotFound    = 40002
	CodeInvalidCategory = 40003

	CodeBadQuery = 40100
	CodeBadPath  = 40200

	CodeBadJSONData            = 40300
	CodeBadJSONSyntax          = 40301
	CodeMissingJSONContentType = 40302
	CodeBadBody                = 40303

	CodeDBUnknown            = 50000
	CodeDBConnection         = 50100
	CodeDBRecordNotFound     = 50107
	CodeDBDuplicatedKey      = 50110
	CodeDBForeignKey         = 50111
	CodeDBInvalidTransaction = 50112
	CodeDBInvalidData        = 50113
	CodeDBInvalidValue       = 50114
)

func Validation(msg string) *Error {
	return &Error{Kind: KindValidation, Code: CodeValidation, Message: "validation error: " + msg}
}

func InvalidCategory(err error) *Error {
	return &Error{Kind: KindInvalidCategory, Code: CodeInvalidCategory, Message: err.Error(), Err: err}
}

func UserNotFound(id int64) *Error {
	return &Error{Kind: KindUserNotFound, Code: CodeUserNotFound, Message: fmt.Sprintf("cannot find user with id %d", id)}
}

func ItemNotFound(id int64) *Error {
	return &Error{Kind: KindItemNotFound, Code: CodeItemNotFound, Message: fmt.Sprintf("cannot find item with id %d", id)}
}

func UserEmpty() *Error {
	return &Error{Kind: KindUserEmpty, Message: "no user found in database"}
}

func ItemEmpty() *Error {
	return &Error{Kind: KindItemEmpty, Message: "no item found in database"}
}

func BadQuery(err error) *Error {
	return &Error{Kind: KindBadQuery, Code: CodeBadQuery, Message: err.Error(), Err: err}
}

func BadPath(name, value string) *Error {
	return &Error{Kind: KindBadPath, Code: CodeBadPath, Message: fmt.Sprintf("invalid path parameter %s=%q", name, value)}
}

func MissingJSONContentType() *Error {
	return &Error{
		Kind:    KindMissingJSONContentType,
		Code:    CodeMissingJSONContentType,
		Message: "expected request with `Content-Type: application/json`",
	}
}

// As extracts an *Error from err, if any.
func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}
