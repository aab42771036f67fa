package apperror

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"olivier/internal/models"
)

// FromBind 将请求体解码错误归类
func FromBind(err error) *Error {
	if e, ok := As(err); ok {
		return e
	}

	var (
		syntaxErr   *json.SyntaxError
		typeErr     *json.UnmarshalTypeError
		categoryErr *models.InvalidCategoryError
		maxBytesErr *http.MaxBytesError
	)
	switch {
	case errors.As(err, &categoryErr):
		return InvalidCategory(categoryErr)
	case errors.As(err, &syntaxErr), errors.Is(err, io.ErrUnexpectedEOF):
		return &Error{Kind: KindBadJSONSyntax, Code: CodeBadJSONSyntax, Message: "failed to parse the request body as JSON: " + err.Error(), Err: err}
	case errors.As(err, &typeErr):
		return &Error{Kind: KindBadJSONData, Code: CodeBadJSONData, Message: "failed to deserialize the JSON body into the target type: " + err.Error(), Err: err}
	case errors.Is(err, io.EOF):
		return &Error{Kind: KindBadBody, Code: CodeBadBody, Message: "request body is empty", Err: err}
	case errors.As(err, &maxBytesErr):
		return &Error{Kind: KindBadBody, Code: CodeBadBody, Message: "failed to buffer the request body: " + err.Error(), Err: err}
	}
	return &Error{Kind: KindBadJSONData, Code: CodeBadJSONData, Message: err.Error(), Err: err}
}

// FromDatabase maps a store failure onto a Database error. Every error has a
// code; unrecognised ones get CodeDBUnknown.
func FromDatabase(err error) *Error {
	if e, ok := As(err); ok {
		return e
	}
	return &Error{Kind: KindDatabase, Code: databaseCode(err), Message: err.Error(), Err: err}
}

func databaseCode(err error) int {
	var (
		connectErr *pgconn.ConnectError
		netErr     net.Error
	)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return CodeDBRecordNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return CodeDBDuplicatedKey
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return CodeDBForeignKey
	case errors.Is(err, gorm.ErrInvalidTransaction):
		return CodeDBInvalidTransaction
	case errors.Is(err, gorm.ErrInvalidData):
		return CodeDBInvalidData
	case errors.Is(err, gorm.ErrInvalidValue), errors.Is(err, gorm.ErrInvalidValueOfLength):
		return CodeDBInvalidValue
	case errors.As(err, &connectErr),
		errors.As(err, &netErr),
		errors.Is(err, driver.ErrBadConn),
		errors.Is(err, sql.ErrConnDone),
		errors.Is(err, context.DeadlineExceeded):
		return CodeDBConnection
	}
	return CodeDBUnknown
}
