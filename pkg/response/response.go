package response

import (
	"net/http"

	"github.com/restobill/restobill/pkg/apperr"
)

type APIResponseCode int

const (
	APIResponseCodeOK           APIResponseCode = 0
	APIResponseCodeBadRequest   APIResponseCode = 40000
	APIResponseCodeUnauthorized APIResponseCode = 40100
	APIResponseCodeForbidden    APIResponseCode = 40300
	APIResponseCodeNotFound     APIResponseCode = 40400
	APIResponseCodeConflict     APIResponseCode = 40900
	APIResponseCodeError        APIResponseCode = 50000
)

var codeToMsg = map[APIResponseCode]string{
	APIResponseCodeOK:           "ok",
	APIResponseCodeBadRequest:   "bad request",
	APIResponseCodeUnauthorized: "unauthorized",
	APIResponseCodeForbidden:    "forbidden",
	APIResponseCodeNotFound:     "not found",
	APIResponseCodeConflict:     "conflict",
	APIResponseCodeError:        "unexpected error",
}

// APIResponse is the generic response envelope used by HTTP APIs.
// Use OKT / ErrorT helpers to construct instances.
type APIResponse[T any] struct {
	Code    APIResponseCode `json:"code"`
	Message string          `json:"message"`
	Data    T               `json:"data"`
}

// OKT returns a successful response with data.
func OKT[T any](data T) *APIResponse[T] {
	return &APIResponse[T]{Code: APIResponseCodeOK, Message: codeToMsg[APIResponseCodeOK], Data: data}
}

// ErrorT returns an error response with optional data.
func ErrorT[T any](code APIResponseCode, data T) *APIResponse[T] {
	return &APIResponse[T]{Code: code, Message: codeToMsg[code], Data: data}
}

// CodeForError maps an error kind to envelope code and HTTP status. Internal
// errors stay opaque: detail belongs in logs, not the response body.
func CodeForError(err error) (APIResponseCode, int) {
	switch apperr.KindOf(err) {
	case apperr.KindValidation:
		return APIResponseCodeBadRequest, http.StatusBadRequest
	case apperr.KindNotFound:
		return APIResponseCodeNotFound, http.StatusNotFound
	case apperr.KindConflict:
		return APIResponseCodeConflict, http.StatusConflict
	default:
		return APIResponseCodeError, http.StatusInternalServerError
	}
}

// ErrorBody returns the user-facing payload for err. Internal error text is
// replaced with the generic message.
func ErrorBody(err error) any {
	if apperr.KindOf(err) == apperr.KindInternal {
		return codeToMsg[APIResponseCodeError]
	}
	return err.Error()
}
