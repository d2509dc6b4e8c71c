// Copyright (c) 2026 Lister. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package respond writes every HTTP response body Lister produces.
//
// Successes are {"data": ...} (plus "meta" when paginated), plain
// acknowledgements are {"message": ...}, failures are
// {"error", "code", "details"}.
package respond

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/taibuivan/lister/internal/platform/apperr"
	"github.com/taibuivan/lister/internal/platform/ctxutil"
	"github.com/taibuivan/lister/pkg/pagination"
)

// Envelope wraps successful payloads.
type Envelope struct {
	Data any              `json:"data"`
	Meta *pagination.Meta `json:"meta,omitempty"`
}

// ErrorEnvelope is the body of every non-2xx response.
type ErrorEnvelope struct {
	Error   string              `json:"error"`
	Code    string              `json:"code"`
	Details []apperr.FieldError `json:"details,omitempty"`
}

// JSON encodes payload with the given status. Encoding errors are dropped:
// the status line is already on the wire.
func JSON(writer http.ResponseWriter, status int, payload any) {
	writer.Header().Set("Content-Type", "application/json; charset=utf-8")
	writer.WriteHeader(status)
	_ = json.NewEncoder(writer).Encode(payload)
}

// Data writes data in an [Envelope] with any status, e.g. 503 from readiness.
func Data(writer http.ResponseWriter, status int, data any) {
	JSON(writer, status, Envelope{Data: data})
}

func OK(writer http.ResponseWriter, data any) {
	Data(writer, http.StatusOK, data)
}

func Created(writer http.ResponseWriter, data any) {
	Data(writer, http.StatusCreated, data)
}

// Paginated adds the page metadata next to data.
func Paginated(writer http.ResponseWriter, data any, meta pagination.Meta) {
	JSON(writer, http.StatusOK, Envelope{Data: data, Meta: &meta})
}

// Message acknowledges an operation that returns no resource, e.g. a delete.
func Message(writer http.ResponseWriter, message string) {
	JSON(writer, http.StatusOK, map[string]string{"message": message})
}

// Error renders err. Anything that is not an [*apperr.AppError] becomes a 500
// whose cause is logged but never sent.
func Error(writer http.ResponseWriter, request *http.Request, err error) {
	appError := apperr.As(err)
	if appError == nil {
		appError = apperr.Internal(err)
	}

	if appError.HTTPStatus >= http.StatusInternalServerError {
		ctxutil.GetLogger(request.Context()).ErrorContext(request.Context(), "api_server_error",
			slog.String("code", appError.Code),
			slog.String("request_id", ctxutil.GetRequestID(request.Context())),
			slog.Any("cause", appError.Cause),
		)
	}

	JSON(writer, appError.HTTPStatus, ErrorEnvelope{
		Error:   appError.Message,
		Code:    appError.Code,
		Details: appError.Details,
	})
}
