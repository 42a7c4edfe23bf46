package http

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/NotMikev/awesome-pizza-manager/internal/core/application/usecases/commands"
	"github.com/NotMikev/awesome-pizza-manager/internal/core/domain/model/audit"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	// HeaderCorrelationID carries the per-call audit token back to the caller.
	// Its value equals the correlation id of the persisted audit record.
	HeaderCorrelationID = "X-Correlation-Id"

	correlationIDContextKey = "correlationId"
)

// bodyCaptureWriter tees every byte written to the response into a buffer so
// the audit record can carry the exact payload the caller received.
type bodyCaptureWriter struct {
	http.ResponseWriter
	buf *bytes.Buffer
}

func (w *bodyCaptureWriter) Write(b []byte) (int, error) {
	w.buf.Write(b)
	return w.ResponseWriter.Write(b)
}

// AuditMiddleware captures every call under the audited prefix.
//
// Per call it generates a correlation id, returns it in the X-Correlation-Id
// header, tees the request body so downstream handlers still see it, wraps the
// response writer with a capture buffer, and persists exactly one audit record
// after the response is released. A handler error is recorded as failure
// detail and dispatched through the central error handler first, so the
// classified error response is captured like any other.
//
// Audit persistence failures are logged and swallowed: they never alter the
// response already sent to the caller.
func AuditMiddleware(logAPICallHandler commands.LogAPICallCommandHandler) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			correlationID := uuid.NewString()
			ctx.Set(correlationIDContextKey, correlationID)
			ctx.Response().Header().Set(HeaderCorrelationID, correlationID)

			req := ctx.Request()
			var rawBody []byte
			if req.Body != nil {
				rawBody, _ = io.ReadAll(req.Body)
				req.Body = io.NopCloser(bytes.NewReader(rawBody))
			}

			capture := &bodyCaptureWriter{
				ResponseWriter: ctx.Response().Writer,
				buf:            &bytes.Buffer{},
			}
			ctx.Response().Writer = capture

			var failureDetail *string
			if err := next(ctx); err != nil {
				detail := err.Error()
				failureDetail = &detail
				ctx.Error(err)
			}

			record, err := audit.NewRecord(
				correlationID,
				time.Now().UTC(),
				req.Method,
				req.URL.Path,
				requestBody(ctx, rawBody),
				ctx.Response().Status,
				responseBody(capture.buf),
				failureDetail,
			)
			if err != nil {
				slog.Error("audit record rejected",
					"correlationId", correlationID, "error", err)
				return nil
			}

			cmd, err := commands.NewLogAPICallCommand(record)
			if err != nil {
				slog.Error("audit command rejected",
					"correlationId", correlationID, "error", err)
				return nil
			}

			// The write must survive a client disconnect, so it runs on a
			// context detached from the request's cancellation.
			if err = logAPICallHandler.Handle(context.WithoutCancel(req.Context()), cmd); err != nil {
				slog.Error("audit write failed",
					"correlationId", correlationID, "error", err)
			}

			return nil
		}
	}
}

// requestBody reconstructs the logical request body. Raw captured bytes win,
// URL-decoded for form-encoded submissions so the record carries the field
// values as submitted; for form bodies already consumed into parameters, the
// query string is decoded or the parsed parameter map is re-serialized back
// into key=value&key=value form. Extraction failures yield nil or the raw
// bytes, never a failed call.
func requestBody(ctx echo.Context, raw []byte) *string {
	contentType := ctx.Request().Header.Get(echo.HeaderContentType)
	isForm := strings.HasPrefix(contentType, echo.MIMEApplicationForm)

	if len(raw) > 0 {
		body := string(raw)
		if isForm {
			if decoded, err := url.QueryUnescape(body); err == nil {
				body = decoded
			}
		}
		return &body
	}

	if !isForm {
		return nil
	}

	if rawQuery := ctx.Request().URL.RawQuery; rawQuery != "" {
		decoded, err := url.QueryUnescape(rawQuery)
		if err == nil {
			return &decoded
		}
	}

	form, err := ctx.FormParams()
	if err != nil || len(form) == 0 {
		return nil
	}

	body := form.Encode()
	return &body
}

func responseBody(buf *bytes.Buffer) *string {
	if buf.Len() == 0 {
		return nil
	}

	body := buf.String()
	return &body
}
