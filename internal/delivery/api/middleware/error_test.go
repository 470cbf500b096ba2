package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "shopcart/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	m := NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil)))
	e := echo.New()

	cases := []struct {
		name string
		err  error
		code int
		body string
	}{
		{"app error", domainerrors.ErrOrderNotFound.WithMessage("Order with ID o1 not found"), http.StatusNotFound, `{"error":"Order with ID o1 not found"}`},
		{"echo error", echo.ErrMethodNotAllowed, http.StatusMethodNotAllowed, `{"error":"Method Not Allowed"}`},
		{"unhandled error exposes message", errors.Wrap(errors.New("connection reset"), "failed to find cart"), http.StatusInternalServerError, `{"error":"failed to find cart: connection reset"}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

			m.HandleHTTPError(tc.err, c)

			assert.Equal(t, tc.code, rec.Code)
			assert.JSONEq(t, tc.body, rec.Body.String())
			assert.Equal(t, "*", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
		})
	}
}
