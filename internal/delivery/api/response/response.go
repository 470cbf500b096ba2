// Package response builds the uniform envelope every API handler returns.
package response

import (
	"encoding/json"
	"net/http"

	domainerrors "shopcart/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const serializationErrorBody = `{"error":"Error serializing response"}`

// Envelope is the transport-neutral result of a handler: status, fixed
// headers and an already serialized body.
type Envelope struct {
	StatusCode int               `json:"statusCode"`
	Headers    map[string]string `json:"headers"`
	Body       string            `json:"body"`
}

// ErrorBody is the payload of every error response.
type ErrorBody struct {
	Error string `json:"error"`
}

func defaultHeaders() map[string]string {
	return map[string]string{
		echo.HeaderContentType:                   echo.MIMEApplicationJSON,
		echo.HeaderAccessControlAllowOrigin:      "*",
		echo.HeaderAccessControlAllowCredentials: "true",
	}
}

// Respond serializes payload into an envelope. A string payload is used as
// the body verbatim. Serialization failures are replaced with a generic
// error body and never returned.
func Respond(statusCode int, payload any) *Envelope {
	env := &Envelope{
		StatusCode: statusCode,
		Headers:    defaultHeaders(),
	}

	switch body := payload.(type) {
	case nil:
	case string:
		env.Body = body
	default:
		data, err := json.Marshal(body)
		if err != nil {
			env.Body = serializationErrorBody
		} else {
			env.Body = string(data)
		}
	}

	return env
}

func Success(payload any) *Envelope {
	return Respond(http.StatusOK, payload)
}

func Created(payload any) *Envelope {
	return Respond(http.StatusCreated, payload)
}

// NoContent returns a 204 envelope with an empty body.
func NoContent() *Envelope {
	return Respond(http.StatusNoContent, nil)
}

func BadRequest(message string) *Envelope {
	return Error(http.StatusBadRequest, message)
}

func Unauthorized(message string) *Envelope {
	return Error(http.StatusUnauthorized, message)
}

func Forbidden(message string) *Envelope {
	return Error(http.StatusForbidden, message)
}

func NotFound(message string) *Envelope {
	return Error(http.StatusNotFound, message)
}

func ServerError(message string) *Envelope {
	return Error(http.StatusInternalServerError, message)
}

// Error returns an envelope carrying {"error": message}.
func Error(statusCode int, message string) *Envelope {
	return Respond(statusCode, ErrorBody{Error: message})
}

// Send writes the envelope to the echo response.
func Send(c echo.Context, env *Envelope) error {
	header := c.Response().Header()
	for key, value := range env.Headers {
		header.Set(key, value)
	}

	if env.StatusCode == http.StatusNoContent || env.Body == "" {
		return c.NoContent(env.StatusCode)
	}

	return c.Blob(env.StatusCode, env.Headers[echo.HeaderContentType], []byte(env.Body))
}

// HandleAppError writes application errors as envelopes and passes anything
// else on to the HTTP error handler.
func HandleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return Send(c, Error(appErr.HTTPCode(), appErr.Message()))
	}

	return errors.WithStack(err)
}
