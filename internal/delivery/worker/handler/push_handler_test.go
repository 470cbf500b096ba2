package handler

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"shopcart/config"
	"shopcart/internal/domain/constants"
	"shopcart/internal/domain/service"
	"shopcart/internal/infra/pubsub"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPushHandler(t *testing.T, provider, env string) (*PushHandler, *bytes.Buffer) {
	t.Helper()

	cfg := &config.Config{Events: &config.EventsConfig{Provider: provider}}
	cfg.Env.Env = env

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	return NewPushHandler(PushHandlerParams{Config: cfg, Logger: logger}), &buf
}

func pushBody(t *testing.T, event any, attrs map[string]string) string {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	var msg pubsub.PushMessage
	msg.Message.Data = base64.StdEncoding.EncodeToString(data)
	msg.Message.Attributes = attrs
	msg.Message.MessageID = "msg-1"
	msg.Subscription = "orders-sub"

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func servePush(t *testing.T, h *PushHandler, body string, header http.Header) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for k, v := range header {
		req.Header[k] = v
	}
	rec := httptest.NewRecorder()

	require.NoError(t, h.HandlePush(e.NewContext(req, rec)))

	return rec
}

func TestHandlePush_LogsOrderEvent(t *testing.T) {
	h, logs := newTestPushHandler(t, constants.EventProviderLocal, constants.EnvLocal)

	event := service.OrderEvent{
		RequestID:  "req-from-event",
		Type:       service.OrderEventCreated,
		OrderID:    "O1",
		CustomerID: "C1",
		Status:     "PENDING",
		TotalPrice: 25,
		TotalItems: 5,
		OccurredAt: time.Now().UTC(),
	}

	rec := servePush(t, h, pushBody(t, event, map[string]string{"request_id": "req-from-attr"}), nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	out := logs.String()
	assert.Contains(t, out, `"order_id":"O1"`)
	assert.Contains(t, out, `"type":"order_created"`)
	assert.Contains(t, out, `"request_id":"req-from-attr"`)
	assert.Contains(t, out, `"message_id":"msg-1"`)
}

func TestHandlePush_RequestIDFallsBackToEvent(t *testing.T) {
	h, logs := newTestPushHandler(t, constants.EventProviderLocal, constants.EnvLocal)

	event := service.OrderEvent{
		RequestID: "req-from-event",
		Type:      service.OrderEventStatusChanged,
		OrderID:   "O1",
		Status:    "SHIPPED",
	}

	rec := servePush(t, h, pushBody(t, event, nil), nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, logs.String(), `"request_id":"req-from-event"`)
	assert.Contains(t, logs.String(), `"status":"SHIPPED"`)
}

func TestHandlePush_Rejections(t *testing.T) {
	tests := []struct {
		name     string
		body     func(t *testing.T) string
		wantCode int
	}{
		{
			name:     "not json",
			body:     func(*testing.T) string { return "{" },
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "data not base64",
			body:     func(*testing.T) string { return `{"message":{"data":"%%%","messageId":"m"}}` },
			wantCode: http.StatusBadRequest,
		},
		{
			name: "data not an event",
			body: func(*testing.T) string {
				data := base64.StdEncoding.EncodeToString([]byte("not json"))

				return `{"message":{"data":"` + data + `","messageId":"m"}}`
			},
			wantCode: http.StatusBadRequest,
		},
		{
			name: "unknown event type is acknowledged",
			body: func(t *testing.T) string {
				return pushBody(t, service.OrderEvent{Type: "order_exploded", OrderID: "O1"}, nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name: "missing order id is acknowledged",
			body: func(t *testing.T) string {
				return pushBody(t, service.OrderEvent{Type: service.OrderEventDeleted}, nil)
			},
			wantCode: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newTestPushHandler(t, constants.EventProviderLocal, constants.EnvLocal)
			rec := servePush(t, h, tt.body(t), nil)
			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestHandlePush_GoogleRequiresToken(t *testing.T) {
	h, _ := newTestPushHandler(t, constants.EventProviderGoogle, "production")
	require.True(t, h.verifyPushAuth)

	body := pushBody(t, service.OrderEvent{Type: service.OrderEventCreated, OrderID: "O1"}, nil)

	rec := servePush(t, h, body, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = servePush(t, h, body, http.Header{"Authorization": []string{"Basic abc"}})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestNewPushHandler_SkipsAuthInDevelop(t *testing.T) {
	h, _ := newTestPushHandler(t, constants.EventProviderGoogle, constants.EnvDevelop)
	assert.False(t, h.verifyPushAuth)

	h, _ = newTestPushHandler(t, constants.EventProviderKafka, "production")
	assert.False(t, h.verifyPushAuth)
}
