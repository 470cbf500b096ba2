package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"shopcart/config"
	apimiddleware "shopcart/internal/delivery/api/middleware"
	"shopcart/internal/delivery/api/router"
	"shopcart/internal/delivery/api/router/handler"
	"shopcart/internal/domain/entity"
	"shopcart/internal/infra/persistence/store"
	"shopcart/internal/infra/pubsub"
	"shopcart/internal/usecase"
	"shopcart/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAPI(t *testing.T) *echo.Echo {
	t.Helper()

	s, err := store.OpenInMemory()
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	cartRepo := store.NewCartRepository(s)
	cartItemRepo := store.NewCartItemRepository(s)
	productRepo := store.NewProductRepository(s)

	cartUC := impl.NewCartService(impl.CartServiceParams{
		CartRepo:     cartRepo,
		CartItemRepo: cartItemRepo,
		ProductRepo:  productRepo,
		Logger:       logger,
	})
	orderUC := impl.NewOrderService(impl.OrderServiceParams{
		OrderRepo:      store.NewOrderRepository(s),
		OrderItemRepo:  store.NewOrderItemRepository(s),
		CartRepo:       cartRepo,
		CartItemRepo:   cartItemRepo,
		ProductRepo:    productRepo,
		EventPublisher: pubsub.NewNoopPublisher(logger),
		Logger:         logger,
	})
	productUC := impl.NewProductService(impl.ProductServiceParams{ProductRepo: productRepo, Logger: logger})
	categoryUC := impl.NewCategoryService(impl.CategoryServiceParams{CategoryRepo: store.NewCategoryRepository(s), Logger: logger})
	customerUC := impl.NewCustomerService(impl.CustomerServiceParams{CustomerRepo: store.NewCustomerRepository(s), Logger: logger})

	cfg := &config.Config{}
	cfg.HTTP.MaxRequestBodySize = "100KB"

	return NewEcho(cfg, logger, apimiddleware.NewErrorMiddleware(logger), router.RouterParams{
		CartHandler:     handler.NewCartHandler(handler.CartHandlerParams{CartUC: cartUC, Logger: logger}),
		OrderHandler:    handler.NewOrderHandler(handler.OrderHandlerParams{OrderUC: orderUC, Logger: logger}),
		ProductHandler:  handler.NewProductHandler(handler.ProductHandlerParams{ProductUC: productUC, Logger: logger}),
		CategoryHandler: handler.NewCategoryHandler(categoryUC),
		CustomerHandler: handler.NewCustomerHandler(handler.CustomerHandlerParams{CustomerUC: customerUC, Logger: logger}),
	})
}

func do(t *testing.T, e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())

	return out
}

func errorMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	return decode[map[string]string](t, rec)["error"]
}

func TestAPI_CheckoutFlow(t *testing.T) {
	e := newTestAPI(t)

	rec := do(t, e, http.MethodPost, "/api/v1/customers/signup", `{"email":"ada@example.com","password":"secret"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	customer := decode[entity.Customer](t, rec)

	rec = do(t, e, http.MethodPost, "/api/v1/products", `{"name":"Mug","price":5,"stock":10,"categoryId":"kitchen"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	product := decode[entity.Product](t, rec)

	rec = do(t, e, http.MethodPost, "/api/v1/carts", `{"customerId":"`+customer.CustomerID+`"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	cart := decode[usecase.CartView](t, rec).Cart

	rec = do(t, e, http.MethodPost, "/api/v1/carts", `{"customerId":"`+customer.CustomerID+`"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, cart.CartID, decode[usecase.CartView](t, rec).Cart.CartID)

	itemsPath := "/api/v1/carts/" + cart.CartID + "/items"
	rec = do(t, e, http.MethodPost, itemsPath, `{"productId":"`+product.ProductID+`","quantity":3}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	view := decode[usecase.CartView](t, rec)
	assert.Equal(t, 3, view.Cart.TotalItems)
	assert.Equal(t, 15.0, view.Cart.TotalPrice)

	rec = do(t, e, http.MethodPost, itemsPath, `{"productId":"`+product.ProductID+`","quantity":2}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	view = decode[usecase.CartView](t, rec)
	require.Len(t, view.Items, 1)
	assert.Equal(t, 5, view.Items[0].Quantity)
	assert.Equal(t, 25.0, view.Cart.TotalPrice)

	rec = do(t, e, http.MethodPost, "/api/v1/orders", `{"cartId":"`+cart.CartID+`","customerId":"`+customer.CustomerID+`","shippingAddress":"1 Main St","paymentMethod":"card"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	order := decode[usecase.OrderView](t, rec)
	assert.Equal(t, entity.OrderStatusPending, order.Order.Status)
	assert.Equal(t, 5, order.Order.TotalItems)
	assert.Equal(t, 25.0, order.Order.TotalPrice)

	rec = do(t, e, http.MethodGet, "/api/v1/products/"+product.ProductID, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 5, decode[entity.Product](t, rec).Stock)

	rec = do(t, e, http.MethodGet, "/api/v1/customers/"+customer.CustomerID+"/cart", "")
	require.Equal(t, http.StatusOK, rec.Code)
	view = decode[usecase.CartView](t, rec)
	assert.Zero(t, view.Cart.TotalItems)
	assert.Empty(t, view.Items)

	rec = do(t, e, http.MethodPut, "/api/v1/orders/"+order.Order.OrderID+"/status", `{"status":"SHELVED"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, e, http.MethodGet, "/api/v1/orders?customerId="+customer.CustomerID, "")
	require.Equal(t, http.StatusOK, rec.Code)
	orders := decode[[]entity.Order](t, rec)
	require.Len(t, orders, 1)
	assert.Equal(t, entity.OrderStatusPending, orders[0].Status)

	rec = do(t, e, http.MethodDelete, "/api/v1/orders/"+order.Order.OrderID, "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestAPI_ResponseHeaders(t *testing.T) {
	e := newTestAPI(t)

	rec := do(t, e, http.MethodGet, "/api/v1/categories", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, "*", rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
	assert.Equal(t, "true", rec.Header().Get(echo.HeaderAccessControlAllowCredentials))
	assert.JSONEq(t, `[]`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}

func TestAPI_InputErrors(t *testing.T) {
	e := newTestAPI(t)

	rec := do(t, e, http.MethodPost, "/api/v1/orders", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Request body is required", errorMessage(t, rec))

	rec = do(t, e, http.MethodPost, "/api/v1/orders", `{"cartId":"c1","customerId":"C1","paymentMethod":"card"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Shipping address is required", errorMessage(t, rec))

	rec = do(t, e, http.MethodPost, "/api/v1/carts/missing/items", `{"productId":"P1","quantity":0}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Quantity must be greater than 0", errorMessage(t, rec))

	rec = do(t, e, http.MethodPost, "/api/v1/carts/missing/items", `{"productId":"P1","quantity":1}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Cart with ID missing not found", errorMessage(t, rec))

	rec = do(t, e, http.MethodPost, "/api/v1/customers/login", `{"email":"nobody@example.com","password":"x"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid email or password", errorMessage(t, rec))

	rec = do(t, e, http.MethodGet, "/api/v1/nowhere", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Not Found", errorMessage(t, rec))
}

func TestAPI_OrderOwnership(t *testing.T) {
	e := newTestAPI(t)

	rec := do(t, e, http.MethodPost, "/api/v1/carts", `{"customerId":"C1"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	cart := decode[usecase.CartView](t, rec).Cart

	rec = do(t, e, http.MethodPost, "/api/v1/orders", `{"cartId":"`+cart.CartID+`","customerId":"C2","shippingAddress":"x","paymentMethod":"card"}`)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "Cart does not belong to the customer", errorMessage(t, rec))

	rec = do(t, e, http.MethodPost, "/api/v1/orders", `{"cartId":"`+cart.CartID+`","customerId":"C1","shippingAddress":"x","paymentMethod":"card"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Cart is empty", errorMessage(t, rec))
}

func TestAPI_HealthCheck(t *testing.T) {
	e := newTestAPI(t)

	rec := do(t, e, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
