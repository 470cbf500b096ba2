// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"shopcart/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CartHandler     *handler.CartHandler
	OrderHandler    *handler.OrderHandler
	ProductHandler  *handler.ProductHandler
	CategoryHandler *handler.CategoryHandler
	CustomerHandler *handler.CustomerHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	cartHandler     *handler.CartHandler
	orderHandler    *handler.OrderHandler
	productHandler  *handler.ProductHandler
	categoryHandler *handler.CategoryHandler
	customerHandler *handler.CustomerHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		cartHandler:     params.CartHandler,
		orderHandler:    params.OrderHandler,
		productHandler:  params.ProductHandler,
		categoryHandler: params.CategoryHandler,
		customerHandler: params.CustomerHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	apiV1 := e.Group("/api/v1")

	cartsGroup := apiV1.Group("/carts")
	{
		cartsGroup.POST("", r.cartHandler.CreateCart)
		cartsGroup.GET("/:cartId", r.cartHandler.GetCart)
		cartsGroup.POST("/:cartId/items", r.cartHandler.AddItem)
		cartsGroup.PUT("/:cartId/items/:productId", r.cartHandler.UpdateItem)
		cartsGroup.DELETE("/:cartId/items/:productId", r.cartHandler.RemoveItem)
		cartsGroup.DELETE("/:cartId/items", r.cartHandler.ClearCart)
	}

	productsGroup := apiV1.Group("/products")
	{
		productsGroup.POST("", r.productHandler.CreateProduct)
		productsGroup.GET("", r.productHandler.ListProducts)
		productsGroup.GET("/:productId", r.productHandler.GetProduct)
		productsGroup.PUT("/:productId", r.productHandler.UpdateProduct)
		productsGroup.DELETE("/:productId", r.productHandler.DeleteProduct)
	}

	categoriesGroup := apiV1.Group("/categories")
	{
		categoriesGroup.POST("", r.categoryHandler.CreateCategory)
		categoriesGroup.GET("", r.categoryHandler.ListCategories)
		categoriesGroup.GET("/:categoryId", r.categoryHandler.GetCategory)
		categoriesGroup.PUT("/:categoryId", r.categoryHandler.UpdateCategory)
		categoriesGroup.DELETE("/:categoryId", r.categoryHandler.DeleteCategory)
	}

	customersGroup := apiV1.Group("/customers")
	{
		customersGroup.POST("/signup", r.customerHandler.Signup)
		customersGroup.POST("/login", r.customerHandler.Login)
		customersGroup.GET("", r.customerHandler.ListCustomers)
		customersGroup.GET("/:customerId", r.customerHandler.GetCustomer)
		customersGroup.PUT("/:customerId", r.customerHandler.UpdateCustomer)
		customersGroup.DELETE("/:customerId", r.customerHandler.DeleteCustomer)
		customersGroup.GET("/:customerId/cart", r.cartHandler.GetCartByCustomer)
	}

	ordersGroup := apiV1.Group("/orders")
	{
		ordersGroup.POST("", r.orderHandler.CreateOrder)
		ordersGroup.GET("", r.orderHandler.ListOrders)
		ordersGroup.GET("/:orderId", r.orderHandler.GetOrder)
		ordersGroup.PUT("/:orderId/status", r.orderHandler.UpdateOrderStatus)
		ordersGroup.DELETE("/:orderId", r.orderHandler.DeleteOrder)
	}
}
