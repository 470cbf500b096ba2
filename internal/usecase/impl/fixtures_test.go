package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"shopcart/internal/domain/entity"
	"shopcart/internal/domain/repository"
	"shopcart/internal/domain/service"
	"shopcart/internal/infra/persistence/store"
	"shopcart/internal/infra/pubsub"
	"shopcart/internal/usecase"

	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// shopFixtures wires every service over one in-memory store.
type shopFixtures struct {
	ctx context.Context

	customerRepo  repository.CustomerRepository
	productRepo   repository.ProductRepository
	categoryRepo  repository.CategoryRepository
	cartRepo      repository.CartRepository
	cartItemRepo  repository.CartItemRepository
	orderRepo     repository.OrderRepository
	orderItemRepo repository.OrderItemRepository

	carts      usecase.CartUsecase
	orders     usecase.OrderUsecase
	products   usecase.ProductUsecase
	categories usecase.CategoryUsecase
	customers  usecase.CustomerUsecase
}

func createTestShop(t *testing.T) *shopFixtures {
	t.Helper()

	return createTestShopWithPublisher(t, pubsub.NewNoopPublisher(newDiscardLogger()))
}

func createTestShopWithPublisher(t *testing.T, publisher service.EventPublisher) *shopFixtures {
	t.Helper()

	s, err := store.OpenInMemory()
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	logger := newDiscardLogger()
	f := &shopFixtures{
		ctx:           context.Background(),
		customerRepo:  store.NewCustomerRepository(s),
		productRepo:   store.NewProductRepository(s),
		categoryRepo:  store.NewCategoryRepository(s),
		cartRepo:      store.NewCartRepository(s),
		cartItemRepo:  store.NewCartItemRepository(s),
		orderRepo:     store.NewOrderRepository(s),
		orderItemRepo: store.NewOrderItemRepository(s),
	}

	f.carts = NewCartService(CartServiceParams{
		CartRepo:     f.cartRepo,
		CartItemRepo: f.cartItemRepo,
		ProductRepo:  f.productRepo,
		Logger:       logger,
	})
	f.orders = NewOrderService(OrderServiceParams{
		OrderRepo:      f.orderRepo,
		OrderItemRepo:  f.orderItemRepo,
		CartRepo:       f.cartRepo,
		CartItemRepo:   f.cartItemRepo,
		ProductRepo:    f.productRepo,
		EventPublisher: publisher,
		Logger:         logger,
	})
	f.products = NewProductService(ProductServiceParams{
		ProductRepo: f.productRepo,
		Logger:      logger,
	})
	f.categories = NewCategoryService(CategoryServiceParams{
		CategoryRepo: f.categoryRepo,
		Logger:       logger,
	})
	f.customers = NewCustomerService(CustomerServiceParams{
		CustomerRepo: f.customerRepo,
		Logger:       logger,
	})

	return f
}

func (f *shopFixtures) seedProduct(t *testing.T, productID string, price float64, stock int) *entity.Product {
	t.Helper()

	now := time.Now().UTC()
	product := &entity.Product{
		ProductID:  productID,
		Name:       "Product " + productID,
		Price:      price,
		Stock:      stock,
		CategoryID: "cat-1",
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	require.NoError(t, f.productRepo.Create(f.ctx, product))

	return product
}

func (f *shopFixtures) seedCart(t *testing.T, customerID string) *entity.Cart {
	t.Helper()

	view, created, err := f.carts.CreateCart(f.ctx, customerID)
	require.NoError(t, err)
	require.True(t, created)

	return view.Cart
}

func (f *shopFixtures) stockOf(t *testing.T, productID string) int {
	t.Helper()

	product, err := f.productRepo.FindByID(f.ctx, productID)
	require.NoError(t, err)

	return product.Stock
}
