// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "shopcart/internal/delivery/context"
	"shopcart/internal/domain/entity"
	domainerrors "shopcart/internal/domain/errors"
	"shopcart/internal/domain/repository"
	"shopcart/internal/errors"
	"shopcart/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// cartService implements the CartUsecase interface.
type cartService struct {
	cartRepo     repository.CartRepository
	cartItemRepo repository.CartItemRepository
	productRepo  repository.ProductRepository
	logger       *slog.Logger
}

// CartServiceParams holds dependencies for CartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	CartRepo     repository.CartRepository
	CartItemRepo repository.CartItemRepository
	ProductRepo  repository.ProductRepository
	Logger       *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	return &cartService{
		cartRepo:     params.CartRepo,
		cartItemRepo: params.CartItemRepo,
		productRepo:  params.ProductRepo,
		logger:       params.Logger,
	}
}

func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.Logger(ctx, srv.logger)
}

// CreateCart is idempotent per customer: an existing cart is returned untouched.
func (srv *cartService) CreateCart(ctx context.Context, customerID string) (*usecase.CartView, bool, error) {
	if customerID == "" {
		return nil, false, domainerrors.ErrValidationFailed.WithMessage("Customer ID is required")
	}

	carts, err := srv.cartRepo.FindByCustomer(ctx, customerID)
	if err != nil {
		return nil, false, errors.Wrap(err, "failed to find carts by customer")
	}

	if len(carts) > 0 {
		srv.log(ctx).Info("Cart already exists for customer",
			slog.String("customer_id", customerID),
			slog.String("cart_id", carts[0].CartID),
		)

		view, err := srv.view(ctx, carts[0])

		return view, false, err
	}

	cart := entity.NewCart(uuid.New().String(), customerID, time.Now().UTC())
	if err := srv.cartRepo.Create(ctx, cart); err != nil {
		return nil, false, errors.Wrap(err, "failed to create cart")
	}

	srv.log(ctx).Info("Cart created",
		slog.String("customer_id", customerID),
		slog.String("cart_id", cart.CartID),
	)

	return &usecase.CartView{Cart: cart, Items: []*entity.CartItem{}}, true, nil
}

// GetCart returns the cart with its items.
func (srv *cartService) GetCart(ctx context.Context, cartID string) (*usecase.CartView, error) {
	cart, err := srv.findCart(ctx, cartID)
	if err != nil {
		return nil, err
	}

	return srv.view(ctx, cart)
}

// GetCartByCustomer picks the first cart the customer index yields.
func (srv *cartService) GetCartByCustomer(ctx context.Context, customerID string) (*usecase.CartView, error) {
	if customerID == "" {
		return nil, domainerrors.ErrValidationFailed.WithMessage("Customer ID is required")
	}

	carts, err := srv.cartRepo.FindByCustomer(ctx, customerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find carts by customer")
	}
	if len(carts) == 0 {
		return nil, domainerrors.ErrCartNotFound.WithMessage("No cart found for customer ID %s", customerID)
	}
	if len(carts) > 1 {
		srv.log(ctx).Warn("Customer has more than one cart, using the first",
			slog.String("customer_id", customerID),
			slog.Int("count", len(carts)),
		)
	}

	return srv.view(ctx, carts[0])
}

// AddItem adds quantity units of a product, merging into an existing line.
// The stock check compares against the requested quantity only.
func (srv *cartService) AddItem(ctx context.Context, input usecase.AddCartItemInput) (*usecase.CartView, error) {
	if input.Quantity <= 0 {
		return nil, domainerrors.ErrInvalidQuantity
	}

	cart, err := srv.findCart(ctx, input.CartID)
	if err != nil {
		return nil, err
	}

	product, err := srv.findProduct(ctx, input.ProductID)
	if err != nil {
		return nil, err
	}

	if !product.HasStock(input.Quantity) {
		return nil, domainerrors.ErrInsufficientStock.WithMessage(
			"Product is out of stock. Available: %d, Requested: %d", product.Stock, input.Quantity)
	}

	now := time.Now().UTC()

	item, err := srv.cartItemRepo.Find(ctx, cart.CartID, product.ProductID)
	switch {
	case err == nil:
		item.AddQuantity(input.Quantity, now)
		if err := srv.cartItemRepo.Update(ctx, item); err != nil {
			return nil, errors.Wrap(err, "failed to update cart item")
		}

	case errors.Is(err, domainerrors.ErrCartItemNotFound):
		item = entity.NewCartItem(cart.CartID, product, input.Quantity, now)
		if err := srv.cartItemRepo.Create(ctx, item); err != nil {
			return nil, errors.Wrap(err, "failed to create cart item")
		}

	default:
		return nil, errors.Wrap(err, "failed to find cart item")
	}

	srv.log(ctx).Info("Item added to cart",
		slog.String("cart_id", cart.CartID),
		slog.String("product_id", product.ProductID),
		slog.Int("quantity", item.Quantity),
	)

	return srv.recalculate(ctx, cart, now)
}

// UpdateItemQuantity replaces the quantity of an existing line. The stock
// check is skipped when the product no longer exists.
func (srv *cartService) UpdateItemQuantity(ctx context.Context, input usecase.UpdateCartItemInput) (*usecase.CartView, error) {
	if input.Quantity <= 0 {
		return nil, domainerrors.ErrInvalidQuantity
	}

	cart, err := srv.findCart(ctx, input.CartID)
	if err != nil {
		return nil, err
	}

	item, err := srv.findItem(ctx, cart.CartID, input.ProductID)
	if err != nil {
		return nil, err
	}

	product, err := srv.productRepo.FindByID(ctx, input.ProductID)
	switch {
	case err == nil:
		if !product.HasStock(input.Quantity) {
			return nil, domainerrors.ErrInsufficientStock.WithMessage(
				"Product is out of stock. Available: %d, Requested: %d", product.Stock, input.Quantity)
		}
	case errors.Is(err, domainerrors.ErrProductNotFound):
		srv.log(ctx).Warn("Product of cart item no longer exists", slog.String("product_id", input.ProductID))
	default:
		return nil, errors.Wrap(err, "failed to find product")
	}

	now := time.Now().UTC()
	item.SetQuantity(input.Quantity, now)
	if err := srv.cartItemRepo.Update(ctx, item); err != nil {
		return nil, errors.Wrap(err, "failed to update cart item")
	}

	return srv.recalculate(ctx, cart, now)
}

// RemoveItem deletes one line and re-derives the totals from what is left.
func (srv *cartService) RemoveItem(ctx context.Context, cartID, productID string) (*usecase.CartView, error) {
	cart, err := srv.findCart(ctx, cartID)
	if err != nil {
		return nil, err
	}

	if _, err := srv.findItem(ctx, cartID, productID); err != nil {
		return nil, err
	}

	if err := srv.cartItemRepo.Delete(ctx, cartID, productID); err != nil {
		return nil, errors.Wrap(err, "failed to delete cart item")
	}

	srv.log(ctx).Info("Item removed from cart",
		slog.String("cart_id", cartID),
		slog.String("product_id", productID),
	)

	return srv.recalculate(ctx, cart, time.Now().UTC())
}

// ClearCart batch-deletes every line and zeroes the totals.
func (srv *cartService) ClearCart(ctx context.Context, cartID string) (*usecase.CartView, error) {
	cart, err := srv.findCart(ctx, cartID)
	if err != nil {
		return nil, err
	}

	items, err := srv.cartItemRepo.FindByCart(ctx, cartID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find cart items")
	}

	if err := srv.cartItemRepo.DeleteBatch(ctx, items); err != nil {
		return nil, errors.Wrap(err, "failed to delete cart items")
	}

	cart.Reset(time.Now().UTC())
	if err := srv.cartRepo.Update(ctx, cart); err != nil {
		return nil, errors.Wrap(err, "failed to update cart")
	}

	srv.log(ctx).Info("Cart cleared",
		slog.String("cart_id", cartID),
		slog.Int("removed_items", len(items)),
	)

	return &usecase.CartView{Cart: cart, Items: []*entity.CartItem{}}, nil
}

// recalculate re-reads every item of the cart, derives the totals and saves the cart.
func (srv *cartService) recalculate(ctx context.Context, cart *entity.Cart, now time.Time) (*usecase.CartView, error) {
	items, err := srv.cartItemRepo.FindByCart(ctx, cart.CartID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find cart items")
	}

	cart.Recalculate(items, now)
	if err := srv.cartRepo.Update(ctx, cart); err != nil {
		return nil, errors.Wrap(err, "failed to update cart")
	}

	return &usecase.CartView{Cart: cart, Items: items}, nil
}

func (srv *cartService) view(ctx context.Context, cart *entity.Cart) (*usecase.CartView, error) {
	items, err := srv.cartItemRepo.FindByCart(ctx, cart.CartID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find cart items")
	}

	return &usecase.CartView{Cart: cart, Items: items}, nil
}

func (srv *cartService) findCart(ctx context.Context, cartID string) (*entity.Cart, error) {
	cart, err := srv.cartRepo.FindByID(ctx, cartID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrCartNotFound) {
			return nil, domainerrors.ErrCartNotFound.WithMessage("Cart with ID %s not found", cartID)
		}

		return nil, errors.Wrap(err, "failed to find cart")
	}

	return cart, nil
}

func (srv *cartService) findItem(ctx context.Context, cartID, productID string) (*entity.CartItem, error) {
	item, err := srv.cartItemRepo.Find(ctx, cartID, productID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrCartItemNotFound) {
			return nil, domainerrors.ErrCartItemNotFound.WithMessage(
				"Item with product ID %s not found in cart %s", productID, cartID)
		}

		return nil, errors.Wrap(err, "failed to find cart item")
	}

	return item, nil
}

func (srv *cartService) findProduct(ctx context.Context, productID string) (*entity.Product, error) {
	product, err := srv.productRepo.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound.WithMessage("Product with ID %s not found", productID)
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	return product, nil
}
