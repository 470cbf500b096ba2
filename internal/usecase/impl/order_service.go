package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "shopcart/internal/delivery/context"
	"shopcart/internal/domain/entity"
	domainerrors "shopcart/internal/domain/errors"
	"shopcart/internal/domain/repository"
	"shopcart/internal/domain/service"
	"shopcart/internal/errors"
	"shopcart/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// orderService implements the OrderUsecase interface.
type orderService struct {
	orderRepo     repository.OrderRepository
	orderItemRepo repository.OrderItemRepository
	cartRepo      repository.CartRepository
	cartItemRepo  repository.CartItemRepository
	productRepo   repository.ProductRepository
	publisher     service.EventPublisher
	logger        *slog.Logger
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	OrderRepo      repository.OrderRepository
	OrderItemRepo  repository.OrderItemRepository
	CartRepo       repository.CartRepository
	CartItemRepo   repository.CartItemRepository
	ProductRepo    repository.ProductRepository
	EventPublisher service.EventPublisher
	Logger         *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		orderRepo:     params.OrderRepo,
		orderItemRepo: params.OrderItemRepo,
		cartRepo:      params.CartRepo,
		cartItemRepo:  params.CartItemRepo,
		productRepo:   params.ProductRepo,
		publisher:     params.EventPublisher,
		logger:        params.Logger,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.Logger(ctx, srv.logger)
}

// CreateOrder places an order from the customer's cart.
//
// Each step persists on its own. Once the order is written, a failing call
// returns the error with everything before it kept: the order may exist while
// stock, order items or the cart are not yet updated.
func (srv *orderService) CreateOrder(ctx context.Context, input usecase.CreateOrderInput) (*usecase.OrderView, error) {
	cart, err := srv.cartRepo.FindByID(ctx, input.CartID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrCartNotFound) {
			return nil, domainerrors.ErrCartNotFound.WithMessage("Cart with ID %s not found", input.CartID)
		}

		return nil, errors.Wrap(err, "failed to find cart")
	}
	if !cart.IsOwnedBy(input.CustomerID) {
		return nil, domainerrors.ErrCartOwnership
	}
	if cart.TotalItems == 0 {
		return nil, domainerrors.ErrCartEmpty
	}

	cartItems, err := srv.cartItemRepo.FindByCart(ctx, cart.CartID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find cart items")
	}
	if len(cartItems) == 0 {
		return nil, domainerrors.ErrCartItemsMissing
	}

	now := time.Now().UTC()
	order := &entity.Order{
		OrderID:         uuid.New().String(),
		CustomerID:      input.CustomerID,
		OrderDate:       now,
		Status:          entity.OrderStatusPending,
		TotalPrice:      cart.TotalPrice,
		TotalItems:      cart.TotalItems,
		ShippingAddress: input.ShippingAddress,
		PaymentMethod:   input.PaymentMethod,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := srv.orderRepo.Create(ctx, order); err != nil {
		return nil, errors.Wrap(err, "failed to create order")
	}

	orderItems := make([]*entity.OrderItem, 0, len(cartItems))
	for _, cartItem := range cartItems {
		orderItems = append(orderItems, entity.NewOrderItem(order.OrderID, cartItem, now))

		if err := srv.takeStock(ctx, cartItem, now); err != nil {
			return nil, srv.partial(ctx, order, "update product stock", err)
		}
	}

	if err := srv.orderItemRepo.CreateBatch(ctx, orderItems); err != nil {
		return nil, srv.partial(ctx, order, "create order items", err)
	}

	for _, cartItem := range cartItems {
		if err := srv.cartItemRepo.Delete(ctx, cartItem.CartID, cartItem.ProductID); err != nil {
			return nil, srv.partial(ctx, order, "delete cart item", err)
		}
	}

	cart.Reset(now)
	if err := srv.cartRepo.Update(ctx, cart); err != nil {
		return nil, srv.partial(ctx, order, "reset cart", err)
	}

	srv.log(ctx).Info("Order created",
		slog.String("order_id", order.OrderID),
		slog.String("cart_id", cart.CartID),
		slog.Int("items", len(orderItems)),
		slog.Float64("total_price", order.TotalPrice),
	)
	srv.publish(ctx, service.OrderEventCreated, order)

	return &usecase.OrderView{Order: order, Items: orderItems}, nil
}

// takeStock decrements the product's stock by the item quantity, clamped at
// zero. Stock is not re-checked here, and a deleted product is skipped.
func (srv *orderService) takeStock(ctx context.Context, item *entity.CartItem, now time.Time) error {
	product, err := srv.productRepo.FindByID(ctx, item.ProductID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrProductNotFound) {
			srv.log(ctx).Warn("Ordered product no longer exists, stock not updated",
				slog.String("product_id", item.ProductID),
			)

			return nil
		}

		return err
	}

	product.DecrementStock(item.Quantity)
	product.UpdatedAt = now

	return srv.productRepo.Update(ctx, product)
}

// partial logs a failure that happened after the order was stored.
func (srv *orderService) partial(ctx context.Context, order *entity.Order, step string, err error) error {
	srv.log(ctx).Error("Order creation stopped after order was stored",
		slog.String("order_id", order.OrderID),
		slog.String("step", step),
		slog.Any("error", err),
	)

	return errors.Wrapf(err, "failed to %s", step)
}

// GetOrder returns the order with its items.
func (srv *orderService) GetOrder(ctx context.Context, orderID string) (*usecase.OrderView, error) {
	order, err := srv.findOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	return srv.view(ctx, order)
}

// ListOrders returns the customer's orders, or every order when customerID is empty.
func (srv *orderService) ListOrders(ctx context.Context, customerID string) ([]*entity.Order, error) {
	var (
		orders []*entity.Order
		err    error
	)
	if customerID != "" {
		orders, err = srv.orderRepo.FindByCustomer(ctx, customerID)
	} else {
		orders, err = srv.orderRepo.List(ctx)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return orders, nil
}

// UpdateOrderStatus sets any valid status; transitions between statuses are unrestricted.
func (srv *orderService) UpdateOrderStatus(ctx context.Context, orderID, status string) (*usecase.OrderView, error) {
	next := entity.OrderStatus(status)
	if !next.IsValid() {
		return nil, domainerrors.ErrInvalidOrderStatus.WithMessage(
			"Invalid status. Valid statuses are: %s", entity.OrderStatusList())
	}

	order, err := srv.findOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}

	previous := order.Status
	order.Status = next
	order.UpdatedAt = time.Now().UTC()
	if err := srv.orderRepo.Update(ctx, order); err != nil {
		return nil, errors.Wrap(err, "failed to update order")
	}

	srv.log(ctx).Info("Order status updated",
		slog.String("order_id", orderID),
		slog.String("from", previous.String()),
		slog.String("to", next.String()),
	)
	srv.publish(ctx, service.OrderEventStatusChanged, order)

	return srv.view(ctx, order)
}

// DeleteOrder removes a PENDING order and its items.
func (srv *orderService) DeleteOrder(ctx context.Context, orderID string) error {
	order, err := srv.findOrder(ctx, orderID)
	if err != nil {
		return err
	}

	if order.Status != entity.OrderStatusPending {
		return domainerrors.ErrOrderNotDeletable.WithMessage(
			"Cannot delete order with status %s. Only PENDING orders can be deleted.", order.Status)
	}

	items, err := srv.orderItemRepo.FindByOrder(ctx, orderID)
	if err != nil {
		return errors.Wrap(err, "failed to find order items")
	}

	if err := srv.orderItemRepo.DeleteBatch(ctx, items); err != nil {
		return errors.Wrap(err, "failed to delete order items")
	}

	if err := srv.orderRepo.Delete(ctx, orderID); err != nil {
		return errors.Wrap(err, "failed to delete order")
	}

	srv.publish(ctx, service.OrderEventDeleted, order)

	return nil
}

func (srv *orderService) view(ctx context.Context, order *entity.Order) (*usecase.OrderView, error) {
	items, err := srv.orderItemRepo.FindByOrder(ctx, order.OrderID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find order items")
	}

	return &usecase.OrderView{Order: order, Items: items}, nil
}

func (srv *orderService) findOrder(ctx context.Context, orderID string) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound.WithMessage("Order with ID %s not found", orderID)
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	return order, nil
}

// publish sends an order event; failures are logged and otherwise ignored.
func (srv *orderService) publish(ctx context.Context, eventType string, order *entity.Order) {
	event := &service.OrderEvent{
		RequestID:  deliverycontext.RequestID(ctx),
		Type:       eventType,
		OrderID:    order.OrderID,
		CustomerID: order.CustomerID,
		Status:     order.Status.String(),
		TotalPrice: order.TotalPrice,
		TotalItems: order.TotalItems,
		OccurredAt: time.Now().UTC(),
	}

	if err := srv.publisher.PublishOrderEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish order event",
			slog.String("type", eventType),
			slog.String("order_id", order.OrderID),
			slog.Any("error", err),
		)
	}
}
