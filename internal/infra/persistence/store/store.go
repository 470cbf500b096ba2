package store

import (
	"context"
	"log/slog"
	"net/url"

	"shopcart/config"
	"shopcart/internal/domain/constants"
	"shopcart/internal/errors"
	"shopcart/internal/infra/persistence/model"

	"go.uber.org/fx"
	"gocloud.dev/docstore"
	_ "gocloud.dev/docstore/awsdynamodb" // registers the dynamodb:// URL scheme
	"gocloud.dev/docstore/memdocstore"
)

// Store owns one collection per entity type.
type Store struct {
	Customers  *Collection[model.CustomerModel]
	Products   *Collection[model.ProductModel]
	Categories *Collection[model.CategoryModel]
	Carts      *Collection[model.CartModel]
	CartItems  *Collection[model.CartItemModel]
	Orders     *Collection[model.OrderModel]
	OrderItems *Collection[model.OrderItemModel]

	closers []func() error
}

// Params holds dependencies for the Store, injected by Fx.
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// New opens every collection with the configured driver and closes them on shutdown.
func New(params Params) (*Store, error) {
	cfg := params.Config.Store

	s, err := Open(params.Ctx, cfg)
	if err != nil {
		return nil, err
	}

	params.Logger.Info("Document store opened",
		slog.String("driver", cfg.Driver),
		slog.String("carts", cfg.Collections.Carts),
		slog.String("orders", cfg.Collections.Orders),
	)

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Closing document store")

			return s.Close()
		},
	})

	return s, nil
}

// Open opens all collections described by cfg.
func Open(ctx context.Context, cfg config.StoreConfig) (*Store, error) {
	o := &opener{ctx: ctx, driver: cfg.Driver}
	cols := cfg.Collections

	s := &Store{
		Customers:  openTyped[model.CustomerModel](o, cols.Customers, "customerId", ""),
		Products:   openTyped[model.ProductModel](o, cols.Products, "productId", ""),
		Categories: openTyped[model.CategoryModel](o, cols.Categories, "categoryId", ""),
		Carts:      openTyped[model.CartModel](o, cols.Carts, "cartId", ""),
		CartItems:  openTyped[model.CartItemModel](o, cols.CartItems, "cartId", "productId"),
		Orders:     openTyped[model.OrderModel](o, cols.Orders, "orderId", ""),
		OrderItems: openTyped[model.OrderItemModel](o, cols.OrderItems, "orderId", "productId"),
	}
	s.closers = o.closers

	if o.err != nil {
		_ = s.Close()

		return nil, o.err
	}

	return s, nil
}

// OpenInMemory opens an in-process store with the default collection names.
func OpenInMemory() (*Store, error) {
	return Open(context.Background(), config.StoreConfig{
		Driver: constants.StoreDriverMem,
		Collections: config.Collections{
			Customers:  "Customers",
			Products:   "Products",
			Categories: "Categories",
			Carts:      "Carts",
			CartItems:  "CartItems",
			Orders:     "Orders",
			OrderItems: "OrderItems",
		},
	})
}

// Close closes every opened collection and joins their errors.
func (s *Store) Close() error {
	var errs []error
	for _, closeFn := range s.closers {
		if err := closeFn(); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// opener accumulates the first error so Open can build all collections in one expression.
type opener struct {
	ctx     context.Context
	driver  string
	err     error
	closers []func() error
}

func openTyped[M any](o *opener, name, partitionKey, sortKey string) *Collection[M] {
	if o.err != nil {
		return nil
	}

	coll, err := o.open(name, partitionKey, sortKey)
	if err != nil {
		o.err = errors.Wrapf(err, "failed to open collection %s", name)

		return nil
	}

	c := NewCollection[M](name, coll)
	o.closers = append(o.closers, c.Close)

	return c
}

func (o *opener) open(name, partitionKey, sortKey string) (*docstore.Collection, error) {
	switch o.driver {
	case constants.StoreDriverMem:
		if sortKey == "" {
			return memdocstore.OpenCollection(partitionKey, nil)
		}

		return memdocstore.OpenCollectionWithKeyFunc(compositeKey, nil)

	case constants.StoreDriverDynamoDB:
		return docstore.OpenCollection(o.ctx, dynamoURL(name, partitionKey, sortKey))

	default:
		return nil, errors.Errorf("unknown store driver: %s", o.driver)
	}
}

// compositeKey keys in-memory documents by their (partition, sort) pair.
func compositeKey(doc docstore.Document) any {
	keyer, ok := doc.(model.CompositeKeyer)
	if !ok {
		return nil
	}

	key := keyer.CompositeKey()
	if key[0] == "" || key[1] == "" {
		return nil
	}

	return key
}

func dynamoURL(table, partitionKey, sortKey string) string {
	q := url.Values{}
	q.Set("partition_key", partitionKey)
	if sortKey != "" {
		q.Set("sort_key", sortKey)
	}
	q.Set("allow_scans", "true")

	u := url.URL{Scheme: "dynamodb", Host: table, RawQuery: q.Encode()}

	return u.String()
}
