package store

import (
	"context"

	"shopcart/internal/domain/constants"
	"shopcart/internal/domain/entity"
	domainerrors "shopcart/internal/domain/errors"
	"shopcart/internal/domain/repository"
	"shopcart/internal/errors"
	"shopcart/internal/infra/persistence/model"
)

// cartRepository implements the repository.CartRepository interface.
type cartRepository struct {
	coll *Collection[model.CartModel]
}

// NewCartRepository is the constructor for cartRepository.
func NewCartRepository(s *Store) repository.CartRepository {
	return &cartRepository{coll: s.Carts}
}

func (repo *cartRepository) FindByID(ctx context.Context, cartID string) (*entity.Cart, error) {
	doc := &model.CartModel{CartID: cartID}
	if err := repo.coll.Get(ctx, doc); err != nil {
		if errors.Is(err, ErrRecordNotFound) {
			return nil, domainerrors.ErrCartNotFound
		}

		return nil, err
	}

	return toCartDomain(doc), nil
}

func (repo *cartRepository) FindByCustomer(ctx context.Context, customerID string) ([]*entity.Cart, error) {
	docs, err := repo.coll.Query(ctx, constants.IndexCustomer, "customerId", customerID)
	if err != nil {
		return nil, err
	}

	return mapSlice(docs, toCartDomain), nil
}

func (repo *cartRepository) Create(ctx context.Context, cart *entity.Cart) error {
	return repo.coll.Put(ctx, fromCartDomain(cart))
}

func (repo *cartRepository) Update(ctx context.Context, cart *entity.Cart) error {
	return repo.coll.Update(ctx, fromCartDomain(cart))
}

func (repo *cartRepository) Delete(ctx context.Context, cartID string) error {
	return repo.coll.Delete(ctx, &model.CartModel{CartID: cartID})
}

// cartItemRepository implements the repository.CartItemRepository interface.
type cartItemRepository struct {
	coll *Collection[model.CartItemModel]
}

// NewCartItemRepository is the constructor for cartItemRepository.
func NewCartItemRepository(s *Store) repository.CartItemRepository {
	return &cartItemRepository{coll: s.CartItems}
}

func (repo *cartItemRepository) Find(ctx context.Context, cartID, productID string) (*entity.CartItem, error) {
	doc := &model.CartItemModel{CartID: cartID, ProductID: productID}
	if err := repo.coll.Get(ctx, doc); err != nil {
		if errors.Is(err, ErrRecordNotFound) {
			return nil, domainerrors.ErrCartItemNotFound
		}

		return nil, err
	}

	return toCartItemDomain(doc), nil
}

func (repo *cartItemRepository) FindByCart(ctx context.Context, cartID string) ([]*entity.CartItem, error) {
	docs, err := repo.coll.Query(ctx, constants.IndexCart, "cartId", cartID)
	if err != nil {
		return nil, err
	}

	return mapSlice(docs, toCartItemDomain), nil
}

func (repo *cartItemRepository) Create(ctx context.Context, item *entity.CartItem) error {
	return repo.coll.Put(ctx, fromCartItemDomain(item))
}

func (repo *cartItemRepository) Update(ctx context.Context, item *entity.CartItem) error {
	return repo.coll.Update(ctx, fromCartItemDomain(item))
}

func (repo *cartItemRepository) Delete(ctx context.Context, cartID, productID string) error {
	return repo.coll.Delete(ctx, &model.CartItemModel{CartID: cartID, ProductID: productID})
}

func (repo *cartItemRepository) DeleteBatch(ctx context.Context, items []*entity.CartItem) error {
	return repo.coll.BatchDelete(ctx, mapSlice(items, fromCartItemDomain))
}

// --- Mapper Functions ---

func toCartDomain(data *model.CartModel) *entity.Cart {
	if data == nil {
		return nil
	}

	return &entity.Cart{
		CartID:     data.CartID,
		CustomerID: data.CustomerID,
		TotalPrice: data.TotalPrice,
		TotalItems: data.TotalItems,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

func fromCartDomain(data *entity.Cart) *model.CartModel {
	if data == nil {
		return nil
	}

	return &model.CartModel{
		CartID:     data.CartID,
		CustomerID: data.CustomerID,
		TotalPrice: data.TotalPrice,
		TotalItems: data.TotalItems,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

func toCartItemDomain(data *model.CartItemModel) *entity.CartItem {
	if data == nil {
		return nil
	}

	return &entity.CartItem{
		CartID:     data.CartID,
		ProductID:  data.ProductID,
		Name:       data.Name,
		Price:      data.Price,
		ImageURL:   data.ImageURL,
		Quantity:   data.Quantity,
		TotalPrice: data.TotalPrice,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

func fromCartItemDomain(data *entity.CartItem) *model.CartItemModel {
	if data == nil {
		return nil
	}

	return &model.CartItemModel{
		CartID:     data.CartID,
		ProductID:  data.ProductID,
		Name:       data.Name,
		Price:      data.Price,
		ImageURL:   data.ImageURL,
		Quantity:   data.Quantity,
		TotalPrice: data.TotalPrice,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}
