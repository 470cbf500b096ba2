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

// customerRepository implements the repository.CustomerRepository interface.
type customerRepository struct {
	coll *Collection[model.CustomerModel]
}

// NewCustomerRepository is the constructor for customerRepository.
func NewCustomerRepository(s *Store) repository.CustomerRepository {
	return &customerRepository{coll: s.Customers}
}

func (repo *customerRepository) FindByID(ctx context.Context, customerID string) (*entity.Customer, error) {
	doc := &model.CustomerModel{CustomerID: customerID}
	if err := repo.coll.Get(ctx, doc); err != nil {
		if errors.Is(err, ErrRecordNotFound) {
			return nil, domainerrors.ErrCustomerNotFound
		}

		return nil, err
	}

	return toCustomerDomain(doc), nil
}

func (repo *customerRepository) FindByEmail(ctx context.Context, email string) ([]*entity.Customer, error) {
	docs, err := repo.coll.Query(ctx, constants.IndexEmail, "email", email)
	if err != nil {
		return nil, err
	}

	return mapSlice(docs, toCustomerDomain), nil
}

func (repo *customerRepository) List(ctx context.Context) ([]*entity.Customer, error) {
	docs, err := repo.coll.Scan(ctx)
	if err != nil {
		return nil, err
	}

	return mapSlice(docs, toCustomerDomain), nil
}

func (repo *customerRepository) Create(ctx context.Context, customer *entity.Customer) error {
	return repo.coll.Put(ctx, fromCustomerDomain(customer))
}

func (repo *customerRepository) Update(ctx context.Context, customer *entity.Customer) error {
	return repo.coll.Update(ctx, fromCustomerDomain(customer))
}

func (repo *customerRepository) Delete(ctx context.Context, customerID string) error {
	return repo.coll.Delete(ctx, &model.CustomerModel{CustomerID: customerID})
}

// --- Mapper Functions ---

func toCustomerDomain(data *model.CustomerModel) *entity.Customer {
	if data == nil {
		return nil
	}

	return &entity.Customer{
		CustomerID: data.CustomerID,
		Email:      data.Email,
		FirstName:  data.FirstName,
		LastName:   data.LastName,
		Password:   data.Password,
		Address:    data.Address,
		Phone:      data.Phone,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

func fromCustomerDomain(data *entity.Customer) *model.CustomerModel {
	if data == nil {
		return nil
	}

	return &model.CustomerModel{
		CustomerID: data.CustomerID,
		Email:      data.Email,
		FirstName:  data.FirstName,
		LastName:   data.LastName,
		Password:   data.Password,
		Address:    data.Address,
		Phone:      data.Phone,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}

// mapSlice converts every stored document with fn.
func mapSlice[M, E any](docs []*M, fn func(*M) *E) []*E {
	out := make([]*E, 0, len(docs))
	for _, doc := range docs {
		out = append(out, fn(doc))
	}

	return out
}
