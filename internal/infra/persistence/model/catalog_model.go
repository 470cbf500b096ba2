package model

import "time"

// ProductModel is the stored form of a product, keyed by productId.
type ProductModel struct {
	ProductID   string    `docstore:"productId"`
	Name        string    `docstore:"name"`
	Description string    `docstore:"description"`
	Price       float64   `docstore:"price"`
	Stock       int       `docstore:"stock"`
	ImageURL    string    `docstore:"imageUrl"`
	CategoryID  string    `docstore:"categoryId"`
	CreatedAt   time.Time `docstore:"createdAt"`
	UpdatedAt   time.Time `docstore:"updatedAt"`
}

// CategoryModel is the stored form of a category, keyed by categoryId.
type CategoryModel struct {
	CategoryID  string    `docstore:"categoryId"`
	Name        string    `docstore:"name"`
	Description string    `docstore:"description"`
	ImageURL    string    `docstore:"imageUrl"`
	CreatedAt   time.Time `docstore:"createdAt"`
	UpdatedAt   time.Time `docstore:"updatedAt"`
}
