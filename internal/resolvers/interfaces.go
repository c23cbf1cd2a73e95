package resolvers

import (
	"github.com/prakasham-tecinyaw/serverless-api/internal/loaders"
	"github.com/prakasham-tecinyaw/serverless-api/internal/model"
)

// Store is the record store the resolvers read and mutate.
type Store interface {
	loaders.Source

	Product(id int) (model.Product, bool)
	Products() []model.Product
	AddProduct(in model.ProductInput) model.Product
	UpdateProduct(id int, in model.ProductInput) (model.Product, error)
	DeleteProduct(id int) (model.Product, error)

	Seller(id int) (model.Seller, bool)
	Sellers() []model.Seller
	AddSeller(in model.SellerInput) model.Seller
	UpdateSeller(id int, in model.SellerInput) (model.Seller, error)
	DeleteSeller(id int) (model.Seller, error)
}
