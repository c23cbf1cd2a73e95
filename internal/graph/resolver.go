package graph

import (
	"github.com/graphql-go/graphql"
	"github.com/pkg/errors"

	"github.com/prakasham-tecinyaw/serverless-api/internal/model"
	"github.com/prakasham-tecinyaw/serverless-api/internal/resolvers"
)

// Resolver is the root of the schema. It holds the dependencies every field
// resolver needs.
type Resolver struct {
	Store resolvers.Store
}

// NewResolver creates a resolver root backed by st.
func NewResolver(st resolvers.Store) *Resolver {
	return &Resolver{Store: st}
}

// Schema declares the Product and Seller types and the Query and Mutation
// roots, with every field bound to r.
func (r *Resolver) Schema() (graphql.Schema, error) {
	product := newProductType()
	seller := newSellerType()

	product.AddFieldConfig("seller", &graphql.Field{
		Type:        seller,
		Description: "The seller of the product",
		Resolve:     r.productSeller,
	})
	seller.AddFieldConfig("products", &graphql.Field{
		Type:        graphql.NewList(product),
		Description: "The products of the seller",
		Resolve:     r.sellerProducts,
	})

	schema, err := graphql.NewSchema(graphql.SchemaConfig{
		Query:    r.queryType(product, seller),
		Mutation: r.mutationType(product, seller),
	})
	if err != nil {
		return graphql.Schema{}, errors.Wrap(err, "build schema")
	}
	return schema, nil
}

// productValue and sellerValue hand a typed result to the engine; a nil
// record must reach it as an untyped nil.
func productValue(v *model.Product, err error) (interface{}, error) {
	if err != nil || v == nil {
		return nil, err
	}
	return v, nil
}

func sellerValue(v *model.Seller, err error) (interface{}, error) {
	if err != nil || v == nil {
		return nil, err
	}
	return v, nil
}
