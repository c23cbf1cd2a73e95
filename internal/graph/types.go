package graph

import (
	"github.com/graphql-go/graphql"
	"github.com/graphql-go/graphql/language/ast"

	"github.com/prakasham-tecinyaw/serverless-api/internal/model"
	"github.com/prakasham-tecinyaw/serverless-api/internal/resolvers"
)

func newProductType() *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name:        "Product",
		Description: "This represents a Product",
		Fields: graphql.Fields{
			"id": &graphql.Field{
				Type:        graphql.NewNonNull(graphql.Int),
				Description: "The product ID",
			},
			"name": &graphql.Field{
				Type:        graphql.NewNonNull(graphql.String),
				Description: "The name of the product",
			},
			"price": &graphql.Field{
				Type:        graphql.NewNonNull(graphql.String),
				Description: "The price of the product",
			},
			"seller_id": &graphql.Field{
				Type:        graphql.NewNonNull(graphql.Int),
				Description: "The seller ID of the product",
			},
		},
	})
}

func newSellerType() *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name:        "Seller",
		Description: "This represents a Seller",
		Fields: graphql.Fields{
			"id": &graphql.Field{
				Type:        graphql.NewNonNull(graphql.Int),
				Description: "The seller ID",
			},
			"first_name": &graphql.Field{
				Type:        graphql.NewNonNull(graphql.String),
				Description: "The first name of the seller",
			},
			"last_name": &graphql.Field{
				Type:        graphql.NewNonNull(graphql.String),
				Description: "The last name of the seller",
			},
			"email": &graphql.Field{
				Type:        graphql.NewNonNull(graphql.String),
				Description: "The email of the seller",
			},
		},
	})
}

// productSeller resolves Product.seller. Queries batch the lookup through the
// request loaders; mutations read the store at once so each mutation's
// selection sees the state it left behind.
func (r *Resolver) productSeller(p graphql.ResolveParams) (interface{}, error) {
	obj, ok := p.Source.(*model.Product)
	if !ok {
		return nil, nil
	}
	batch := !isMutation(p.Info)
	thunk := resolvers.ProductSeller(p.Context, r.Store, obj, batch)
	if !batch {
		s, err := thunk()
		return sellerValue(s, err)
	}
	return func() (interface{}, error) {
		s, err := thunk()
		return sellerValue(s, err)
	}, nil
}

// sellerProducts resolves Seller.products with the same rules as
// productSeller.
func (r *Resolver) sellerProducts(p graphql.ResolveParams) (interface{}, error) {
	obj, ok := p.Source.(*model.Seller)
	if !ok {
		return nil, nil
	}
	batch := !isMutation(p.Info)
	thunk := resolvers.SellerProducts(p.Context, r.Store, obj, batch)
	if !batch {
		return thunk()
	}
	return func() (interface{}, error) {
		return thunk()
	}, nil
}

func isMutation(info graphql.ResolveInfo) bool {
	return info.Operation != nil && info.Operation.GetOperation() == ast.OperationTypeMutation
}
