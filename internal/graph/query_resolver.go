package graph

import (
	"github.com/graphql-go/graphql"

	"github.com/prakasham-tecinyaw/serverless-api/internal/resolvers"
)

func (r *Resolver) queryType(product, seller *graphql.Object) *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name:        "Query",
		Description: "Root Query",
		Fields: graphql.Fields{
			"product": &graphql.Field{
				Type: product,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.Int},
				},
				Resolve: r.product,
			},
			"seller": &graphql.Field{
				Type: seller,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: graphql.Int},
				},
				Resolve: r.seller,
			},
			"products": &graphql.Field{
				Type:        graphql.NewList(product),
				Description: "List of products",
				Resolve:     r.products,
			},
			"sellers": &graphql.Field{
				Type:        graphql.NewList(seller),
				Description: "List of sellers",
				Resolve:     r.sellers,
			},
		},
	})
}

func (r *Resolver) product(p graphql.ResolveParams) (interface{}, error) {
	return productValue(resolvers.ProductImpl(p.Context, r.Store, intArgPtr(p.Args, "id")))
}

func (r *Resolver) seller(p graphql.ResolveParams) (interface{}, error) {
	return sellerValue(resolvers.SellerImpl(p.Context, r.Store, intArgPtr(p.Args, "id")))
}

func (r *Resolver) products(p graphql.ResolveParams) (interface{}, error) {
	return resolvers.ProductsImpl(p.Context, r.Store)
}

func (r *Resolver) sellers(p graphql.ResolveParams) (interface{}, error) {
	return resolvers.SellersImpl(p.Context, r.Store)
}
