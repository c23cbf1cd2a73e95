package graph

import (
	"github.com/graphql-go/graphql"

	"github.com/prakasham-tecinyaw/serverless-api/internal/resolvers"
)

var (
	requiredInt    = graphql.NewNonNull(graphql.Int)
	requiredString = graphql.NewNonNull(graphql.String)
)

func (r *Resolver) mutationType(product, seller *graphql.Object) *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name:        "Mutation",
		Description: "Root Mutation",
		Fields: graphql.Fields{
			"addProduct": &graphql.Field{
				Type: product,
				Args: graphql.FieldConfigArgument{
					"name":      &graphql.ArgumentConfig{Type: requiredString},
					"price":     &graphql.ArgumentConfig{Type: requiredString},
					"seller_id": &graphql.ArgumentConfig{Type: requiredInt},
				},
				Resolve: r.addProduct,
			},
			"addSeller": &graphql.Field{
				Type: seller,
				Args: graphql.FieldConfigArgument{
					"first_name": &graphql.ArgumentConfig{Type: requiredString},
					"last_name":  &graphql.ArgumentConfig{Type: requiredString},
					"email":      &graphql.ArgumentConfig{Type: requiredString},
				},
				Resolve: r.addSeller,
			},
			"updateProduct": &graphql.Field{
				Type: product,
				Args: graphql.FieldConfigArgument{
					"id":        &graphql.ArgumentConfig{Type: requiredInt},
					"name":      &graphql.ArgumentConfig{Type: requiredString},
					"price":     &graphql.ArgumentConfig{Type: requiredString},
					"seller_id": &graphql.ArgumentConfig{Type: requiredInt},
				},
				Resolve: r.updateProduct,
			},
			"updateSeller": &graphql.Field{
				Type: seller,
				Args: graphql.FieldConfigArgument{
					"id":         &graphql.ArgumentConfig{Type: requiredInt},
					"first_name": &graphql.ArgumentConfig{Type: requiredString},
					"last_name":  &graphql.ArgumentConfig{Type: requiredString},
					"email":      &graphql.ArgumentConfig{Type: requiredString},
				},
				Resolve: r.updateSeller,
			},
			"deleteProduct": &graphql.Field{
				Type: product,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: requiredInt},
				},
				Resolve: r.deleteProduct,
			},
			"deleteSeller": &graphql.Field{
				Type: seller,
				Args: graphql.FieldConfigArgument{
					"id": &graphql.ArgumentConfig{Type: requiredInt},
				},
				Resolve: r.deleteSeller,
			},
		},
	})
}

func (r *Resolver) addProduct(p graphql.ResolveParams) (interface{}, error) {
	return productValue(resolvers.AddProductImpl(p.Context, r.Store, productInput(p.Args)))
}

func (r *Resolver) addSeller(p graphql.ResolveParams) (interface{}, error) {
	return sellerValue(resolvers.AddSellerImpl(p.Context, r.Store, sellerInput(p.Args)))
}

func (r *Resolver) updateProduct(p graphql.ResolveParams) (interface{}, error) {
	id, _ := intArg(p.Args, "id")
	return productValue(resolvers.UpdateProductImpl(p.Context, r.Store, id, productInput(p.Args)))
}

func (r *Resolver) updateSeller(p graphql.ResolveParams) (interface{}, error) {
	id, _ := intArg(p.Args, "id")
	return sellerValue(resolvers.UpdateSellerImpl(p.Context, r.Store, id, sellerInput(p.Args)))
}

func (r *Resolver) deleteProduct(p graphql.ResolveParams) (interface{}, error) {
	id, _ := intArg(p.Args, "id")
	return productValue(resolvers.DeleteProductImpl(p.Context, r.Store, id))
}

func (r *Resolver) deleteSeller(p graphql.ResolveParams) (interface{}, error) {
	id, _ := intArg(p.Args, "id")
	return sellerValue(resolvers.DeleteSellerImpl(p.Context, r.Store, id))
}
