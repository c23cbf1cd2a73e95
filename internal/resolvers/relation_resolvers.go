package resolvers

import (
	"context"

	"github.com/prakasham-tecinyaw/serverless-api/internal/loaders"
	"github.com/prakasham-tecinyaw/serverless-api/internal/model"
)

// ProductSeller resolves Product.seller as a thunk. When batch is set and the
// context carries loaders, the lookup joins the request's pending batch;
// otherwise the store is read before returning.
func ProductSeller(ctx context.Context, st Store, obj *model.Product, batch bool) func() (*model.Seller, error) {
	if l := loaders.For(ctx); batch && l != nil {
		return l.SellerByID.LoadThunk(ctx, obj.SellerID)
	}
	s, ok := st.Seller(obj.SellerID)
	return func() (*model.Seller, error) {
		if !ok {
			return nil, nil
		}
		return &s, nil
	}
}

// SellerProducts resolves Seller.products as a thunk, with the same batching
// rules as ProductSeller.
func SellerProducts(ctx context.Context, st Store, obj *model.Seller, batch bool) func() ([]*model.Product, error) {
	if l := loaders.For(ctx); batch && l != nil {
		thunk := l.ProductsBySeller.LoadThunk(ctx, obj.ID)
		return func() ([]*model.Product, error) {
			ps, err := thunk()
			if err != nil {
				return nil, err
			}
			return productPtrs(ps), nil
		}
	}
	ps := productPtrs(st.ProductsBySeller([]int{obj.ID})[obj.ID])
	return func() ([]*model.Product, error) { return ps, nil }
}
