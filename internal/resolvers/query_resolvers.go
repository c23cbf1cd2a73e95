package resolvers

import (
	"context"

	"go.uber.org/zap"

	"github.com/prakasham-tecinyaw/serverless-api/internal/model"
)

// ProductImpl resolves Query.product. A nil id matches nothing.
func ProductImpl(ctx context.Context, st Store, id *int) (*model.Product, error) {
	if id == nil {
		return nil, nil
	}
	p, ok := st.Product(*id)
	if !ok {
		zap.L().Debug("product lookup missed", zap.Int("id", *id))
		return nil, nil
	}
	return &p, nil
}

// SellerImpl resolves Query.seller. A nil id matches nothing.
func SellerImpl(ctx context.Context, st Store, id *int) (*model.Seller, error) {
	if id == nil {
		return nil, nil
	}
	s, ok := st.Seller(*id)
	if !ok {
		zap.L().Debug("seller lookup missed", zap.Int("id", *id))
		return nil, nil
	}
	return &s, nil
}

// ProductsImpl resolves Query.products.
func ProductsImpl(ctx context.Context, st Store) ([]*model.Product, error) {
	return productPtrs(st.Products()), nil
}

// SellersImpl resolves Query.sellers.
func SellersImpl(ctx context.Context, st Store) ([]*model.Seller, error) {
	sellers := st.Sellers()
	out := make([]*model.Seller, len(sellers))
	for i := range sellers {
		out[i] = &sellers[i]
	}
	return out, nil
}

func productPtrs(ps []model.Product) []*model.Product {
	out := make([]*model.Product, len(ps))
	for i := range ps {
		out[i] = &ps[i]
	}
	return out
}
