package resolvers

import (
	"context"

	"go.uber.org/zap"

	"github.com/prakasham-tecinyaw/serverless-api/internal/model"
)

// AddProductImpl resolves Mutation.addProduct. The seller id is not checked.
func AddProductImpl(ctx context.Context, st Store, in model.ProductInput) (*model.Product, error) {
	p := st.AddProduct(in)
	zap.L().Debug("product added", zap.Int("id", p.ID), zap.Int("seller_id", p.SellerID))
	return &p, nil
}

// AddSellerImpl resolves Mutation.addSeller.
func AddSellerImpl(ctx context.Context, st Store, in model.SellerInput) (*model.Seller, error) {
	s := st.AddSeller(in)
	zap.L().Debug("seller added", zap.Int("id", s.ID))
	return &s, nil
}

// UpdateProductImpl resolves Mutation.updateProduct.
func UpdateProductImpl(ctx context.Context, st Store, id int, in model.ProductInput) (*model.Product, error) {
	p, err := st.UpdateProduct(id, in)
	if err != nil {
		return nil, translate("Product", err)
	}
	return &p, nil
}

// UpdateSellerImpl resolves Mutation.updateSeller.
func UpdateSellerImpl(ctx context.Context, st Store, id int, in model.SellerInput) (*model.Seller, error) {
	s, err := st.UpdateSeller(id, in)
	if err != nil {
		return nil, translate("Seller", err)
	}
	return &s, nil
}

// DeleteProductImpl resolves Mutation.deleteProduct and returns the removed
// record.
func DeleteProductImpl(ctx context.Context, st Store, id int) (*model.Product, error) {
	p, err := st.DeleteProduct(id)
	if err != nil {
		return nil, translate("Product", err)
	}
	zap.L().Debug("product deleted", zap.Int("id", id))
	return &p, nil
}

// DeleteSellerImpl resolves Mutation.deleteSeller. Products of the seller are
// left in place.
func DeleteSellerImpl(ctx context.Context, st Store, id int) (*model.Seller, error) {
	s, err := st.DeleteSeller(id)
	if err != nil {
		return nil, translate("Seller", err)
	}
	zap.L().Debug("seller deleted", zap.Int("id", id))
	return &s, nil
}
