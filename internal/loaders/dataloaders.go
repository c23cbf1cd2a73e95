package loaders

import (
	"context"
	"net/http"
	"time"

	"github.com/vikstrous/dataloadgen"
	"go.uber.org/zap"

	"github.com/prakasham-tecinyaw/serverless-api/internal/model"
)

// Source is the part of the store the loaders batch against.
type Source interface {
	SellersByID(ids []int) map[int]model.Seller
	ProductsBySeller(sellerIDs []int) map[int][]model.Product
}

// Loaders batches the cross-reference lookups made while resolving one
// request. A Loaders value must not outlive its request: it caches results.
type Loaders struct {
	// SellerByID resolves Product.seller. Missing sellers load as nil.
	SellerByID *dataloadgen.Loader[int, *model.Seller]
	// ProductsBySeller resolves Seller.products.
	ProductsBySeller *dataloadgen.Loader[int, []model.Product]
}

// New creates the loaders for a single request.
func New(src Source, wait time.Duration) *Loaders {
	opts := []dataloadgen.Option{dataloadgen.WithWait(wait)}
	return &Loaders{
		SellerByID:       dataloadgen.NewLoader(fetchSellers(src), opts...),
		ProductsBySeller: dataloadgen.NewLoader(fetchProducts(src), opts...),
	}
}

func fetchSellers(src Source) func(context.Context, []int) ([]*model.Seller, []error) {
	return func(ctx context.Context, ids []int) ([]*model.Seller, []error) {
		zap.L().Debug("batch load sellers", zap.Ints("ids", ids))
		found := src.SellersByID(ids)
		results := make([]*model.Seller, len(ids))
		for i, id := range ids {
			if s, ok := found[id]; ok {
				results[i] = &s
			}
		}
		return results, nil
	}
}

func fetchProducts(src Source) func(context.Context, []int) ([][]model.Product, []error) {
	return func(ctx context.Context, sellerIDs []int) ([][]model.Product, []error) {
		zap.L().Debug("batch load products by seller", zap.Ints("seller_ids", sellerIDs))
		grouped := src.ProductsBySeller(sellerIDs)
		results := make([][]model.Product, len(sellerIDs))
		for i, id := range sellerIDs {
			results[i] = grouped[id]
		}
		return results, nil
	}
}

type contextKey string

// LoaderKey is the key for the loaders in the context
const LoaderKey = contextKey("dataloaders")

// NewContext returns a copy of ctx carrying l.
func NewContext(ctx context.Context, l *Loaders) context.Context {
	return context.WithValue(ctx, LoaderKey, l)
}

// Middleware gives every request its own loaders.
func Middleware(src Source, wait time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := NewContext(r.Context(), New(src, wait))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// For returns the loaders from the context, or nil when the request was not
// routed through Middleware.
func For(ctx context.Context) *Loaders {
	l, _ := ctx.Value(LoaderKey).(*Loaders)
	return l
}
