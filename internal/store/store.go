// Package store holds the product and seller collections in process memory.
package store

import (
	"sync"

	"github.com/pkg/errors"

	"github.com/prakasham-tecinyaw/serverless-api/internal/model"
)

// ErrNotFound is returned by update and delete operations when no record has
// the requested id.
var ErrNotFound = errors.New("record not found")

// Store owns both collections. Records keep insertion order; ids come from
// per-collection counters and are never reused.
type Store struct {
	mu sync.RWMutex

	products      []model.Product
	sellers       []model.Seller
	nextProductID int
	nextSellerID  int
}

// New returns an empty store.
func New() *Store {
	return &Store{nextProductID: 1, nextSellerID: 1}
}

// NewSeeded returns a store loaded with the given records. Counters start
// after the highest seeded id.
func NewSeeded(products []model.Product, sellers []model.Seller) *Store {
	s := New()
	s.products = append(s.products, products...)
	s.sellers = append(s.sellers, sellers...)
	for _, p := range products {
		if p.ID >= s.nextProductID {
			s.nextProductID = p.ID + 1
		}
	}
	for _, sl := range sellers {
		if sl.ID >= s.nextSellerID {
			s.nextSellerID = sl.ID + 1
		}
	}
	return s
}

// Product returns the first product with the given id.
func (s *Store) Product(id int) (model.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.productIndex(id); i >= 0 {
		return s.products[i], true
	}
	return model.Product{}, false
}

// Products returns a copy of the product collection.
func (s *Store) Products() []model.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Product, len(s.products))
	copy(out, s.products)
	return out
}

// ProductsBySeller groups the products of the requested sellers, keeping
// collection order within each group. Sellers without products are absent
// from the result.
func (s *Store) ProductsBySeller(sellerIDs []int) map[int][]model.Product {
	want := make(map[int]struct{}, len(sellerIDs))
	for _, id := range sellerIDs {
		want[id] = struct{}{}
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[int][]model.Product, len(sellerIDs))
	for _, p := range s.products {
		if _, ok := want[p.SellerID]; ok {
			out[p.SellerID] = append(out[p.SellerID], p)
		}
	}
	return out
}

// AddProduct appends a product and returns it with its assigned id.
func (s *Store) AddProduct(in model.ProductInput) model.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := model.Product{
		ID:       s.nextProductID,
		Name:     in.Name,
		Price:    in.Price,
		SellerID: in.SellerID,
	}
	s.nextProductID++
	s.products = append(s.products, p)
	return p
}

// UpdateProduct replaces every field but the id of an existing product.
func (s *Store) UpdateProduct(id int, in model.ProductInput) (model.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.productIndex(id)
	if i < 0 {
		return model.Product{}, errors.Wrapf(ErrNotFound, "product %d", id)
	}
	p := &s.products[i]
	p.Name = in.Name
	p.Price = in.Price
	p.SellerID = in.SellerID
	return *p, nil
}

// DeleteProduct removes a product and returns it as it was before removal.
func (s *Store) DeleteProduct(id int) (model.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.productIndex(id)
	if i < 0 {
		return model.Product{}, errors.Wrapf(ErrNotFound, "product %d", id)
	}
	p := s.products[i]
	s.products = append(s.products[:i], s.products[i+1:]...)
	return p, nil
}

// Seller returns the first seller with the given id.
func (s *Store) Seller(id int) (model.Seller, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.sellerIndex(id); i >= 0 {
		return s.sellers[i], true
	}
	return model.Seller{}, false
}

// Sellers returns a copy of the seller collection.
func (s *Store) Sellers() []model.Seller {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Seller, len(s.sellers))
	copy(out, s.sellers)
	return out
}

// SellersByID looks up several sellers under one lock. Missing ids are
// absent from the result.
func (s *Store) SellersByID(ids []int) map[int]model.Seller {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[int]model.Seller, len(ids))
	for _, id := range ids {
		if i := s.sellerIndex(id); i >= 0 {
			out[id] = s.sellers[i]
		}
	}
	return out
}

// AddSeller appends a seller and returns it with its assigned id.
func (s *Store) AddSeller(in model.SellerInput) model.Seller {
	s.mu.Lock()
	defer s.mu.Unlock()
	sl := model.Seller{
		ID:        s.nextSellerID,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
	}
	s.nextSellerID++
	s.sellers = append(s.sellers, sl)
	return sl
}

// UpdateSeller replaces the name and email of an existing seller. Gender is
// left as it was.
func (s *Store) UpdateSeller(id int, in model.SellerInput) (model.Seller, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.sellerIndex(id)
	if i < 0 {
		return model.Seller{}, errors.Wrapf(ErrNotFound, "seller %d", id)
	}
	sl := &s.sellers[i]
	sl.FirstName = in.FirstName
	sl.LastName = in.LastName
	sl.Email = in.Email
	return *sl, nil
}

// DeleteSeller removes a seller. Products referencing it are kept.
func (s *Store) DeleteSeller(id int) (model.Seller, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.sellerIndex(id)
	if i < 0 {
		return model.Seller{}, errors.Wrapf(ErrNotFound, "seller %d", id)
	}
	sl := s.sellers[i]
	s.sellers = append(s.sellers[:i], s.sellers[i+1:]...)
	return sl, nil
}

func (s *Store) productIndex(id int) int {
	for i := range s.products {
		if s.products[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) sellerIndex(id int) int {
	for i := range s.sellers {
		if s.sellers[i].ID == id {
			return i
		}
	}
	return -1
}
