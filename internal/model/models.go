package model

// Product is an item offered by a seller. Price is a formatted currency
// string, not a number.
type Product struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Price    string `json:"price"`
	SellerID int    `json:"seller_id"`
}

// Seller owns zero or more products.
type Seller struct {
	ID        int    `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	// Gender is only present in seed data and is not part of the schema.
	Gender string `json:"gender,omitempty"`
}

// ProductInput carries the mutable fields of a product.
type ProductInput struct {
	Name     string
	Price    string
	SellerID int
}

// SellerInput carries the mutable fields of a seller.
type SellerInput struct {
	FirstName string
	LastName  string
	Email     string
}
