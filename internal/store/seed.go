package store

import "github.com/prakasham-tecinyaw/serverless-api/internal/model"

// SeedProducts is the product collection loaded at start.
func SeedProducts() []model.Product {
	return []model.Product{
		{ID: 1, Name: "Flour - Strong Pizza", Price: "$4.46", SellerID: 1},
		{ID: 2, Name: "Soho Lychee Liqueur", Price: "$4.84", SellerID: 1},
		{ID: 3, Name: "Rosemary - Dry", Price: "$9.56", SellerID: 2},
		{ID: 4, Name: "Cheese - Goat With Herbs", Price: "$6.66", SellerID: 2},
		{ID: 5, Name: "Daikon Radish", Price: "$8.59", SellerID: 2},
		{ID: 6, Name: "Pork - Bacon, Double Smoked", Price: "$3.28", SellerID: 3},
		{ID: 7, Name: "Yogurt - Peach, 175 Gr", Price: "$6.44", SellerID: 3},
		{ID: 8, Name: "Nut - Hazelnut, Ground, Natural", Price: "$1.64", SellerID: 4},
		{ID: 9, Name: "Juice - Ocean Spray Kiwi", Price: "$0.36", SellerID: 4},
		{ID: 10, Name: "Tea - Herbal Sweet Dreams", Price: "$2.77", SellerID: 5},
	}
}

// SeedSellers is the seller collection loaded at start.
func SeedSellers() []model.Seller {
	return []model.Seller{
		{ID: 1, FirstName: "Jany", LastName: "Balderson", Email: "jbalderson0@mozilla.com", Gender: "Female"},
		{ID: 2, FirstName: "Cosimo", LastName: "Baigrie", Email: "cbaigrie1@nba.com", Gender: "Male"},
		{ID: 3, FirstName: "Teressa", LastName: "Luney", Email: "tluney2@jimdo.com", Gender: "Female"},
		{ID: 4, FirstName: "Darrel", LastName: "Dyshart", Email: "ddyshart3@hc360.com", Gender: "Male"},
		{ID: 5, FirstName: "Phedra", LastName: "Caneo", Email: "pcaneo4@squidoo.com", Gender: "Female"},
	}
}

// Seeded returns a store holding the seed collections.
func Seeded() *Store {
	return NewSeeded(SeedProducts(), SeedSellers())
}
