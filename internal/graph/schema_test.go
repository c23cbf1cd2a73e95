package graph

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/graphql-go/graphql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/prakasham-tecinyaw/serverless-api/internal/loaders"
	"github.com/prakasham-tecinyaw/serverless-api/internal/model"
	"github.com/prakasham-tecinyaw/serverless-api/internal/resolvers"
	"github.com/prakasham-tecinyaw/serverless-api/internal/store"
)

type gqlError struct {
	Message    string                 `json:"message"`
	Path       []interface{}          `json:"path"`
	Extensions map[string]interface{} `json:"extensions"`
}

type response struct {
	Data   json.RawMessage `json:"data"`
	Errors []gqlError      `json:"errors"`
}

func execute(t *testing.T, st *store.Store, query string, vars map[string]interface{}) response {
	t.Helper()
	return executeWith(t, st, time.Millisecond, query, vars)
}

func executeWith(t *testing.T, st resolvers.Store, wait time.Duration, query string, vars map[string]interface{}) response {
	t.Helper()
	schema, err := NewResolver(st).Schema()
	require.NoError(t, err)

	ctx := loaders.NewContext(context.Background(), loaders.New(st, wait))
	return decode(t, Execute(ctx, schema, Request{Query: query, Variables: vars}))
}

func decode(t *testing.T, res *graphql.Result) response {
	t.Helper()
	b, err := json.Marshal(res)
	require.NoError(t, err)
	var out response
	require.NoError(t, json.Unmarshal(b, &out))
	return out
}

func TestSellerWithProductsScenario(t *testing.T) {
	res := execute(t, store.Seeded(), `{ seller(id:1){ first_name products{ name } } }`, nil)
	require.Empty(t, res.Errors)
	assert.JSONEq(t,
		`{"seller":{"first_name":"Jany","products":[{"name":"Flour - Strong Pizza"},{"name":"Soho Lychee Liqueur"}]}}`,
		string(res.Data))
}

func TestProductByID(t *testing.T) {
	st := store.Seeded()
	for _, p := range store.SeedProducts() {
		res := execute(t, st, `query($id: Int){ product(id: $id){ id name price seller_id } }`, map[string]interface{}{"id": p.ID})
		require.Empty(t, res.Errors)

		var got struct {
			Product model.Product `json:"product"`
		}
		require.NoError(t, json.Unmarshal(res.Data, &got))
		assert.Equal(t, p, got.Product)
	}
}

func TestProductLookupMisses(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{name: "UnknownID", query: `{ product(id: 404){ id } }`},
		{name: "OmittedID", query: `{ product { id } }`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res := execute(t, store.Seeded(), tc.query, nil)
			require.Empty(t, res.Errors)
			assert.JSONEq(t, `{"product":null}`, string(res.Data))
		})
	}
}

func TestSellerLookupMisses(t *testing.T) {
	res := execute(t, store.Seeded(), `{ seller(id: 404){ id } missing: seller { id } }`, nil)
	require.Empty(t, res.Errors)
	assert.JSONEq(t, `{"seller":null,"missing":null}`, string(res.Data))
}

func TestSellerProductsOrder(t *testing.T) {
	res := execute(t, store.Seeded(), `{ seller(id: 2){ products { name seller_id } } }`, nil)
	require.Empty(t, res.Errors)
	assert.JSONEq(t, `{"seller":{"products":[
		{"name":"Rosemary - Dry","seller_id":2},
		{"name":"Cheese - Goat With Herbs","seller_id":2},
		{"name":"Daikon Radish","seller_id":2}]}}`, string(res.Data))
}

func TestListsInInsertionOrder(t *testing.T) {
	res := execute(t, store.Seeded(), `{ products { id } sellers { id } }`, nil)
	require.Empty(t, res.Errors)
	assert.JSONEq(t, `{
		"products":[{"id":1},{"id":2},{"id":3},{"id":4},{"id":5},{"id":6},{"id":7},{"id":8},{"id":9},{"id":10}],
		"sellers":[{"id":1},{"id":2},{"id":3},{"id":4},{"id":5}]}`, string(res.Data))
}

func TestAddProductThenLookup(t *testing.T) {
	st := store.Seeded()
	add := execute(t, st, `mutation { addProduct(name: "Figs", price: "$3.10", seller_id: 3){ id name price seller_id } }`, nil)
	require.Empty(t, add.Errors)
	var added struct {
		AddProduct model.Product `json:"addProduct"`
	}
	require.NoError(t, json.Unmarshal(add.Data, &added))
	assert.Equal(t, 11, added.AddProduct.ID)

	get := execute(t, st, `query($id: Int){ product(id: $id){ id name price seller_id } }`,
		map[string]interface{}{"id": float64(added.AddProduct.ID)})
	require.Empty(t, get.Errors)
	var got struct {
		Product model.Product `json:"product"`
	}
	require.NoError(t, json.Unmarshal(get.Data, &got))
	assert.Equal(t, added.AddProduct, got.Product)
}

func TestAddSellerIgnoresGender(t *testing.T) {
	st := store.Seeded()
	res := execute(t, st, `mutation { addSeller(first_name: "Ada", last_name: "L", email: "ada@l.dev"){ id first_name products { id } } }`, nil)
	require.Empty(t, res.Errors)
	assert.JSONEq(t, `{"addSeller":{"id":6,"first_name":"Ada","products":[]}}`, string(res.Data))

	s, ok := st.Seller(6)
	require.True(t, ok)
	assert.Empty(t, s.Gender)
}

func TestUpdateProductNotFound(t *testing.T) {
	st := store.Seeded()
	before := st.Products()

	res := execute(t, st, `mutation { updateProduct(id: 99, name: "x", price: "$0", seller_id: 1){ id } }`, nil)
	require.Len(t, res.Errors, 1)
	assert.Equal(t, "Product not found", res.Errors[0].Message)
	assert.Equal(t, []interface{}{"updateProduct"}, res.Errors[0].Path)
	assert.Equal(t, "NOT_FOUND", res.Errors[0].Extensions["code"])
	assert.JSONEq(t, `{"updateProduct":null}`, string(res.Data))
	assert.Equal(t, before, st.Products())
}

func TestUpdateSeller(t *testing.T) {
	st := store.Seeded()
	res := execute(t, st, `mutation { updateSeller(id: 3, first_name: "T", last_name: "L", email: "t@l.com"){ id first_name last_name email } }`, nil)
	require.Empty(t, res.Errors)
	assert.JSONEq(t, `{"updateSeller":{"id":3,"first_name":"T","last_name":"L","email":"t@l.com"}}`, string(res.Data))

	res = execute(t, st, `mutation { updateSeller(id: 30, first_name: "T", last_name: "L", email: "t@l.com"){ id } }`, nil)
	require.Len(t, res.Errors, 1)
	assert.Equal(t, "Seller not found", res.Errors[0].Message)
}

func TestDeleteProduct(t *testing.T) {
	st := store.Seeded()
	res := execute(t, st, `mutation { deleteProduct(id: 6){ id name } }`, nil)
	require.Empty(t, res.Errors)
	assert.JSONEq(t, `{"deleteProduct":{"id":6,"name":"Pork - Bacon, Double Smoked"}}`, string(res.Data))
	assert.Len(t, st.Products(), 9)

	get := execute(t, st, `{ product(id: 6){ id } }`, nil)
	assert.JSONEq(t, `{"product":null}`, string(get.Data))

	again := execute(t, st, `mutation { deleteProduct(id: 6){ id } }`, nil)
	require.Len(t, again.Errors, 1)
	assert.Equal(t, "Product not found", again.Errors[0].Message)
	assert.Len(t, st.Products(), 9)
}

func TestDeleteSellerLeavesDanglingProducts(t *testing.T) {
	st := store.Seeded()
	res := execute(t, st, `mutation { deleteSeller(id: 4){ first_name } }`, nil)
	require.Empty(t, res.Errors)
	assert.JSONEq(t, `{"deleteSeller":{"first_name":"Darrel"}}`, string(res.Data))

	get := execute(t, st, `{ product(id: 8){ seller_id seller { id } } }`, nil)
	require.Empty(t, get.Errors)
	assert.JSONEq(t, `{"product":{"seller_id":4,"seller":null}}`, string(get.Data))
}

func TestDanglingSellerReferenceResolvesNull(t *testing.T) {
	st := store.Seeded()
	res := execute(t, st, `mutation { addProduct(name: "Orphan", price: "$1", seller_id: 404){ id seller { id } } }`, nil)
	require.Empty(t, res.Errors)
	assert.JSONEq(t, `{"addProduct":{"id":11,"seller":null}}`, string(res.Data))

	get := execute(t, st, `{ product(id: 11){ seller { id } } }`, nil)
	require.Empty(t, get.Errors)
	assert.JSONEq(t, `{"product":{"seller":null}}`, string(get.Data))
}

func TestSiblingMutationsAreIsolated(t *testing.T) {
	st := store.Seeded()
	res := execute(t, st, `mutation {
		ok: addSeller(first_name: "A", last_name: "B", email: "a@b.c"){ id }
		bad: deleteSeller(id: 99){ id }
	}`, nil)
	require.Len(t, res.Errors, 1)
	assert.Equal(t, "Seller not found", res.Errors[0].Message)
	assert.Equal(t, []interface{}{"bad"}, res.Errors[0].Path)
	assert.JSONEq(t, `{"ok":{"id":6},"bad":null}`, string(res.Data))
}

func TestMutationSelectionSeesItsOwnWrite(t *testing.T) {
	st := store.Seeded()
	res := execute(t, st, `mutation {
		first: addProduct(name: "P", price: "$1", seller_id: 1){ seller { first_name } }
		updateSeller(id: 1, first_name: "Jane", last_name: "B", email: "j@b.com"){ id }
		second: addProduct(name: "Q", price: "$1", seller_id: 1){ seller { first_name } }
	}`, nil)
	require.Empty(t, res.Errors)
	assert.JSONEq(t, `{
		"first":{"seller":{"first_name":"Jany"}},
		"updateSeller":{"id":1},
		"second":{"seller":{"first_name":"Jane"}}}`, string(res.Data))
}

func TestValidationRejectsBeforeResolvers(t *testing.T) {
	st := store.Seeded()
	tests := []struct {
		name  string
		query string
	}{
		{name: "WrongArgType", query: `{ product(id: "one"){ id } }`},
		{name: "MissingRequiredArg", query: `mutation { addProduct(name: "x", price: "$1"){ id } }`},
		{name: "UnknownField", query: `{ seller(id: 1){ gender } }`},
		{name: "Syntax", query: `{ product(id: 1 { id }`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res := execute(t, st, tc.query, nil)
			assert.NotEmpty(t, res.Errors)
			assert.True(t, len(res.Data) == 0 || string(res.Data) == "null")
		})
	}
	assert.Len(t, st.Products(), 10)
}

func TestSchemaDescriptions(t *testing.T) {
	res := execute(t, store.Seeded(), `{ __type(name: "Product"){ description fields { name description } } }`, nil)
	require.Empty(t, res.Errors)

	var got struct {
		Type struct {
			Description string `json:"description"`
			Fields      []struct {
				Name        string `json:"name"`
				Description string `json:"description"`
			} `json:"fields"`
		} `json:"__type"`
	}
	require.NoError(t, json.Unmarshal(res.Data, &got))
	assert.Equal(t, "This represents a Product", got.Type.Description)

	names := map[string]string{}
	for _, f := range got.Type.Fields {
		names[f.Name] = f.Description
	}
	assert.Equal(t, "The seller of the product", names["seller"])
	assert.Equal(t, "The price of the product", names["price"])
	assert.Len(t, names, 5)
}

// countingStore counts the seller batches issued by the loaders.
type countingStore struct {
	*store.Store

	mu      sync.Mutex
	batches int
}

func (c *countingStore) SellersByID(ids []int) map[int]model.Seller {
	c.mu.Lock()
	c.batches++
	c.mu.Unlock()
	return c.Store.SellersByID(ids)
}

func TestQuerySellersAreBatched(t *testing.T) {
	cs := &countingStore{Store: store.Seeded()}
	res := executeWith(t, cs, 50*time.Millisecond, `{ products { name seller { first_name } } }`, nil)
	require.Empty(t, res.Errors)

	var got struct {
		Products []struct {
			Name   string `json:"name"`
			Seller struct {
				FirstName string `json:"first_name"`
			} `json:"seller"`
		} `json:"products"`
	}
	require.NoError(t, json.Unmarshal(res.Data, &got))
	require.Len(t, got.Products, 10)
	assert.Equal(t, "Jany", got.Products[0].Seller.FirstName)
	assert.Equal(t, "Phedra", got.Products[9].Seller.FirstName)

	cs.mu.Lock()
	defer cs.mu.Unlock()
	assert.Equal(t, 1, cs.batches)
}
