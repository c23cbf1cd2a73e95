package graph

import (
	"math"

	"github.com/prakasham-tecinyaw/serverless-api/internal/model"
)

// intArg reads an Int argument. The engine coerces literals to int; values
// decoded from JSON variables may still be float64.
func intArg(args map[string]interface{}, name string) (int, bool) {
	switch v := args[name].(type) {
	case int:
		return v, true
	case int32:
		return int(v), true
	case int64:
		return int(v), true
	case float64:
		if v == math.Trunc(v) {
			return int(v), true
		}
	}
	return 0, false
}

func intArgPtr(args map[string]interface{}, name string) *int {
	if v, ok := intArg(args, name); ok {
		return &v
	}
	return nil
}

func stringArg(args map[string]interface{}, name string) string {
	s, _ := args[name].(string)
	return s
}

func productInput(args map[string]interface{}) model.ProductInput {
	sellerID, _ := intArg(args, "seller_id")
	return model.ProductInput{
		Name:     stringArg(args, "name"),
		Price:    stringArg(args, "price"),
		SellerID: sellerID,
	}
}

func sellerInput(args map[string]interface{}) model.SellerInput {
	return model.SellerInput{
		FirstName: stringArg(args, "first_name"),
		LastName:  stringArg(args, "last_name"),
		Email:     stringArg(args, "email"),
	}
}
