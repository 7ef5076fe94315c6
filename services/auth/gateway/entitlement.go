package gateway

import (
	"context"
	"fmt"
)

type listProductTypesRequest struct {
	PreschoolIDs []string `json:"preschool_ids"`
}

type listProductTypesResponse struct {
	ProductTypes []string `json:"product_types"`
}

// ListProductTypes resolves the product entitlements granted to the given
// preschools from the collection service
func (g *AuthGW) ListProductTypes(ctx context.Context, preschoolIDs []string) ([]string, error) {
	var resp listProductTypesResponse
	err := g.collectionClient.PostJSON(ctx, "/internal/products/list",
		listProductTypesRequest{PreschoolIDs: preschoolIDs}, &resp)
	if err != nil {
		return nil, fmt.Errorf("failed to list product types: %w", err)
	}
	return resp.ProductTypes, nil
}
