package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/custodia-labs/storefront-cli/internal/core/domain"
)

// Multipart field names of the product form.
const (
	productField = "product"
	imageField   = "image"
)

// ListProducts implements driven.CatalogAPI.
func (c *Client) ListProducts(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product
	if err := c.doJSON(ctx, http.MethodGet, c.endpoint(nil, "products"), nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// SearchProducts implements driven.CatalogAPI.
func (c *Client) SearchProducts(ctx context.Context, query string) ([]domain.Product, error) {
	var products []domain.Product
	target := c.endpoint(url.Values{"q": {query}}, "products", "search")
	if err := c.doJSON(ctx, http.MethodGet, target, nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// GetProduct implements driven.CatalogAPI.
func (c *Client) GetProduct(ctx context.Context, id domain.ProductID) (*domain.Product, error) {
	var product domain.Product
	if err := c.doJSON(ctx, http.MethodGet, c.endpoint(nil, "products", id.String()), nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// CreateProduct implements driven.CatalogAPI.
func (c *Client) CreateProduct(
	ctx context.Context,
	input domain.ProductInput,
	image *domain.ImageUpload,
) (*domain.Product, error) {
	var product domain.Product
	err := c.doMultipart(ctx, http.MethodPost, c.endpoint(nil, "products"),
		productField, input, imagePart(image), &product)
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// UpdateProduct implements driven.CatalogAPI.
func (c *Client) UpdateProduct(
	ctx context.Context,
	id domain.ProductID,
	input domain.ProductInput,
	image *domain.ImageUpload,
) (*domain.Product, error) {
	var product domain.Product
	err := c.doMultipart(ctx, http.MethodPut, c.endpoint(nil, "products", id.String()),
		productField, input, imagePart(image), &product)
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// DeleteProduct implements driven.CatalogAPI.
func (c *Client) DeleteProduct(ctx context.Context, id domain.ProductID) error {
	return c.doJSON(ctx, http.MethodDelete, c.endpoint(nil, "products", id.String()), nil, nil)
}

func imagePart(image *domain.ImageUpload) *filePart {
	if image == nil || len(image.Data) == 0 {
		return nil
	}
	return &filePart{field: imageField, filename: image.Filename, data: image.Data}
}
