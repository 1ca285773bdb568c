package domain

// Product is a catalog item as served by the API.
type Product struct {
	ProductID          ProductID `json:"productId"`
	ProductName        string    `json:"productName"`
	ProductDescription string    `json:"productDescription,omitempty"`
	ProductPrice       float64   `json:"productPrice"`
	ProductStock       int       `json:"productStock"`
	ProductImage       string    `json:"productImage,omitempty"`
	MaxQuantityPerCart int       `json:"maxQuantityPerCart,omitempty"`
	Category           string    `json:"category,omitempty"`
}

// InStock reports whether at least one unit is available.
func (p Product) InStock() bool {
	return p.ProductStock > 0
}

// ProductInput is the editable part of a product, sent by the back office.
type ProductInput struct {
	ProductName        string  `json:"productName"`
	ProductDescription string  `json:"productDescription,omitempty"`
	ProductPrice       float64 `json:"productPrice"`
	ProductStock       int     `json:"productStock"`
	MaxQuantityPerCart int     `json:"maxQuantityPerCart,omitempty"`
	Category           string  `json:"category,omitempty"`
}

// Validate checks the fields the back office form requires.
func (p ProductInput) Validate() error {
	if p.ProductName == "" || p.ProductPrice < 0 || p.ProductStock < 0 || p.MaxQuantityPerCart < 0 {
		return ErrInvalidInput
	}
	return nil
}

// ImageUpload is an optional product image attached to a create or update.
type ImageUpload struct {
	Filename string
	Data     []byte
}
