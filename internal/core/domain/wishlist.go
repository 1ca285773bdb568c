package domain

// WishlistEntry is one product's presence in the account's wishlist.
type WishlistEntry struct {
	ID                 int64     `json:"id,omitempty"`
	ProductID          ProductID `json:"productId"`
	ProductName        string    `json:"productName"`
	ProductPrice       float64   `json:"productPrice"`
	ProductImage       string    `json:"productImage,omitempty"`
	ProductDescription string    `json:"productDescription,omitempty"`
}

// Wishlist is a snapshot of the mirrored wishlist.
type Wishlist struct {
	Entries []WishlistEntry
	Status  FetchStatus
	Err     error
}

// Contains reports membership by product id equality.
func (w Wishlist) Contains(productID ProductID) bool {
	return ContainsProduct(w.Entries, productID)
}

// ContainsProduct reports whether entries hold productID.
func ContainsProduct(entries []WishlistEntry, productID ProductID) bool {
	for _, e := range entries {
		if e.ProductID == productID {
			return true
		}
	}
	return false
}

// WishlistRequest is the body of a wishlist add or remove call.
type WishlistRequest struct {
	UserID    int64     `json:"userId"`
	ProductID ProductID `json:"productId"`
}
