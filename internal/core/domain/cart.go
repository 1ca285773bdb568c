package domain

// CartLine is one product's presence in the account's cart, as last returned
// by the server. Display fields are denormalised copies of the product.
type CartLine struct {
	ID                 int64     `json:"id,omitempty"`
	ProductID          ProductID `json:"productId"`
	Quantity           int       `json:"quantity"`
	ProductName        string    `json:"productName"`
	ProductPrice       float64   `json:"productPrice"`
	ProductImage       string    `json:"productImage,omitempty"`
	ProductDescription string    `json:"productDescription,omitempty"`
}

// Subtotal returns quantity times unit price.
func (l CartLine) Subtotal() float64 {
	return float64(l.Quantity) * l.ProductPrice
}

// Cart is a snapshot of the mirrored cart.
type Cart struct {
	Lines  []CartLine
	Status FetchStatus

	// Err is the failure behind a FetchFailed status.
	Err error
}

// ItemCount is the sum of line quantities.
func (c Cart) ItemCount() int {
	return CountItems(c.Lines)
}

// Total is the sum of line subtotals.
func (c Cart) Total() float64 {
	var total float64
	for _, l := range c.Lines {
		total += l.Subtotal()
	}
	return total
}

// QuantityOf returns the quantity of productID, or 0 if it is not in the cart.
func (c Cart) QuantityOf(productID ProductID) int {
	return QuantityOf(c.Lines, productID)
}

// CountItems sums the quantities of lines.
func CountItems(lines []CartLine) int {
	n := 0
	for _, l := range lines {
		n += l.Quantity
	}
	return n
}

// QuantityOf returns the quantity of productID in lines, or 0.
func QuantityOf(lines []CartLine, productID ProductID) int {
	for _, l := range lines {
		if l.ProductID == productID {
			return l.Quantity
		}
	}
	return 0
}

// CartAddRequest is the body of an add-to-cart call.
type CartAddRequest struct {
	ProductID ProductID `json:"productId"`
	UserID    int64     `json:"userId"`
	Quantity  int       `json:"quantity"`
}

// CartRemoveRequest is the body of a remove-from-cart call.
type CartRemoveRequest struct {
	UserID    int64     `json:"userId"`
	ProductID ProductID `json:"productId"`
}

// AddResult describes what an add-to-cart round trip achieved.
type AddResult struct {
	ProductID ProductID

	// Requested is the quantity the caller asked for.
	Requested int

	// Added is how much the server-side quantity actually grew.
	Added int

	// Quantity is the line quantity after the round trip.
	Quantity int
}

// Partial reports whether the server capped the add below the requested amount.
func (r AddResult) Partial() bool {
	return r.Added > 0 && r.Added < r.Requested
}
