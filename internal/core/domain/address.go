package domain

// Address is a delivery address saved on the account.
type Address struct {
	ID       int64  `json:"id,omitempty"`
	Title    string `json:"title"`
	City     string `json:"city"`
	District string `json:"district"`
	Zip      string `json:"zip"`
	Details  string `json:"details"`
	Default  bool   `json:"default"`
}

// Validate checks the fields the address form requires.
func (a Address) Validate() error {
	if a.Title == "" || a.City == "" || a.Details == "" {
		return ErrInvalidInput
	}
	return nil
}

// DefaultAddress picks the address flagged as default, else the first one.
// It returns false when addresses is empty.
func DefaultAddress(addresses []Address) (Address, bool) {
	if len(addresses) == 0 {
		return Address{}, false
	}
	for _, a := range addresses {
		if a.Default {
			return a, true
		}
	}
	return addresses[0], true
}
