// Package list provides list display components for the TUI.
package list

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/storefront-cli/internal/adapters/driving/format"
	"github.com/custodia-labs/storefront-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/storefront-cli/internal/core/domain"
)

// Membership reports whether a product is on the wishlist.
type Membership func(id domain.ProductID) bool

// ProductList displays products in a navigable list.
type ProductList struct {
	products []domain.Product
	selected int
	styles   *styles.Styles
	member   Membership
	width    int
	height   int
}

// NewProductList creates a new product list component.
func NewProductList(s *styles.Styles) *ProductList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &ProductList{
		styles: s,
		width:  80,
		height: 10,
	}
}

// SetMembership sets the wishlist lookup used for the heart marker.
func (r *ProductList) SetMembership(m Membership) {
	r.member = m
}

// Init initialises the product list.
func (r *ProductList) Init() tea.Cmd {
	return nil
}

// Update handles list navigation messages.
func (r *ProductList) Update(msg tea.Msg) (*ProductList, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "up", "k":
			r.MoveUp()
		case "down", "j":
			r.MoveDown()
		}
	}
	return r, nil
}

// View renders the product list.
func (r *ProductList) View() string {
	if len(r.products) == 0 {
		return r.styles.Muted.Render("No products")
	}

	lines := make([]string, 0, len(r.products)*2+2)
	lines = append(lines, r.styles.Subtitle.Render(fmt.Sprintf("Products (%d)", len(r.products))), "")

	// Each product takes two lines
	visibleCount := (r.height - 4) / 2
	if visibleCount < 1 {
		visibleCount = 1
	}

	start := 0
	if r.selected >= visibleCount {
		start = r.selected - visibleCount + 1
	}
	end := start + visibleCount
	if end > len(r.products) {
		end = len(r.products)
	}

	for i := start; i < end; i++ {
		lines = append(lines, r.renderProduct(i, &r.products[i]))
	}

	return strings.Join(lines, "\n")
}

func (r *ProductList) renderProduct(index int, p *domain.Product) string {
	indicator := "  "
	if index == r.selected {
		indicator = "> "
	}

	name := truncate(p.ProductName, max(r.width-30, 10))
	heart := " "
	if r.member != nil && r.member(p.ProductID) {
		heart = "♥"
	}

	var nameLine string
	if index == r.selected {
		nameLine = r.styles.Selected.Render(fmt.Sprintf("%s%s %s", indicator, heart, name))
	} else {
		nameLine = r.styles.Normal.Render(fmt.Sprintf("%s%s %s", indicator, heart, name))
	}
	nameLine += "  " + r.styles.Price.Render(format.Price(p.ProductPrice))

	stock := "out of stock"
	if p.InStock() {
		stock = format.Count(p.ProductStock) + " in stock"
	}
	detail := stock
	if p.ProductDescription != "" {
		detail += " · " + p.ProductDescription
	}
	return nameLine + "\n" + r.styles.Muted.Render("    "+truncate(detail, max(r.width-6, 20)))
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}

// SetProducts replaces the listed products and resets the selection.
func (r *ProductList) SetProducts(products []domain.Product) {
	r.products = products
	r.selected = 0
}

// Products returns the listed products.
func (r *ProductList) Products() []domain.Product {
	return r.products
}

// Selected returns the index of the selected product.
func (r *ProductList) Selected() int {
	return r.selected
}

// SetSelected sets the selected index.
func (r *ProductList) SetSelected(index int) {
	if index >= 0 && index < len(r.products) {
		r.selected = index
	}
}

// SelectedProduct returns the selected product, or nil if none.
func (r *ProductList) SelectedProduct() *domain.Product {
	if r.selected < 0 || r.selected >= len(r.products) {
		return nil
	}
	return &r.products[r.selected]
}

// MoveUp moves selection up.
func (r *ProductList) MoveUp() {
	if r.selected > 0 {
		r.selected--
	}
}

// MoveDown moves selection down.
func (r *ProductList) MoveDown() {
	if r.selected < len(r.products)-1 {
		r.selected++
	}
}

// SetDimensions sets the component dimensions.
func (r *ProductList) SetDimensions(width, height int) {
	r.width = width
	r.height = height
}

// Count returns the number of products.
func (r *ProductList) Count() int {
	return len(r.products)
}

// IsEmpty returns whether the list is empty.
func (r *ProductList) IsEmpty() bool {
	return len(r.products) == 0
}
