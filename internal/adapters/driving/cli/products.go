package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/storefront-cli/internal/adapters/driving/format"
	"github.com/custodia-labs/storefront-cli/internal/core/domain"
)

var productsJSON bool

var productsCmd = &cobra.Command{
	Use:     "products",
	Aliases: []string{"product"},
	Short:   "Browse the catalog",
	Args:    cobra.NoArgs,
	RunE:    runProductsList,
}

var productsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List every product",
	Args:  cobra.NoArgs,
	RunE:  runProductsList,
}

var productsSearchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search products by name and description",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runProductsSearch,
}

var productsShowCmd = &cobra.Command{
	Use:   "show [product-id]",
	Short: "Show one product",
	Args:  cobra.ExactArgs(1),
	RunE:  runProductsShow,
}

func init() {
	productsCmd.PersistentFlags().BoolVar(&productsJSON, "json", false, "output as JSON")

	productsCmd.AddCommand(productsListCmd)
	productsCmd.AddCommand(productsSearchCmd)
	productsCmd.AddCommand(productsShowCmd)
	rootCmd.AddCommand(productsCmd)
}

func runProductsList(cmd *cobra.Command, _ []string) error {
	if catalogService == nil {
		return errors.New("catalog service not configured")
	}

	products, err := catalogService.List(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list products: %w", err)
	}
	return outputProducts(cmd, products)
}

func runProductsSearch(cmd *cobra.Command, args []string) error {
	if catalogService == nil {
		return errors.New("catalog service not configured")
	}

	products, err := catalogService.Search(cmd.Context(), strings.Join(args, " "))
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}
	return outputProducts(cmd, products)
}

func outputProducts(cmd *cobra.Command, products []domain.Product) error {
	if productsJSON {
		return printJSON(cmd, products)
	}
	if len(products) == 0 {
		cmd.Println("No products found.")
		return nil
	}

	for i := range products {
		p := &products[i]
		stock := "out of stock"
		if p.InStock() {
			stock = format.Count(p.ProductStock) + " in stock"
		}
		cmd.Printf("  [%s] %s  %s  (%s)\n", p.ProductID, p.ProductName, format.Price(p.ProductPrice), stock)
		if p.ProductDescription != "" {
			cmd.Printf("      %s\n", format.Truncate(p.ProductDescription, 72))
		}
	}
	return nil
}

func runProductsShow(cmd *cobra.Command, args []string) error {
	if catalogService == nil {
		return errors.New("catalog service not configured")
	}

	product, err := catalogService.Get(cmd.Context(), domain.ProductID(args[0]))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("product %s not found", args[0])
		}
		return fmt.Errorf("failed to get product: %w", err)
	}
	if productsJSON {
		return printJSON(cmd, product)
	}

	cmd.Printf("%s\n", product.ProductName)
	cmd.Printf("  ID:       %s\n", product.ProductID)
	cmd.Printf("  Price:    %s\n", format.Price(product.ProductPrice))
	cmd.Printf("  Stock:    %s\n", format.Count(product.ProductStock))
	if product.Category != "" {
		cmd.Printf("  Category: %s\n", product.Category)
	}
	if product.MaxQuantityPerCart > 0 {
		cmd.Printf("  Limit:    %d per cart\n", product.MaxQuantityPerCart)
	}
	if wishlistService != nil && sessionService != nil && sessionService.Identity() != nil {
		if err := wishlistService.Fetch(cmd.Context()); err == nil {
			cmd.Printf("  Wishlist: %t\n", wishlistService.IsMember(product.ProductID))
		}
	}
	if product.ProductDescription != "" {
		cmd.Println()
		cmd.Println(product.ProductDescription)
	}
	return nil
}
