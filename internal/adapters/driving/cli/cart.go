package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/storefront-cli/internal/adapters/driving/format"
	"github.com/custodia-labs/storefront-cli/internal/core/domain"
)

var (
	cartAddQuantity int
	cartJSON        bool
)

var cartCmd = &cobra.Command{
	Use:   "cart",
	Short: "Show and edit your cart",
	Long:  `Show the signed-in account's cart. Use the subcommands to add or remove products.`,
	Args:  cobra.NoArgs,
	RunE:  runCartList,
}

var cartListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the products in your cart",
	Args:  cobra.NoArgs,
	RunE:  runCartList,
}

var cartAddCmd = &cobra.Command{
	Use:   "add [product-id]",
	Short: "Add a product to your cart",
	Long: `Add units of a product to your cart.

The storefront may cap how many units of a product one cart can hold; when it
does, the command reports how many were actually added.`,
	Args: cobra.ExactArgs(1),
	RunE: runCartAdd,
}

var cartRemoveCmd = &cobra.Command{
	Use:   "remove [product-id]",
	Short: "Remove a product from your cart",
	Args:  cobra.ExactArgs(1),
	RunE:  runCartRemove,
}

func init() {
	cartCmd.PersistentFlags().BoolVar(&cartJSON, "json", false, "output as JSON")
	cartAddCmd.Flags().IntVarP(&cartAddQuantity, "quantity", "q", 1, "units to add")

	cartCmd.AddCommand(cartListCmd)
	cartCmd.AddCommand(cartAddCmd)
	cartCmd.AddCommand(cartRemoveCmd)
	rootCmd.AddCommand(cartCmd)
}

func runCartList(cmd *cobra.Command, _ []string) error {
	if cartService == nil {
		return errors.New("cart service not configured")
	}

	if err := cartService.Fetch(cmd.Context()); err != nil {
		return fmt.Errorf("failed to load cart: %w", err)
	}

	cart := cartService.Cart()
	if cart.Status == domain.FetchSignedOut {
		return domain.ErrSignInRequired
	}
	if cartJSON {
		return printJSON(cmd, cart.Lines)
	}
	printCart(cmd, cart)
	return nil
}

func printCart(cmd *cobra.Command, cart domain.Cart) {
	if len(cart.Lines) == 0 {
		cmd.Println("Your cart is empty.")
		return
	}

	cmd.Printf("Cart (%s)\n\n", format.Items(cart.ItemCount()))
	for _, l := range cart.Lines {
		cmd.Printf("  [%s] %s\n", l.ProductID, l.ProductName)
		cmd.Printf("      %d x %s = %s\n", l.Quantity, format.Price(l.ProductPrice), format.Price(l.Subtotal()))
	}
	cmd.Println()
	cmd.Printf("Total: %s\n", format.Price(cart.Total()))
}

func runCartAdd(cmd *cobra.Command, args []string) error {
	if cartService == nil {
		return errors.New("cart service not configured")
	}

	productID := domain.ProductID(args[0])
	if err := cartService.Fetch(cmd.Context()); err != nil {
		return fmt.Errorf("failed to load cart: %w", err)
	}

	result, err := cartService.Add(cmd.Context(), productID, cartAddQuantity)
	switch {
	case errors.Is(err, domain.ErrCartNotUpdated):
		return fmt.Errorf("could not add %s: the cart limit for this product is reached", productID)
	case err != nil:
		return fmt.Errorf("failed to add to cart: %w", err)
	}

	if result.Partial() {
		cmd.Printf("Only %d of %d added (cart limit reached). %s now in cart.\n",
			result.Added, result.Requested, format.Items(result.Quantity))
	} else {
		cmd.Printf("Added %s. %s now in cart.\n", format.Items(result.Added), format.Items(result.Quantity))
	}
	cmd.Printf("Cart total: %s\n", format.Items(cartService.ItemCount()))
	return nil
}

func runCartRemove(cmd *cobra.Command, args []string) error {
	if cartService == nil {
		return errors.New("cart service not configured")
	}
	if sessionService != nil && sessionService.Identity() == nil {
		return domain.ErrSignInRequired
	}

	if err := cartService.Remove(cmd.Context(), domain.ProductID(args[0])); err != nil {
		return fmt.Errorf("failed to remove from cart: %w", err)
	}
	cmd.Printf("Removed %s. Cart total: %s\n", args[0], format.Items(cartService.ItemCount()))
	return nil
}
