package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/storefront-cli/internal/adapters/driving/format"
	"github.com/custodia-labs/storefront-cli/internal/core/domain"
)

var wishlistCmd = &cobra.Command{
	Use:   "wishlist",
	Short: "Show and edit your wishlist",
	Args:  cobra.NoArgs,
	RunE:  runWishlistList,
}

var wishlistToggleCmd = &cobra.Command{
	Use:   "toggle [product-id]",
	Short: "Add a product to the wishlist, or remove it if already there",
	Args:  cobra.ExactArgs(1),
	RunE:  runWishlistToggle,
}

func init() {
	wishlistCmd.AddCommand(wishlistToggleCmd)
	rootCmd.AddCommand(wishlistCmd)
}

func runWishlistList(cmd *cobra.Command, _ []string) error {
	if wishlistService == nil {
		return errors.New("wishlist service not configured")
	}

	if err := wishlistService.Fetch(cmd.Context()); err != nil {
		return fmt.Errorf("failed to load wishlist: %w", err)
	}

	wishlist := wishlistService.Wishlist()
	if wishlist.Status == domain.FetchSignedOut {
		return domain.ErrSignInRequired
	}
	if len(wishlist.Entries) == 0 {
		cmd.Println("Your wishlist is empty.")
		return nil
	}

	cmd.Println("Wishlist:")
	for _, e := range wishlist.Entries {
		cmd.Printf("  [%s] %s  %s\n", e.ProductID, e.ProductName, format.Price(e.ProductPrice))
	}
	return nil
}

func runWishlistToggle(cmd *cobra.Command, args []string) error {
	if wishlistService == nil {
		return errors.New("wishlist service not configured")
	}

	productID := domain.ProductID(args[0])
	if err := wishlistService.Fetch(cmd.Context()); err != nil {
		return fmt.Errorf("failed to load wishlist: %w", err)
	}

	member, err := wishlistService.Toggle(cmd.Context(), productID)
	if err != nil {
		return fmt.Errorf("failed to update wishlist: %w", err)
	}

	if member {
		cmd.Printf("Added %s to your wishlist.\n", productID)
	} else {
		cmd.Printf("Removed %s from your wishlist.\n", productID)
	}
	return nil
}
