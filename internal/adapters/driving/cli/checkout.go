package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/storefront-cli/internal/adapters/driving/format"
	"github.com/custodia-labs/storefront-cli/internal/core/domain"
)

var finalizeAddressID int64

var checkoutCmd = &cobra.Command{
	Use:   "checkout",
	Short: "Pay for your cart",
	Long: `Checkout happens in two steps around the hosted payment form.

  storefront checkout begin
      creates a payment intent for the cart and prints its client secret,
      which the payment form uses to capture the card.

  storefront checkout finalize [payment-intent-id] --address ID
      places the order once the payment was captured. Without --address
      the default saved address is used.`,
}

var checkoutBeginCmd = &cobra.Command{
	Use:   "begin",
	Short: "Create a payment intent for the cart",
	Args:  cobra.NoArgs,
	RunE:  runCheckoutBegin,
}

var checkoutFinalizeCmd = &cobra.Command{
	Use:   "finalize [payment-intent-id]",
	Short: "Place the order after payment",
	Args:  cobra.ExactArgs(1),
	RunE:  runCheckoutFinalize,
}

func init() {
	checkoutFinalizeCmd.Flags().Int64Var(&finalizeAddressID, "address", 0, "delivery address ID (default: your default address)")

	checkoutCmd.AddCommand(checkoutBeginCmd)
	checkoutCmd.AddCommand(checkoutFinalizeCmd)
	rootCmd.AddCommand(checkoutCmd)
}

func runCheckoutBegin(cmd *cobra.Command, _ []string) error {
	if checkoutService == nil {
		return errors.New("checkout service not configured")
	}

	checkout, err := checkoutService.Begin(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to start checkout: %w", err)
	}

	cmd.Printf("Order summary (%s)\n", format.Items(domain.CountItems(checkout.Lines)))
	for _, l := range checkout.Lines {
		cmd.Printf("  %d x %s  %s\n", l.Quantity, l.ProductName, format.Price(l.Subtotal()))
	}
	cmd.Printf("Total: %s\n\n", format.Price(checkout.Total))
	if checkout.Intent.ID != "" {
		cmd.Printf("Payment intent: %s\n", checkout.Intent.ID)
	}
	cmd.Printf("Client secret:  %s\n", checkout.Intent.ClientSecret)
	return nil
}

func runCheckoutFinalize(cmd *cobra.Command, args []string) error {
	if checkoutService == nil {
		return errors.New("checkout service not configured")
	}

	addressID := finalizeAddressID
	if addressID == 0 && accountService != nil {
		addresses, err := accountService.Addresses(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to load addresses: %w", err)
		}
		if addr, ok := domain.DefaultAddress(addresses); ok {
			addressID = addr.ID
			cmd.Printf("Delivering to %s (%s)\n", addr.Title, addr.City)
		}
	}

	if err := checkoutService.Finalize(cmd.Context(), args[0], addressID); err != nil {
		if errors.Is(err, domain.ErrAddressRequired) {
			return errors.New("no delivery address: add one with \"storefront address add\" or pass --address")
		}
		return fmt.Errorf("failed to place order: %w", err)
	}
	cmd.Println("Order placed. Thank you!")
	return nil
}
