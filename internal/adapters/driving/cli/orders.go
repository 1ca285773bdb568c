package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/storefront-cli/internal/adapters/driving/format"
	"github.com/custodia-labs/storefront-cli/internal/core/domain"
)

var (
	ordersJSON bool
	ordersAll  bool
)

// now is replaced in tests.
var now = time.Now

var ordersCmd = &cobra.Command{
	Use:   "orders",
	Short: "Show your order history",
	Long: `Show the signed-in account's orders, newest first.

With --all an admin session lists every customer's orders.`,
	Args: cobra.NoArgs,
	RunE: runOrders,
}

func init() {
	ordersCmd.Flags().BoolVar(&ordersJSON, "json", false, "output as JSON")
	ordersCmd.Flags().BoolVar(&ordersAll, "all", false, "list every account's orders (ADMIN)")
	rootCmd.AddCommand(ordersCmd)
}

func runOrders(cmd *cobra.Command, _ []string) error {
	if orderService == nil {
		return errors.New("order service not configured")
	}

	load := orderService.History
	if ordersAll {
		load = orderService.All
	}
	orders, err := load(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to load orders: %w", err)
	}
	if ordersJSON {
		return printJSON(cmd, orders)
	}
	printOrders(cmd, orders, ordersAll)
	return nil
}

func printOrders(cmd *cobra.Command, orders []domain.Order, withCustomer bool) {
	if len(orders) == 0 {
		cmd.Println("No orders yet.")
		return
	}

	current := now()
	for _, o := range orders {
		cmd.Printf("Order #%d  %s  %s  %s\n",
			o.ID, format.OrderDate(o.OrderDate, current), o.Status.Label(), format.Price(o.TotalAmount))
		if withCustomer && o.Username != "" {
			cmd.Printf("  Customer: %s\n", o.Username)
		}
		if o.ShippingAddress != "" {
			cmd.Printf("  Ship to:  %s\n", o.ShippingAddress)
		}
		for _, item := range o.Items {
			cmd.Printf("  %d x %s  %s\n", item.Quantity, item.ProductName, format.Price(item.Subtotal()))
		}
	}
}
