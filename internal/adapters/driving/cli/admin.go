package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/storefront-cli/internal/adapters/driving/format"
	"github.com/custodia-labs/storefront-cli/internal/core/domain"
)

var (
	productInput domain.ProductInput
	productImage string

	adminUserUpdate domain.AccountUpdate
	adminUserRole   string
)

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Back-office commands (ADMIN role required)",
	Long: `Manage products, users and orders.

Every admin command requires a session signed in with "storefront login --admin"
and is refused locally otherwise.`,
}

var adminProductsCmd = &cobra.Command{
	Use:   "products",
	Short: "Create, edit and delete products",
}

var adminProductsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a product",
	Args:  cobra.NoArgs,
	RunE:  runAdminProductsCreate,
}

var adminProductsUpdateCmd = &cobra.Command{
	Use:   "update [product-id]",
	Short: "Edit a product",
	Long:  `Edit a product. Only the flags you pass are changed.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runAdminProductsUpdate,
}

var adminProductsDeleteCmd = &cobra.Command{
	Use:   "delete [product-id]",
	Short: "Delete a product",
	Args:  cobra.ExactArgs(1),
	RunE:  runAdminProductsDelete,
}

var adminUsersCmd = &cobra.Command{
	Use:   "users",
	Short: "List and manage accounts",
	Args:  cobra.NoArgs,
	RunE:  runAdminUsersList,
}

var adminUsersShowCmd = &cobra.Command{
	Use:   "show [user-id]",
	Short: "Show one account",
	Args:  cobra.ExactArgs(1),
	RunE:  runAdminUsersShow,
}

var adminUsersUpdateCmd = &cobra.Command{
	Use:   "update [user-id]",
	Short: "Edit an account",
	Args:  cobra.ExactArgs(1),
	RunE:  runAdminUsersUpdate,
}

var adminUsersDeleteCmd = &cobra.Command{
	Use:   "delete [user-id]",
	Short: "Delete an account",
	Args:  cobra.ExactArgs(1),
	RunE:  runAdminUsersDelete,
}

var adminOrdersCmd = &cobra.Command{
	Use:   "orders",
	Short: "List every order, newest first",
	Args:  cobra.NoArgs,
	RunE:  runAdminOrders,
}

func init() {
	for _, c := range []*cobra.Command{adminProductsCreateCmd, adminProductsUpdateCmd} {
		c.Flags().StringVar(&productInput.ProductName, "name", "", "product name")
		c.Flags().StringVar(&productInput.ProductDescription, "description", "", "product description")
		c.Flags().Float64Var(&productInput.ProductPrice, "price", 0, "unit price in USD")
		c.Flags().IntVar(&productInput.ProductStock, "stock", 0, "units in stock")
		c.Flags().IntVar(&productInput.MaxQuantityPerCart, "max-per-cart", 0, "cart limit (0 = none)")
		c.Flags().StringVar(&productInput.Category, "category", "", "category")
		c.Flags().StringVar(&productImage, "image", "", "path of an image to upload")
	}
	adminProductsCmd.AddCommand(adminProductsCreateCmd)
	adminProductsCmd.AddCommand(adminProductsUpdateCmd)
	adminProductsCmd.AddCommand(adminProductsDeleteCmd)

	adminUsersUpdateCmd.Flags().StringVar(&adminUserUpdate.Username, "username", "", "new username")
	adminUsersUpdateCmd.Flags().StringVar(&adminUserUpdate.Email, "email", "", "new email address")
	adminUsersUpdateCmd.Flags().StringVar(&adminUserUpdate.FirstName, "first-name", "", "new first name")
	adminUsersUpdateCmd.Flags().StringVar(&adminUserUpdate.LastName, "last-name", "", "new last name")
	adminUsersUpdateCmd.Flags().StringVar(&adminUserRole, "role", "", "new role (USER or ADMIN)")
	adminUsersCmd.AddCommand(adminUsersShowCmd)
	adminUsersCmd.AddCommand(adminUsersUpdateCmd)
	adminUsersCmd.AddCommand(adminUsersDeleteCmd)

	adminCmd.AddCommand(adminProductsCmd)
	adminCmd.AddCommand(adminUsersCmd)
	adminCmd.AddCommand(adminOrdersCmd)
	rootCmd.AddCommand(adminCmd)
}

func loadImage(path string) (*domain.ImageUpload, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read image: %w", err)
	}
	return &domain.ImageUpload{Filename: filepath.Base(path), Data: data}, nil
}

func runAdminProductsCreate(cmd *cobra.Command, _ []string) error {
	if adminService == nil {
		return errors.New("admin service not configured")
	}

	image, err := loadImage(productImage)
	if err != nil {
		return err
	}
	product, err := adminService.CreateProduct(cmd.Context(), productInput, image)
	if err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	cmd.Printf("Created product %s (%s).\n", product.ProductID, product.ProductName)
	return nil
}

func runAdminProductsUpdate(cmd *cobra.Command, args []string) error {
	if adminService == nil || catalogService == nil {
		return errors.New("admin service not configured")
	}

	id := domain.ProductID(args[0])
	current, err := catalogService.Get(cmd.Context(), id)
	if err != nil {
		return fmt.Errorf("failed to load product: %w", err)
	}

	input := domain.ProductInput{
		ProductName:        current.ProductName,
		ProductDescription: current.ProductDescription,
		ProductPrice:       current.ProductPrice,
		ProductStock:       current.ProductStock,
		MaxQuantityPerCart: current.MaxQuantityPerCart,
		Category:           current.Category,
	}
	flags := cmd.Flags()
	if flags.Changed("name") {
		input.ProductName = productInput.ProductName
	}
	if flags.Changed("description") {
		input.ProductDescription = productInput.ProductDescription
	}
	if flags.Changed("price") {
		input.ProductPrice = productInput.ProductPrice
	}
	if flags.Changed("stock") {
		input.ProductStock = productInput.ProductStock
	}
	if flags.Changed("max-per-cart") {
		input.MaxQuantityPerCart = productInput.MaxQuantityPerCart
	}
	if flags.Changed("category") {
		input.Category = productInput.Category
	}

	image, err := loadImage(productImage)
	if err != nil {
		return err
	}
	product, err := adminService.UpdateProduct(cmd.Context(), id, input, image)
	if err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}
	cmd.Printf("Updated product %s (%s, %s).\n", product.ProductID, product.ProductName, format.Price(product.ProductPrice))
	return nil
}

func runAdminProductsDelete(cmd *cobra.Command, args []string) error {
	if adminService == nil {
		return errors.New("admin service not configured")
	}
	if err := adminService.DeleteProduct(cmd.Context(), domain.ProductID(args[0])); err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	cmd.Printf("Deleted product %s.\n", args[0])
	return nil
}

func parseUserID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid user id %q", arg)
	}
	return id, nil
}

func runAdminUsersList(cmd *cobra.Command, _ []string) error {
	if adminService == nil {
		return errors.New("admin service not configured")
	}

	users, err := adminService.Users(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list users: %w", err)
	}
	if len(users) == 0 {
		cmd.Println("No users.")
		return nil
	}
	for _, u := range users {
		cmd.Printf("  [%d] %s  %s  %s  %s\n", u.ID, u.Username, u.FullName(), u.Email, u.Role)
	}
	return nil
}

func runAdminUsersShow(cmd *cobra.Command, args []string) error {
	if adminService == nil {
		return errors.New("admin service not configured")
	}
	id, err := parseUserID(args[0])
	if err != nil {
		return err
	}

	user, err := adminService.User(cmd.Context(), id)
	if err != nil {
		return fmt.Errorf("failed to get user: %w", err)
	}
	printAccount(cmd, user)
	return nil
}

func runAdminUsersUpdate(cmd *cobra.Command, args []string) error {
	if adminService == nil {
		return errors.New("admin service not configured")
	}
	id, err := parseUserID(args[0])
	if err != nil {
		return err
	}

	update := adminUserUpdate
	if adminUserRole != "" {
		role := domain.Role(adminUserRole)
		if role != domain.RoleUser && role != domain.RoleAdmin {
			return fmt.Errorf("invalid role %q: use USER or ADMIN", adminUserRole)
		}
		update.Role = role
	}
	if update == (domain.AccountUpdate{}) {
		return errors.New("nothing to update: pass at least one flag")
	}

	user, err := adminService.UpdateUser(cmd.Context(), id, update)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	cmd.Println("User updated.")
	printAccount(cmd, user)
	return nil
}

func runAdminUsersDelete(cmd *cobra.Command, args []string) error {
	if adminService == nil {
		return errors.New("admin service not configured")
	}
	id, err := parseUserID(args[0])
	if err != nil {
		return err
	}
	if err := adminService.DeleteUser(cmd.Context(), id); err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	cmd.Printf("Deleted user %d.\n", id)
	return nil
}

func runAdminOrders(cmd *cobra.Command, _ []string) error {
	if adminService == nil {
		return errors.New("admin service not configured")
	}

	orders, err := adminService.Orders(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list orders: %w", err)
	}
	printOrders(cmd, orders, true)
	return nil
}
