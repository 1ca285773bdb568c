package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/storefront-cli/internal/core/domain"
)

var (
	profileUpdate domain.AccountUpdate
	addressInput  domain.Address
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show or edit your account",
	Args:  cobra.NoArgs,
	RunE:  runProfileShow,
}

var profileUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Edit your account details",
	Long:  `Edit your account. Only the flags you pass are changed.`,
	Args:  cobra.NoArgs,
	RunE:  runProfileUpdate,
}

var addressCmd = &cobra.Command{
	Use:     "address",
	Aliases: []string{"addresses"},
	Short:   "Manage delivery addresses",
	Args:    cobra.NoArgs,
	RunE:    runAddressList,
}

var addressAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Save a delivery address",
	Args:  cobra.NoArgs,
	RunE:  runAddressAdd,
}

var addressRemoveCmd = &cobra.Command{
	Use:   "remove [address-id]",
	Short: "Delete a delivery address",
	Args:  cobra.ExactArgs(1),
	RunE:  runAddressRemove,
}

func init() {
	profileUpdateCmd.Flags().StringVar(&profileUpdate.Username, "username", "", "new username")
	profileUpdateCmd.Flags().StringVar(&profileUpdate.Email, "email", "", "new email address")
	profileUpdateCmd.Flags().StringVar(&profileUpdate.FirstName, "first-name", "", "new first name")
	profileUpdateCmd.Flags().StringVar(&profileUpdate.LastName, "last-name", "", "new last name")
	profileCmd.AddCommand(profileUpdateCmd)

	addressAddCmd.Flags().StringVar(&addressInput.Title, "title", "", "label such as Home or Work (required)")
	addressAddCmd.Flags().StringVar(&addressInput.City, "city", "", "city (required)")
	addressAddCmd.Flags().StringVar(&addressInput.District, "district", "", "district")
	addressAddCmd.Flags().StringVar(&addressInput.Zip, "zip", "", "postal code")
	addressAddCmd.Flags().StringVar(&addressInput.Details, "details", "", "street and house number (required)")
	addressAddCmd.Flags().BoolVar(&addressInput.Default, "default", false, "use as the default address")
	addressCmd.AddCommand(addressAddCmd)
	addressCmd.AddCommand(addressRemoveCmd)

	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(addressCmd)
}

func runProfileShow(cmd *cobra.Command, _ []string) error {
	if accountService == nil {
		return errors.New("account service not configured")
	}

	account, err := accountService.Profile(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to load profile: %w", err)
	}
	printAccount(cmd, account)
	return nil
}

func printAccount(cmd *cobra.Command, a *domain.Account) {
	cmd.Printf("ID:       %d\n", a.ID)
	cmd.Printf("Username: %s\n", a.Username)
	cmd.Printf("Name:     %s\n", a.FullName())
	cmd.Printf("Email:    %s\n", a.Email)
	if a.Role != "" {
		cmd.Printf("Role:     %s\n", a.Role)
	}
}

func runProfileUpdate(cmd *cobra.Command, _ []string) error {
	if accountService == nil {
		return errors.New("account service not configured")
	}
	if profileUpdate == (domain.AccountUpdate{}) {
		return errors.New("nothing to update: pass at least one flag")
	}

	account, err := accountService.UpdateProfile(cmd.Context(), profileUpdate)
	if err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}
	cmd.Println("Profile updated.")
	printAccount(cmd, account)
	return nil
}

func runAddressList(cmd *cobra.Command, _ []string) error {
	if accountService == nil {
		return errors.New("account service not configured")
	}

	addresses, err := accountService.Addresses(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to load addresses: %w", err)
	}
	if len(addresses) == 0 {
		cmd.Println("No saved addresses.")
		return nil
	}

	def, _ := domain.DefaultAddress(addresses)
	for _, a := range addresses {
		marker := " "
		if a.ID == def.ID {
			marker = "*"
		}
		cmd.Printf("%s [%d] %s: %s, %s %s %s\n", marker, a.ID, a.Title, a.Details, a.District, a.City, a.Zip)
	}
	return nil
}

func runAddressAdd(cmd *cobra.Command, _ []string) error {
	if accountService == nil {
		return errors.New("account service not configured")
	}

	saved, err := accountService.AddAddress(cmd.Context(), addressInput)
	if err != nil {
		return fmt.Errorf("failed to save address: %w", err)
	}
	cmd.Printf("Saved address %d (%s).\n", saved.ID, saved.Title)
	return nil
}

func runAddressRemove(cmd *cobra.Command, args []string) error {
	if accountService == nil {
		return errors.New("account service not configured")
	}

	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid address id %q", args[0])
	}
	if err := accountService.DeleteAddress(cmd.Context(), id); err != nil {
		return fmt.Errorf("failed to delete address: %w", err)
	}
	cmd.Printf("Deleted address %d.\n", id)
	return nil
}
