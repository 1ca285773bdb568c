package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/storefront-cli/internal/adapters/driving/format"
	"github.com/custodia-labs/storefront-cli/internal/core/domain"
)

var (
	loginAdmin         bool
	loginUsername      string
	loginPasswordStdin bool

	registerUsername  string
	registerEmail     string
	registerFirstName string
	registerLastName  string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in to the storefront",
	Long: `Exchange a username and password for an access token.

The token is stored in the data directory and reused by later commands until
you run "storefront logout". Use --admin to sign in to the back office.`,
	Args: cobra.NoArgs,
	RunE: runLogin,
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and forget the stored token",
	Args:  cobra.NoArgs,
	RunE:  runLogout,
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the signed-in account",
	Args:  cobra.NoArgs,
	RunE:  runWhoami,
}

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a storefront account",
	Long: `Create a standard storefront account. Missing fields are prompted for.

Back-office accounts cannot be created here.`,
	Args: cobra.NoArgs,
	RunE: runRegister,
}

func init() {
	loginCmd.Flags().BoolVar(&loginAdmin, "admin", false, "sign in to the back office")
	loginCmd.Flags().StringVarP(&loginUsername, "username", "u", "", "account username")
	loginCmd.Flags().BoolVar(&loginPasswordStdin, "password-stdin", false, "read the password from stdin")

	registerCmd.Flags().StringVarP(&registerUsername, "username", "u", "", "account username")
	registerCmd.Flags().StringVar(&registerEmail, "email", "", "email address")
	registerCmd.Flags().StringVar(&registerFirstName, "first-name", "", "first name")
	registerCmd.Flags().StringVar(&registerLastName, "last-name", "", "last name")

	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
	rootCmd.AddCommand(registerCmd)
}

func runLogin(cmd *cobra.Command, _ []string) error {
	if sessionService == nil {
		return errors.New("session service not configured")
	}

	if loginPasswordStdin && loginUsername == "" {
		return errors.New("--password-stdin requires --username")
	}

	p := newPrompter(cmd)
	username := p.ask("Username", loginUsername)

	var password string
	if loginPasswordStdin {
		var err error
		password, err = readAllTrimmed(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("failed to read password: %w", err)
		}
	} else {
		password = p.secret("Password")
	}

	audience := domain.AudienceStandard
	if loginAdmin {
		audience = domain.AudienceAdmin
	}

	creds := domain.LoginCredentials{Username: username, Password: password}
	if _, err := sessionService.Login(cmd.Context(), creds, audience); err != nil {
		if errors.Is(err, domain.ErrAuthInvalid) {
			return errors.New("login failed: wrong username or password")
		}
		return fmt.Errorf("login failed: %w", err)
	}

	identity := sessionService.Identity()
	if identity == nil {
		return errors.New("login succeeded but the returned token could not be read")
	}
	cmd.Printf("Signed in as %s (%s)\n", identity.AccountName, format.Roles(identity.Roles))

	// Mirror the storefront's post-login navigation.
	if routeGate != nil {
		target := routeGate.Targets().Home
		if identity.IsAdmin() {
			target = routeGate.Targets().AdminHome
		}
		cmd.Printf("Start at %s\n", target)
	}
	return nil
}

func runLogout(cmd *cobra.Command, _ []string) error {
	if sessionService == nil {
		return errors.New("session service not configured")
	}
	sessionService.Logout(cmd.Context())
	cmd.Println("Signed out.")
	return nil
}

func runWhoami(cmd *cobra.Command, _ []string) error {
	if sessionService == nil {
		return errors.New("session service not configured")
	}

	snapshot := sessionService.Snapshot()
	if snapshot.Identity == nil {
		cmd.Println("Not signed in.")
		return nil
	}

	cmd.Printf("Account:    %s\n", snapshot.Identity.AccountName)
	cmd.Printf("Account ID: %d\n", snapshot.Identity.AccountID)
	cmd.Printf("Roles:      %s\n", format.Roles(snapshot.Identity.Roles))
	cmd.Printf("Token:      %s\n", format.MaskToken(snapshot.Credential))
	return nil
}

func runRegister(cmd *cobra.Command, _ []string) error {
	if accountService == nil {
		return errors.New("account service not configured")
	}

	p := newPrompter(cmd)
	reg := domain.Registration{
		FirstName: p.ask("First name", registerFirstName),
		LastName:  p.ask("Last name", registerLastName),
		Username:  p.ask("Username", registerUsername),
		Email:     p.ask("Email", registerEmail),
	}
	reg.Password = p.secret("Password")
	if confirm := p.secret("Confirm password"); confirm != reg.Password {
		return errors.New("passwords do not match")
	}

	if err := accountService.Register(cmd.Context(), reg); err != nil {
		return fmt.Errorf("registration failed: %w", err)
	}

	cmd.Printf("Account %s created. Run \"storefront login -u %s\" to sign in.\n", reg.Username, reg.Username)
	return nil
}
