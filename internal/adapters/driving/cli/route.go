package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/storefront-cli/internal/core/domain"
)

var routeCmd = &cobra.Command{
	Use:   "route [path]",
	Short: "Check whether the current session may open a view",
	Long: `Evaluate the navigation guard for a path such as /cart or /admin/users
and print where the session would end up.`,
	Args: cobra.ExactArgs(1),
	RunE: runRoute,
}

func init() {
	rootCmd.AddCommand(routeCmd)
}

func runRoute(cmd *cobra.Command, args []string) error {
	if routeGate == nil {
		return errors.New("route gate not configured")
	}

	path := args[0]
	final, decision := routeGate.Resolve(path)
	switch decision.Outcome {
	case domain.OutcomeLoading:
		cmd.Printf("%s: loading (session not resolved yet)\n", path)
	case domain.OutcomeAllow:
		if final == path {
			cmd.Printf("%s: allowed\n", path)
		} else {
			cmd.Printf("%s: redirected to %s\n", path, final)
		}
	default:
		cmd.Printf("%s: redirected to %s\n", path, decision.Target)
	}
	return nil
}
