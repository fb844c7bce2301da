package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sdkgate/sdkgate/internal/runner"
	"github.com/sdkgate/sdkgate/internal/surface"
)

var targetFlag string

// compatCmd represents the compat command
var compatCmd = &cobra.Command{
	Use:   "compat",
	Short: "Check one SDK against the canonical reference",
	Long: `Compat extracts the canonical reference profile's operations and checks
a target SDK against them: operations missing from the target are breaking
removals and fail the gate; extra target operations are reported but never
fail; parameter counts are compared across every overload pair.

Exactly one profile must set canonical: true in .sdkgate/config.yml.

Examples:
  # Check the first non-canonical profile
  sdkgate compat

  # Check a specific SDK
  sdkgate compat --target python
`,
	RunE: runCompat,
}

func init() {
	rootCmd.AddCommand(compatCmd)
	compatCmd.Flags().StringVarP(&targetFlag, "target", "t", "", "profile id to check (default: first non-canonical profile)")
}

func runCompat(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	report, err := runGate(func(r *runner.Runner) (*surface.Report, error) {
		return r.Compat(context.Background(), targetFlag)
	})
	if err != nil {
		return err
	}

	fmt.Print(surface.Render(report))
	if report.Failed() {
		cmd.SilenceErrors = true
		return errGateFailed
	}
	return nil
}
