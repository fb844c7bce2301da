package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sdkgate/sdkgate/internal/config"
	"github.com/sdkgate/sdkgate/internal/runner"
	"github.com/sdkgate/sdkgate/internal/surface"
)

// auditCmd represents the audit command
var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Audit all SDK surfaces against their union",
	Long: `Audit extracts the declared operations of every configured language
profile and compares them symmetrically: the expected surface is the union of
all languages' operations, and any language missing part of it fails the gate.

No language is privileged; use "sdkgate compat" to check one SDK against a
canonical reference instead.

Examples:
  # Audit using .sdkgate/config.yml in the current directory
  sdkgate audit

  # Audit a generated tree elsewhere
  sdkgate audit --config-dir /path/to/sdk-repo
`,
	RunE: runAudit,
}

func init() {
	rootCmd.AddCommand(auditCmd)
}

func runAudit(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	report, err := runGate(func(r *runner.Runner) (*surface.Report, error) {
		return r.Audit(context.Background())
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

// runGate loads configuration and executes one comparison run.
func runGate(run func(*runner.Runner) (*surface.Report, error)) (*surface.Report, error) {
	root, err := configRoot()
	if err != nil {
		return nil, err
	}

	cfg, err := config.LoadConfigFromDir(root)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	r := runner.New(cfg, newExtractionProgress(quietFlag))
	return run(r)
}
