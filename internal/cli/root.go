// Package cli wires the sdkgate commands.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgDir    string
	quietFlag bool
)

// errGateFailed signals a completed run with a FAIL verdict. The report has
// already been printed; the process just needs exit status 1.
var errGateFailed = errors.New("gate failed")

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "sdkgate",
	Short: "sdkgate - cross-language SDK API surface gate",
	Long: `sdkgate verifies that independently generated client SDKs expose an
equivalent set of operations, and that operation signatures stay compatible
with a canonical reference across regeneration cycles.

It reads generated source as plain text; it never executes or imports SDKs.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, errGateFailed) {
			os.Exit(1)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgDir, "config-dir", "", "directory holding .sdkgate/config.yml (default is the working directory)")
	rootCmd.PersistentFlags().BoolVarP(&quietFlag, "quiet", "q", false, "disable progress output")

	// Bind flags to viper
	viper.BindPFlag("config-dir", rootCmd.PersistentFlags().Lookup("config-dir"))
	viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))
}

// configRoot resolves the directory configuration is loaded from.
func configRoot() (string, error) {
	if cfgDir != "" {
		return cfgDir, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get working directory: %w", err)
	}
	return wd, nil
}
