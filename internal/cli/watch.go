package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/sdkgate/sdkgate/internal/config"
	"github.com/sdkgate/sdkgate/internal/runner"
	"github.com/sdkgate/sdkgate/internal/surface"
	"github.com/sdkgate/sdkgate/internal/watcher"
)

// watchCmd represents the watch command
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Rerun the surface audit whenever SDK sources change",
	Long: `Watch runs the audit once, then monitors every profile's source file and
reruns the audit after each debounced batch of changes. Useful while iterating
on generator templates.

Watch is an interactive loop: a FAIL verdict is printed but does not stop the
process. Press Ctrl+C to exit.
`,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Println("\nInterrupted, stopping watch...")
		cancel()
	}()

	root, err := configRoot()
	if err != nil {
		return err
	}
	cfg, err := config.LoadConfigFromDir(root)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	r := runner.New(cfg, newExtractionProgress(quietFlag))
	auditOnce := func() {
		report, err := r.Audit(ctx)
		if err != nil {
			log.Printf("audit failed: %v", err)
			return
		}
		fmt.Print(surface.Render(report))
	}

	auditOnce()

	paths := make([]string, 0, len(cfg.Profiles))
	for _, p := range cfg.Profiles {
		path := p.Path
		if !filepath.IsAbs(path) {
			path = filepath.Join(cfg.Root, path)
		}
		paths = append(paths, path)
	}

	fw, err := watcher.NewFileWatcher(paths)
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer fw.Stop()

	if err := fw.Start(ctx, func(files []string) {
		if !quietFlag {
			log.Printf("%d source file(s) changed, re-auditing", len(files))
		}
		auditOnce()
	}); err != nil {
		return fmt.Errorf("failed to start file watcher: %w", err)
	}

	if !quietFlag {
		log.Println("Watching SDK sources (Ctrl+C to stop)...")
	}

	<-ctx.Done()
	return nil
}
