package cli

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/specsmith/specsync/internal/infrastructure/watch"
)

var watchCodeDir string

var watchCmd = &cobra.Command{
	Use:   "watch <spec-file>",
	Short: "Re-run sync whenever the spec or the source tree changes",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		svcs, err := loadServices()
		if err != nil {
			return err
		}

		rel, err := workspaceRelative(svcs.Repo.Root(), args[0])
		if err != nil {
			return err
		}

		cfg, err := svcs.Repo.LoadConfig()
		if err != nil {
			return err
		}
		codeDir := watchCodeDir
		if codeDir == "" {
			codeDir = cfg.SourceDir
		}

		runSync := func() {
			result, err := svcs.Sync.Sync(rel, codeDir)
			if err != nil {
				fmt.Fprintf(os.Stderr, "sync failed: %v\n", err)
				return
			}
			for _, w := range result.Warnings {
				warnf("%s", w)
			}
			fmt.Printf("[%s] %s: %d/%d implemented (%.1f%%)\n",
				time.Now().Format("15:04:05"), result.Report.SpecID,
				len(result.Report.Implemented), result.Report.Total, result.Report.Percent())
		}

		// Initial run before waiting for changes.
		runSync()

		watcher, err := watch.NewWatcher(300*time.Millisecond, watch.SyncFilter(rel, cfg.SourceExt), func(e watch.Event) {
			runSync()
		})
		if err != nil {
			return err
		}

		specDir := filepath.Join(svcs.Repo.Root(), filepath.Dir(filepath.FromSlash(rel)))
		if err := watcher.Add(specDir); err != nil {
			return err
		}
		codeRoot := codeDir
		if !filepath.IsAbs(codeRoot) {
			codeRoot = filepath.Join(svcs.Repo.Root(), codeRoot)
		}
		if _, err := os.Stat(codeRoot); err == nil {
			if err := watcher.AddRecursive(codeRoot); err != nil {
				return err
			}
		}

		fmt.Printf("Watching %s and %s for changes (Ctrl-C to stop)\n", rel, codeDir)

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		if os.Getenv("SPECSYNC_WATCH_ONCE") == "true" {
			return watcher.Close()
		}

		if err := watcher.Run(ctx); err != nil && ctx.Err() == nil {
			return err
		}
		fmt.Println("\nStopped watching")
		return nil
	},
}

func init() {
	watchCmd.Flags().StringVarP(&watchCodeDir, "code", "c", "", "Code directory to analyze (default: configured source_dir)")
	RootCmd.AddCommand(watchCmd)
}
