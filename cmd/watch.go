// file: cmd/watch.go
// version: 1.0.0
// guid: 8a1f4c6e-3d92-4b57-a0e8-7c5d2b9f1e43

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/jdfalk/library-catalog/internal/catalog"
	"github.com/jdfalk/library-catalog/internal/config"
	"github.com/jdfalk/library-catalog/internal/fileops"
	"github.com/jdfalk/library-catalog/internal/watcher"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// watchCmd represents the watch command
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Report changes other processes make to the catalog",
	Long: `Watch the catalog file and reload it whenever it is rewritten, for
example by a shell running in another terminal. Rewrites that leave the
content unchanged are ignored. Stops on Ctrl+C.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return watchCatalog(ctx, cmd)
	},
}

// catalogReloader reloads the catalog when its content fingerprint changes.
type catalogReloader struct {
	mu   sync.Mutex
	last uint64
	out  io.Writer
}

func newCatalogReloader(path string, out io.Writer) *catalogReloader {
	r := &catalogReloader{out: out}
	// A missing file leaves last at zero, so its creation counts as a change.
	r.last, _ = fileops.Fingerprint(path)
	return r
}

func (r *catalogReloader) reload(path string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	sum, err := fileops.Fingerprint(path)
	if err == nil && sum == r.last {
		logger.Debug("Catalog rewritten without changes", zap.String("path", path))
		return
	}
	r.last = sum

	lib, err := catalog.New(path, catalog.WithLogger(logger))
	if err != nil {
		logger.Error("Failed to reload catalog", zap.String("path", path), zap.Error(err))
		return
	}
	logger.Info("Catalog reloaded", zap.String("path", path), zap.Int("books", lib.Len()))
	fmt.Fprintf(r.out, "Catalog changed: %d books\n", lib.Len())
}

func watchCatalog(ctx context.Context, cmd *cobra.Command) error {
	out := cmd.OutOrStdout()
	path := config.AppConfig.StoragePath
	r := newCatalogReloader(path, out)

	w := watcher.New(r.reload, config.AppConfig.WatchDebounce, logger)
	if err := w.Start(path); err != nil {
		return err
	}
	defer w.Stop()

	fmt.Fprintf(out, "Watching %s\n", path)
	<-ctx.Done()
	return nil
}
