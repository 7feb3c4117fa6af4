package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/wtnb75/lanstatic"
)

type options struct {
	config    *lanstatic.Config
	noBrowser bool
	verbose   bool
}

func setupLogging(verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetLogLoggerLevel(level)
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

// servingRoot is the directory holding the running executable.
func servingRoot() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("locate executable: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe), nil
}

func run(ctx context.Context, config *lanstatic.Config, out io.Writer) error {
	srv, err := lanstatic.Start(ctx, config)
	if err != nil {
		return err
	}
	srv.Report(out)
	if config.OpenBrowser {
		if err := lanstatic.OpenBrowser(srv.LocalURL()); err != nil {
			slog.Debug("open browser failed", "url", srv.LocalURL(), "error", err)
		}
	}
	if err := srv.Serve(ctx); err != nil {
		return err
	}
	fmt.Fprintln(out, "\n🛑 Server stopped by user")
	return nil
}

func newRootCommand() *cobra.Command {
	opts := &options{config: lanstatic.CreateConfig()}
	cmd := &cobra.Command{
		Use:           "lanstatic",
		Short:         "Share the directory containing this program over the local network",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PreRun: func(cmd *cobra.Command, args []string) {
			setupLogging(opts.verbose)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := servingRoot()
			if err != nil {
				return err
			}
			opts.config.RootDir = root
			opts.config.OpenBrowser = !opts.noBrowser
			return run(cmd.Context(), opts.config, cmd.OutOrStdout())
		},
	}
	cmd.Flags().IntVarP(&opts.config.Port, "port", "p", lanstatic.DefaultPort, "port to run server on (0 picks a free port)")
	cmd.Flags().BoolVar(&opts.noBrowser, "no-browser", false, "don't open browser automatically")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose logging")
	return cmd
}

func reportError(w io.Writer, err error) {
	if errors.Is(err, lanstatic.ErrPortsExhausted) || lanstatic.IsAddrInUse(err) {
		fmt.Fprintln(w, "❌ Port is already in use.")
		fmt.Fprintln(w, "   Try a different port, e.g.: lanstatic --port 0  (auto-pick) or another number")
		return
	}
	fmt.Fprintf(w, "❌ Error starting server: %v\n", err)
}

// notifyContext is cancelled by the first of sigs. Signal delivery is then
// restored, so a second interrupt during shutdown kills the process.
func notifyContext(parent context.Context, sigs ...os.Signal) (context.Context, context.CancelFunc) {
	ctx, stop := signal.NotifyContext(parent, sigs...)
	context.AfterFunc(ctx, stop)
	return ctx, stop
}

func exitCode(err error, w io.Writer) int {
	if err == nil {
		return 0
	}
	slog.Debug("server error", "error", err)
	reportError(w, err)
	return 1
}

func realMain() error {
	ctx, stop := notifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return newRootCommand().ExecuteContext(ctx)
}

func main() {
	os.Exit(exitCode(realMain(), os.Stdout))
}
