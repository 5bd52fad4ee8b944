package main

import (
	"fmt"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/BvspHUB/PortoFabrlio/content"
	"github.com/BvspHUB/PortoFabrlio/tui"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logrus.Fatal(err)
	}
}

// runFunc executes a command once flags have been applied over the
// environment config.
type runFunc func(cmd *cobra.Command, cfg Config) error

func newRootCmd() *cobra.Command {
	return buildRootCmd(serveHTTP, browseTUI)
}

func buildRootCmd(serve, browse runFunc) *cobra.Command {
	cfg := configFromEnv()

	root := &cobra.Command{
		Use:           "portfolio",
		Short:         "Serve the Pabril portfolio page",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return setupLogging(cfg.LogLevel)
		},
		RunE: func(cmd *cobra.Command, _ []string) error { return serve(cmd, cfg) },
	}
	root.PersistentFlags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&cfg.ContentFile, "content", cfg.ContentFile, "YAML content file (defaults to the built-in copy)")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		RunE:  func(cmd *cobra.Command, _ []string) error { return serve(cmd, cfg) },
	}
	for _, cmd := range []*cobra.Command{root, serveCmd} {
		cmd.Flags().StringVar(&cfg.Port, "port", cfg.Port, "listen port")
	}

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "Browse the portfolio in the terminal",
		RunE:  func(cmd *cobra.Command, _ []string) error { return browse(cmd, cfg) },
	}

	root.AddCommand(serveCmd, tuiCmd)
	return root
}

func serveHTTP(_ *cobra.Command, cfg Config) error {
	page, err := content.Load(cfg.ContentFile)
	if err != nil {
		return err
	}
	r := newRouter(cfg, page)
	logrus.WithField("port", cfg.Port).Info("serving portfolio")
	return r.Run(":" + cfg.Port)
}

func browseTUI(cmd *cobra.Command, cfg Config) error {
	page, err := content.Load(cfg.ContentFile)
	if err != nil {
		return err
	}
	return tui.Run(cmd.Context(), page)
}

func setupLogging(level string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	logrus.SetOutput(os.Stderr)
	logrus.SetLevel(lvl)
	return nil
}
