package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gnolang/truthtable/internal/issues"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	serveAddr    string
	serveOwner   string
	serveRepo    string
	serveAPIBase string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the issue-report endpoint",
	Long: `Run the issue-report endpoint.

POST /api/create-issue with {"title": ..., "body": ...} files an issue in the
configured GitHub repository. The access token is read from GITHUB_TOKEN.
Prometheus metrics are served on /metrics.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := serveConfig()
		if err := cfg.Validate(); err != nil {
			logger.Error("Invalid issue server configuration", zap.Error(err))
			return err
		}

		srv := issues.NewServer(issues.NewGitHubCreator(cfg, nil), logger)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		go func() {
			<-ctx.Done()
			if err := srv.Shutdown(); err != nil {
				logger.Error("Error shutting down", zap.Error(err))
			}
		}()

		return srv.ListenAndServe(cfg.Addr)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", issues.DefaultAddr, "Listen address")
	serveCmd.Flags().StringVar(&serveOwner, "owner", "", "Repository owner (default $GITHUB_OWNER)")
	serveCmd.Flags().StringVar(&serveRepo, "repo", "", "Repository name (default $GITHUB_REPO)")
	serveCmd.Flags().StringVar(&serveAPIBase, "api", "", "GitHub API base URL (default $GITHUB_API_URL or https://api.github.com)")
}

// serveConfig merges the environment with the flags; flags win.
func serveConfig() issues.Config {
	cfg := issues.ConfigFromEnv()
	if serveAddr != "" {
		cfg.Addr = serveAddr
	}
	if serveOwner != "" {
		cfg.Owner = serveOwner
	}
	if serveRepo != "" {
		cfg.Repo = serveRepo
	}
	if serveAPIBase != "" {
		cfg.APIBase = serveAPIBase
	}
	return cfg
}
