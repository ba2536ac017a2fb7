package main

import (
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/repulens/backend/config"
	"github.com/repulens/backend/internal/infrastructure/serpapi"
	"github.com/repulens/backend/internal/usecase"
)

var (
	cfg          *config.Config
	outputFormat string
)

var rootCmd = &cobra.Command{
	Use:          "repulens",
	Short:        "Business reputation analysis against local competitors",
	Long:         "Finds a business through SerpAPI, ranks its nearby competitors and scores its reputation against them.",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return eris.Wrap(err, "load config")
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return eris.Wrap(err, "init logger")
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", formatJSON, "output format: json or yaml")
}

// newSearchClient builds the SerpAPI client from the loaded configuration
func newSearchClient() *serpapi.Client {
	client := serpapi.NewClient(serpapi.ClientConfig{
		APIKey:          cfg.SerpAPI.APIKey,
		BaseURL:         cfg.SerpAPI.BaseURL,
		Timeout:         cfg.SerpAPI.Timeout,
		RequestsPerHour: cfg.RateLimit.SerpAPI,
	})

	if cfg.Server.Environment == "development" {
		client.SetDebug(true)
	}
	if cfg.SerpAPI.APIKey == "" {
		zap.L().Warn("SerpAPI key not configured, search calls will fail",
			zap.String("base_url", cfg.SerpAPI.BaseURL))
	}

	return client
}

// newService wires the reputation service over the SerpAPI client
func newService() *usecase.ReputationService {
	return usecase.NewReputationService(newSearchClient())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
