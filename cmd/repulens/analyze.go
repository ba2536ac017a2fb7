package main

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/repulens/backend/internal/domain"
)

var (
	analyzeLocation    string
	analyzeConcurrency int
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze NAME...",
	Short: "Analyze the reputation of one or more businesses",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		service := newService()
		outcomes := analyzeAll(ctx, args, analyzeLocation, analyzeConcurrency, service.AnalyzeReputation)

		if len(outcomes) == 1 {
			if outcomes[0].err != nil {
				return outcomes[0].err
			}
			return writeOutput(cmd.OutOrStdout(), outputFormat, outcomes[0].Result)
		}
		return writeOutput(cmd.OutOrStdout(), outputFormat, outcomes)
	},
}

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeLocation, "location", "l", "", "city, neighborhood or address to narrow the search")
	analyzeCmd.Flags().IntVar(&analyzeConcurrency, "concurrency", 4, "max analyses running at once")
	rootCmd.AddCommand(analyzeCmd)
}

// analysisOutcome is the result of analyzing one business name
type analysisOutcome struct {
	BusinessName string                   `json:"businessName" yaml:"businessName"`
	Result       *domain.ComparisonResult `json:"result,omitempty" yaml:"result,omitempty"`
	Error        string                   `json:"error,omitempty" yaml:"error,omitempty"`
	Suggestion   string                   `json:"suggestion,omitempty" yaml:"suggestion,omitempty"`

	err error
}

// analyzeFunc is the callback signature for analyzing one business
type analyzeFunc func(ctx context.Context, request *domain.AnalyzeRequest) (*domain.ComparisonResult, error)

// analyzeAll runs the analyses concurrently and returns the outcomes in input
// order. A failed analysis is recorded in its outcome and does not stop the rest.
func analyzeAll(ctx context.Context, names []string, location string, concurrency int, analyze analyzeFunc) []analysisOutcome {
	if concurrency < 1 {
		concurrency = 1
	}

	outcomes := make([]analysisOutcome, len(names))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, name := range names {
		g.Go(func() error {
			outcome := analysisOutcome{BusinessName: name}

			result, err := analyze(gctx, &domain.AnalyzeRequest{BusinessName: name, Location: location})
			if err != nil {
				outcome.err = err
				outcome.Error = err.Error()

				var notFound *domain.NotFoundError
				if errors.As(err, &notFound) {
					outcome.Error = notFound.Message
					outcome.Suggestion = notFound.Suggestion
				}
				zap.L().Warn("analysis failed", zap.String("business", name), zap.Error(err))
			} else {
				outcome.Result = result
			}

			outcomes[i] = outcome
			return nil
		})
	}

	_ = g.Wait()

	return outcomes
}
