package main

import (
	"github.com/spf13/cobra"

	"github.com/repulens/backend/internal/domain"
)

var searchLocation string

var searchCmd = &cobra.Command{
	Use:   "search QUERY",
	Short: "Search for businesses by name",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := newService().SearchBusinesses(cmd.Context(), &domain.SearchRequest{
			Query:    args[0],
			Location: searchLocation,
		})
		if err != nil {
			return err
		}
		return writeOutput(cmd.OutOrStdout(), outputFormat, result)
	},
}

var reviewsCmd = &cobra.Command{
	Use:   "reviews DATA_ID",
	Short: "Show the latest reviews of a business",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := newService().GetBusinessReviews(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return writeOutput(cmd.OutOrStdout(), outputFormat, result)
	},
}

func init() {
	searchCmd.Flags().StringVarP(&searchLocation, "location", "l", "", "city, neighborhood or address to narrow the search")
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(reviewsCmd)
}
