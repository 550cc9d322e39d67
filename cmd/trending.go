package cmd

import (
	"context"
	"os"

	"github.com/cinefind/cinefind/analytics"
	"github.com/cinefind/cinefind/inline"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(trendingCmd)
	trendingCmd.Flags().BoolP("json", "j", false, "Format the output as a JSON object")
	trendingCmd.SetOut(os.Stdout)
}

var trendingCmd = &cobra.Command{
	Use:   "trending",
	Short: "Show the most searched movies",
	Run: func(cmd *cobra.Command, args []string) {
		tracker, err := analytics.OpenFromConfig()
		handleErr(err)

		handleErr(closing(tracker, func() error {
			return inline.Trending(context.Background(), cmd.OutOrStdout(), tracker, lo.Must(cmd.Flags().GetBool("json")))
		}))
	},
}
