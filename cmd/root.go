// Package cmd implements the command-line interface.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/cinefind/cinefind/analytics"
	"github.com/cinefind/cinefind/color"
	"github.com/cinefind/cinefind/constant"
	"github.com/cinefind/cinefind/discover"
	"github.com/cinefind/cinefind/icon"
	"github.com/cinefind/cinefind/key"
	"github.com/cinefind/cinefind/log"
	"github.com/cinefind/cinefind/style"
	"github.com/cinefind/cinefind/tmdb"
	"github.com/cinefind/cinefind/tui"
	"github.com/cinefind/cinefind/util"
	"github.com/cinefind/cinefind/version"
	"github.com/cinefind/cinefind/where"
	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")
	rootCmd.Flags().StringP("query", "q", "", "Start with this search instead of the popular movies")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the visual icon variant (e.g., nerd, emoji, squares)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.PersistentFlags().String("analytics", "", "Search analytics backend: bolt, sqlite or none")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("analytics", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{analytics.BackendBolt, analytics.BackendSQLite, analytics.BackendNone}, cobra.ShellCompDirectiveNoFileComp
	}))
	lo.Must0(viper.BindPFlag(key.AnalyticsBackend, rootCmd.PersistentFlags().Lookup("analytics")))

	helpFunc := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		helpFunc(cmd, args)
		version.Notify()
	})

	go func() {
		_ = util.Delete(where.Temp())
	}()
}

var rootCmd = &cobra.Command{
	Use:   constant.App,
	Short: "Find movies you'll enjoy without the hassle",
	Long: constant.AsciiArtLogo + "\n" +
		style.New().Italic(true).Foreground(color.HiRed).Render("    - Find movies you'll enjoy without the hassle"),
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		pipeline, tracker := openDiscovery()

		handleErr(closing(tracker, func() error {
			return tui.Run(&tui.Options{
				Pipeline: pipeline,
				Tracker:  tracker,
				Query:    lo.Must(cmd.Flags().GetString("query")),
			})
		}))
	},
}

// openDiscovery wires the catalog client and the configured analytics tracker into a pipeline.
// Searching works without analytics, so a tracker that cannot be opened is replaced by a no-op one.
func openDiscovery() (*discover.Pipeline, analytics.Tracker) {
	tracker := analytics.OpenFromConfigOrNoop()

	return discover.NewPipeline(tmdb.NewFromConfig(), tracker), tracker
}

// closing runs fn and closes tracker before returning, so the store is released before handleErr exits.
func closing(tracker analytics.Tracker, fn func() error) error {
	defer util.Ignore(tracker.Close)
	return fn()
}

// Execute runs the command tree.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
