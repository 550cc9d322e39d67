package cmd

import (
	"context"
	"io"
	"os"
	"os/signal"
	"reflect"

	"github.com/cinefind/cinefind/filesystem"
	"github.com/cinefind/cinefind/inline"
	"github.com/cinefind/cinefind/key"
	"github.com/cinefind/cinefind/query"
	"github.com/cinefind/cinefind/util"
	json "github.com/goccy/go-json"
	"github.com/invopop/jsonschema"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(inlineCmd)

	inlineCmd.Flags().StringP("query", "q", "", "Search query. Leave empty to list popular movies")
	inlineCmd.Flags().StringP("movie", "m", "", "Select a single movie from the results")
	inlineCmd.Flags().BoolP("json", "j", false, "Format the output as a JSON object")
	inlineCmd.Flags().IntP("limit", "l", 0, "Write at most this many movies")
	inlineCmd.Flags().BoolP("urls", "u", false, "Append the TMDB page URL to every movie")
	lo.Must0(viper.BindPFlag(key.TUIShowURLs, inlineCmd.Flags().Lookup("urls")))
	inlineCmd.Flags().StringP("output", "o", "", "Write the output to this file instead of stdout")

	lo.Must0(inlineCmd.RegisterFlagCompletionFunc("query", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return query.SuggestMany(toComplete), cobra.ShellCompDirectiveNoFileComp
	}))
}

var inlineCmd = &cobra.Command{
	Use:   "inline",
	Short: "Run a single search without the interactive interface",
	Long: `Run a single search and print the results, for scripts and pipes.

Movie selectors:
  first - first movie in the results
  last - last movie in the results
  [number] - movie by index (starting from 0)
  [title] - movie with exactly this title, ignoring case`,
	Example: "  cinefind inline --query \"the dark knight\" --json --limit 3",
	Run: func(cmd *cobra.Command, args []string) {
		var (
			writer io.Writer = os.Stdout
			err    error
		)

		if output := lo.Must(cmd.Flags().GetString("output")); output != "" {
			var f io.WriteCloser
			f, err = filesystem.API().Create(output)
			handleErr(err)
			defer util.Ignore(f.Close)
			writer = f
		}

		picker := mo.None[inline.MoviePicker]()
		if selector := lo.Must(cmd.Flags().GetString("movie")); selector != "" {
			fn, err := inline.ParseMoviePicker(selector)
			handleErr(err)
			picker = mo.Some(fn)
		}

		pipeline, tracker := openDiscovery()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		handleErr(closing(tracker, func() error {
			return inline.Run(ctx, &inline.Options{
				Out:      writer,
				Pipeline: pipeline,
				Query:    lo.Must(cmd.Flags().GetString("query")),
				Json:     lo.Must(cmd.Flags().GetBool("json")),
				Limit:    lo.Must(cmd.Flags().GetInt("limit")),
				URLs:     viper.GetBool(key.TUIShowURLs),
				Picker:   picker,
			})
		}))
	},
}

func init() {
	inlineCmd.AddCommand(inlineSchemaCmd)

	inlineSchemaCmd.Flags().BoolP("trending", "t", false, "Generate the schema of the trending output instead")
}

var inlineSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the inline output",
	Run: func(cmd *cobra.Command, args []string) {
		reflector := new(jsonschema.Reflector)
		reflector.Anonymous = true
		reflector.Namer = func(t reflect.Type) string {
			return t.Name()
		}

		var schema *jsonschema.Schema
		if lo.Must(cmd.Flags().GetBool("trending")) {
			schema = reflector.Reflect(&inline.TrendingOutput{})
		} else {
			schema = reflector.Reflect(&inline.Output{})
		}

		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		handleErr(encoder.Encode(schema))
	},
}
