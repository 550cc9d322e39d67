package cmd

import (
	"fmt"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/cinefind/cinefind/auth"
	"github.com/cinefind/cinefind/color"
	"github.com/cinefind/cinefind/constant"
	"github.com/cinefind/cinefind/icon"
	"github.com/cinefind/cinefind/key"
	"github.com/cinefind/cinefind/log"
	"github.com/cinefind/cinefind/open"
	"github.com/cinefind/cinefind/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(authCmd)
}

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage the TMDB access token",
	Long: fmt.Sprintf(`Manage the TMDB API read access token used for catalog requests.

The token is looked up in the %s config key (or the %s environment variable, which may live in a .env file) first,
then in the system keyring.`, key.CatalogToken, "CINEFIND_CATALOG_TOKEN"),
}

func init() {
	authCmd.AddCommand(authSetCmd)
	authSetCmd.Flags().StringP("token", "t", "", "The token to store. Prompted for when omitted")
}

var authSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Store the access token in the system keyring",
	Run: func(cmd *cobra.Command, args []string) {
		token := lo.Must(cmd.Flags().GetString("token"))

		if token == "" {
			var openSettings bool
			err := survey.AskOne(&survey.Confirm{
				Message: "Open the TMDB API settings page to copy your read access token?",
				Default: false,
			}, &openSettings)
			handleErr(err)

			if openSettings {
				if err := open.URL(constant.TMDBSettingsURL); err != nil {
					log.Warn(err)
					fmt.Println("Please open the following URL in your browser:")
					fmt.Println(constant.TMDBSettingsURL)
				}
			}

			err = survey.AskOne(&survey.Password{
				Message: "TMDB API read access token:",
			}, &token, survey.WithValidator(survey.Required))
			handleErr(err)
		}

		handleErr(auth.SetToken(token))
		fmt.Printf("%s token saved to the system keyring\n", style.Fg(color.Green)(icon.Get(icon.Success)))
	},
}

func init() {
	authCmd.AddCommand(authStatusCmd)
}

var authStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show where the access token is taken from",
	Run: func(cmd *cobra.Command, args []string) {
		token, source := auth.Token()
		if source == auth.SourceNone {
			fmt.Printf("%s no token configured, run %s\n", style.Fg(color.Yellow)(icon.Get(icon.Warn)), style.Bold(constant.App+" auth set"))
			return
		}

		fmt.Printf(
			"%s token %s from %s\n",
			style.Fg(color.Green)(icon.Get(icon.Success)),
			style.Faint(mask(token)),
			style.Fg(color.Purple)(string(source)),
		)
	},
}

func init() {
	authCmd.AddCommand(authClearCmd)
}

var authClearCmd = &cobra.Command{
	Use:     "clear",
	Short:   "Remove the access token from the system keyring",
	Aliases: []string{"logout"},
	Run: func(cmd *cobra.Command, args []string) {
		handleErr(auth.DeleteToken())
		fmt.Printf("%s token removed from the system keyring\n", style.Fg(color.Green)(icon.Get(icon.Success)))
	},
}

// mask keeps the last four characters of a secret.
func mask(secret string) string {
	if len(secret) <= 4 {
		return strings.Repeat("*", len(secret))
	}
	return strings.Repeat("*", 8) + secret[len(secret)-4:]
}
