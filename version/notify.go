package version

import (
	"fmt"

	"github.com/cinefind/cinefind/color"
	"github.com/cinefind/cinefind/constant"
	"github.com/cinefind/cinefind/icon"
	"github.com/cinefind/cinefind/key"
	"github.com/cinefind/cinefind/style"
	"github.com/cinefind/cinefind/util"
	"github.com/spf13/viper"
)

// Notify prints a notice when a newer release than the running one exists.
func Notify() {
	if !viper.GetBool(key.CliVersionCheck) {
		return
	}

	erase := util.PrintErasable(fmt.Sprintf("%s Checking if new version is available...", icon.Get(icon.Progress)))
	version, err := Latest()
	erase()
	if err != nil {
		return
	}

	if comp, err := Compare(version, constant.Version); err != nil || comp <= 0 {
		return
	}

	fmt.Printf(`
%s New version is available %s %s
%s

`,
		style.Fg(color.Green)("▇▇▇"),
		style.Bold(version),
		style.Faint(fmt.Sprintf("(You're on %s)", constant.Version)),
		style.Faint(constant.ReleasesPage+"/tag/v"+version),
	)
}
