package main

import (
	"github.com/cinefind/cinefind/cmd"
	"github.com/cinefind/cinefind/config"
	"github.com/cinefind/cinefind/internal/cache"
	"github.com/cinefind/cinefind/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cache.CollectGarbage()

	cmd.Execute()
}
