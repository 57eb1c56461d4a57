package runner

import (
	"github.com/projectdiscovery/gologger"
	updateutils "github.com/projectdiscovery/utils/update"
)

var banner = `
       __
  ____/ /_  ______  ___  _  __
 / __  / / / / __ \/ _ \| |/_/
/ /_/ / /_/ / /_/ /  __/>  <
\__,_/\__,_/ .___/\___/_/|_|
          /_/
`

var version = "v0.0.1"

// showBanner is used to show the banner to the user
func showBanner() {
	gologger.Print().Msgf("%s\n", banner)
}

// GetUpdateCallback returns a callback function that updates dupex
func GetUpdateCallback() func() {
	return func() {
		showBanner()
		updateutils.GetUpdateToolCallback("dupex", version)()
	}
}
