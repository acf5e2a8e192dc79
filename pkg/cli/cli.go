// Package cli provides the command-line interface for the locator tool.
package cli

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

// Version is set at build time.
var Version = "dev"

// GlobalFlags are available to all commands.
var GlobalFlags = []cli.Flag{
	&cli.StringFlag{
		Name:    "to",
		Aliases: []string{"t"},
		Usage:   "Target format (xpath, dict, uiselector)",
		Value:   "xpath",
		EnvVars: []string{"LOCATOR_TO"},
	},
	&cli.BoolFlag{
		Name:    "strict",
		Usage:   "Fail on lossy conversions instead of dropping unsupported features",
		EnvVars: []string{"LOCATOR_STRICT"},
	},
}

// Execute runs the CLI.
func Execute() {
	app := &cli.App{
		Name:    "locator",
		Usage:   "Convert UI test locators between dict, XPath and UiSelector forms",
		Version: Version,
		Description: `Locator converts element locators used by mobile UI test suites
between their three equivalent representations.

Examples:
  # UiSelector source to XPath
  locator convert 'new UiSelector().text("Settings").clickable(true);'

  # XPath to UiSelector source
  locator convert --to uiselector "//*[@text='Settings']"

  # JSON dict (leading brace) to XPath
  locator convert '{"class": "android.widget.TextView", "text": "Settings"}'

  # Convert a whole YAML locator repository
  locator repo --to uiselector login_page.yaml`,
		Flags: GlobalFlags,
		Commands: []*cli.Command{
			convertCommand,
			repoCommand,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
