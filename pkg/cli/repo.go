package cli

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/devicelab-dev/locator/pkg/locator"
	"github.com/devicelab-dev/locator/pkg/repository"
)

var repoCommand = &cli.Command{
	Name:      "repo",
	Usage:     "Convert every locator in a YAML repository file",
	ArgsUsage: "<file>",
	Action:    runRepo,
}

func runRepo(c *cli.Context) error {
	path := c.Args().First()
	if path == "" {
		return fmt.Errorf("no repository file given")
	}

	target, err := locator.ParseFormat(c.String("to"))
	if err != nil {
		return err
	}

	repo, err := repository.Load(path)
	if err != nil {
		return err
	}

	converted, err := repo.Convert(newConverter(c), target)
	if err != nil {
		return err
	}

	if repo.Name != "" {
		fmt.Fprintf(c.App.Writer, "# %s\n", repo.Name)
	}
	for _, name := range repo.Names() {
		fmt.Fprintf(c.App.Writer, "%s: ", name)
		if err := printResult(c.App.Writer, converted[name]); err != nil {
			return err
		}
	}
	return nil
}
