package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/devicelab-dev/locator/pkg/locator"
)

var convertCommand = &cli.Command{
	Name:      "convert",
	Usage:     "Convert a single locator (argument or stdin) to the target format",
	ArgsUsage: "[locator]",
	Action:    runConvert,
}

func runConvert(c *cli.Context) error {
	raw := c.Args().First()
	if raw == "" {
		data, err := io.ReadAll(c.App.Reader)
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		raw = string(data)
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fmt.Errorf("no locator given")
	}

	target, err := locator.ParseFormat(c.String("to"))
	if err != nil {
		return err
	}

	input, err := decodeInput(raw)
	if err != nil {
		return err
	}

	conv := newConverter(c)
	result, err := conv.Convert(input, target)
	if err != nil {
		return err
	}
	return printResult(c.App.Writer, result)
}

// decodeInput turns the raw argument into a converter input. A leading
// brace means a JSON dict; everything else stays a string for the
// converter's own detection.
func decodeInput(raw string) (any, error) {
	if !strings.HasPrefix(raw, "{") {
		return raw, nil
	}
	var d map[string]any
	if err := json.Unmarshal([]byte(raw), &d); err != nil {
		return nil, fmt.Errorf("parse dict locator: %w", err)
	}
	return d, nil
}

// newConverter builds the converter from global flags.
func newConverter(c *cli.Context) *locator.Converter {
	var opts []locator.Option
	if c.Bool("strict") {
		opts = append(opts, locator.WithStrict())
	}
	return locator.New(opts...)
}

// printResult writes a converted locator: dicts as JSON, strings verbatim.
func printResult(w io.Writer, result any) error {
	if d, ok := result.(map[string]any); ok {
		data, err := json.Marshal(d)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	}
	_, err := fmt.Fprintln(w, result)
	return err
}
