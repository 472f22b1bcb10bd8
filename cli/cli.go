package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/pflag"
)

// Config holds all the command-line flag values.
type Config struct {
	// Path is the optional positional file argument. When empty, the app
	// prompts for a path interactively.
	Path    string
	Yes     bool
	NoColor bool
}

// ParseFlags defines and parses command-line flags using pflag.
func ParseFlags() (*Config, error) {
	cfg := &Config{}

	pflag.BoolVarP(&cfg.Yes, "yes", "y", false, "Answer yes to save confirmations (the opt-in array-wrap prompt is skipped).")
	pflag.BoolVar(&cfg.NoColor, "no-color", false, "Disable colored output.")

	pflag.Usage = func() {
		fmt.Println("Usage: fixdoc [flags] [path]")
		fmt.Println("\nValidate a JSON, YAML or XML file and repair common syntax defects.")
		fmt.Println("The repaired content is previewed as a diff and written to a sibling")
		fmt.Println("'_fixed' file after confirmation. Without a path, fixdoc prompts for one.")
		fmt.Println("\nExample: fixdoc config.yaml")
		fmt.Println("\nFlags:")
		pflag.PrintDefaults()
	}

	pflag.Parse()

	if pflag.NArg() > 1 {
		return nil, fmt.Errorf("error: expected at most one path argument, got %d", pflag.NArg())
	}
	if pflag.NArg() == 1 {
		cfg.Path = pflag.Arg(0)
	}

	if cfg.NoColor {
		color.NoColor = true
	}

	return cfg, nil
}
