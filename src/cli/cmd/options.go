package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/sofmeright/lintgate/src/options"
)

var optionsCmd = &cobra.Command{
	Use:   "options <options file>",
	Short: "Validate and normalize a raw options record",
	Long: `Run a loosely-typed options record (YAML or JSON) through the same
validator that gates engine construction, and print the normalized record.

Unknown fields and type mismatches fail exactly as they would at
construction time.`,
	Args: cobra.ExactArgs(1),
	RunE: runOptions,
}

func init() {
	rootCmd.AddCommand(optionsCmd)
}

func runOptions(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("parsing %s: %w", args[0], err)
	}

	cwd, err := os.Getwd()
	if err != nil {
		return err
	}
	v := options.Validator{Cwd: repoRoot(cwd)}
	o, err := v.Validate(raw)
	if err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}

	out, err := yaml.Marshal(o)
	if err != nil {
		return err
	}
	fmt.Print(string(out))
	return nil
}
