package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/sofmeright/lintgate/src/config"
)

var printForFile string

var printCmd = &cobra.Command{
	Use:   "print <config file>",
	Short: "Print a normalized configuration",
	Long: `Load a configuration file, apply normalization, and print the result
as YAML.

With --for-file, overrides are resolved for that analyzed file path: they
apply in array order, later entries winning on conflicting keys, and the
printed config carries no overrides of its own.`,
	Args: cobra.ExactArgs(1),
	RunE: runPrint,
}

func init() {
	printCmd.Flags().StringVar(&printForFile, "for-file", "", "resolve overrides for this analyzed file path")
	rootCmd.AddCommand(printCmd)
}

func runPrint(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(args[0])
	if err != nil {
		return err
	}
	if _, err := config.Validate(cfg); err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}

	if printForFile != "" {
		cfg = config.ResolveForFile(cfg, printForFile)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	fmt.Print(string(data))
	return nil
}
