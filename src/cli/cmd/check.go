package cmd

import (
	"fmt"
	"os"
	"sync"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/sofmeright/lintgate/src/config"
	"github.com/sofmeright/lintgate/src/output"
)

var checkCmd = &cobra.Command{
	Use:   "check [config files...]",
	Short: "Validate configuration files",
	Long: `Validate one or more configuration files against the cascading
config schema: severities, global declarations, parser options, and
override structure.

With no arguments, the default rc file is discovered from the enclosing
git repository root (falling back to the working directory).`,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	paths := args
	if len(paths) == 0 {
		cwd, err := os.Getwd()
		if err != nil {
			return err
		}
		root := repoRoot(cwd)
		found, err := config.Discover(root)
		if err != nil {
			return err
		}
		if found == "" {
			return fmt.Errorf("no config file given and none found in %s", root)
		}
		log.Debug().Str("path", found).Msg("discovered config")
		paths = []string{found}
	}

	var (
		mu      sync.Mutex
		results []output.CheckResult
	)

	var g errgroup.Group
	g.SetLimit(4)
	for _, path := range paths {
		path := path
		g.Go(func() error {
			res := checkOne(path)
			mu.Lock()
			results = append(results, res)
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	printer := output.NewPrinter()
	failed := printer.Print(results)

	warned := 0
	failedCount := 0
	for _, r := range results {
		if r.Err != nil {
			failedCount++
		} else if len(r.Warnings) > 0 {
			warned++
		}
	}
	printer.Summary(len(results), failedCount, warned)

	if failed {
		return fmt.Errorf("%d of %d configs invalid", failedCount, len(results))
	}
	return nil
}

func checkOne(path string) output.CheckResult {
	log.Debug().Str("path", path).Msg("checking config")

	cfg, err := config.Load(path)
	if err != nil {
		return output.CheckResult{Path: path, Err: err}
	}
	warnings, err := config.Validate(cfg)
	return output.CheckResult{Path: path, Warnings: warnings, Err: err}
}
