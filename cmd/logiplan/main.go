// Command logiplan solves logistics planning problem instances: each
// file path argument names an instance in the textual format documented
// in the external interface contract; the driver parses it, runs the
// search engine, and prints the resulting plan to standard output, one
// action per line. With zero arguments it prints "No file input." and
// exits 0.
package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mkrivich/logiplan/logistics"
	"github.com/mkrivich/logiplan/search"
)

var (
	configPath    string
	maxIterations int
	timingPath    string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Fatal(err)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "logiplan [files...]",
		Short: "Solve logistics planning problem instances.",
		RunE:  run,
	}
	cmd.Flags().StringVar(&configPath, "config", "", "optional YAML run configuration")
	cmd.Flags().IntVar(&maxIterations, "max-iterations", 0,
		"override the solver's iteration cap (0 defers to --config, or unbounded)")
	cmd.Flags().StringVar(&timingPath, "timing-file", "",
		"append one \"path cost elapsed\" line per solved file to this path (default: log to stderr only)")

	return cmd
}

func run(_ *cobra.Command, args []string) error {
	if len(args) == 0 {
		fmt.Println("No file input.")
		return nil
	}

	bound, err := resolveBound()
	if err != nil {
		return err
	}

	for _, path := range args {
		if err := solveOne(path, bound); err != nil {
			log.Printf("%s: %v", path, err)
		}
	}

	return nil
}

// resolveBound picks the iteration cap: --max-iterations wins if set,
// else the config file's max_iterations key, else unbounded.
func resolveBound() (int, error) {
	if maxIterations > 0 {
		return maxIterations, nil
	}
	if configPath == "" {
		return search.Unbounded, nil
	}

	v := viper.New()
	v.SetConfigFile(configPath)
	if err := v.ReadInConfig(); err != nil {
		return 0, fmt.Errorf("reading config %s: %w", configPath, err)
	}
	if v.IsSet("max_iterations") {
		return v.GetInt("max_iterations"), nil
	}

	return search.Unbounded, nil
}

func solveOne(path string, bound int) error {
	_, problem, err := logistics.ParseFile(path)
	if err != nil {
		return err
	}

	start := time.Now()
	cost, actions := search.Solve(problem, bound)
	elapsed := time.Since(start)

	if err := logistics.Print(os.Stdout, actions); err != nil {
		return err
	}
	log.Printf("%s: cost=%d elapsed=%s", path, cost, elapsed)

	return appendTimingLine(path, cost, elapsed)
}

// appendTimingLine is a no-op unless --timing-file was given; it mirrors
// the source driver's per-file results.txt line without hardcoding a
// filename the caller never asked for.
func appendTimingLine(path string, cost int, elapsed time.Duration) error {
	if timingPath == "" {
		return nil
	}

	f, err := os.OpenFile(timingPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening timing file %s: %w", timingPath, err)
	}
	defer f.Close()

	_, err = fmt.Fprintf(f, "%s %d %s\n", path, cost, elapsed)

	return err
}
