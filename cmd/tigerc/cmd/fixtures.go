package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"
)

var fixturesDir string

var fixturesCmd = &cobra.Command{
	Use:   "fixtures",
	Short: "List bundled AST fixtures",
	RunE:  runFixtures,
}

func init() {
	rootCmd.AddCommand(fixturesCmd)
	fixturesCmd.Flags().StringVar(&fixturesDir, "dir", "testdata/fixtures", "directory to scan for fixtures")
}

func runFixtures(_ *cobra.Command, _ []string) error {
	entries, err := os.ReadDir(fixturesDir)
	if err != nil {
		return fmt.Errorf("reading %s: %w", fixturesDir, err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch filepath.Ext(e.Name()) {
		case ".json", ".yaml", ".yml":
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	for _, n := range names {
		fmt.Println(n)
	}
	return nil
}
