package main

import (
	"fmt"
	"os"

	"github.com/ansg191/trakt/internal/bindcheck"
)

type CheckCmd struct {
	Package []string `help:"Packages to scan." short:"p" default:"./..."`
}

func (c *CheckCmd) Run() error {
	result, err := bindcheck.Check(c.Package...)
	if err != nil {
		return fmt.Errorf("check: %w", err)
	}
	for _, f := range result.Findings {
		fmt.Fprintln(os.Stderr, f)
	}
	fmt.Printf("%d endpoints checked, %d skipped, %d problems in %d packages\n",
		result.Endpoints, len(result.Skipped), len(result.Findings), len(result.Packages))
	if !result.OK() {
		return fmt.Errorf("%d endpoint definitions are invalid", len(result.Findings))
	}
	return nil
}
