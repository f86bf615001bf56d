package client

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ContractCodeFile is the compiled code SmartPy writes for the first contract.
const ContractCodeFile = "step_000_cont_0_contract.tz"

const smartPyVersionPrefix = "SmartPy Version: "

// SmartPy wraps the SmartPy CLI script.
type SmartPy struct {
	Script string
	Runner Runner
}

func NewSmartPy(script string, runner Runner) *SmartPy {
	return &SmartPy{Script: script, Runner: runner}
}

func (s *SmartPy) CompileCmd(source, outDir string) Command {
	return Command{Name: s.Script, Args: []string{"compile", source, outDir}}
}

// Compile compiles source into outDir and returns the path of the compiled contract code.
func (s *SmartPy) Compile(ctx context.Context, source, outDir string) (string, error) {
	if _, err := s.Runner.Run(ctx, s.CompileCmd(source, outDir)); err != nil {
		return "", fmt.Errorf("failed to compile %s: %w", source, err)
	}
	return ContractCodePath(outDir)
}

// Version returns the SmartPy version, or "" if the script cannot be run.
func (s *SmartPy) Version(ctx context.Context) string {
	res, err := s.Runner.Run(ctx, Command{Name: s.Script, Args: []string{"--version"}})
	if err != nil {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(res.Stdout), smartPyVersionPrefix))
}

// ContractCodePath locates outDir/<first subdirectory>/step_000_cont_0_contract.tz.
// Subdirectories are taken in name order.
func ContractCodePath(outDir string) (string, error) {
	entries, err := os.ReadDir(outDir)
	if err != nil {
		return "", fmt.Errorf("failed to read compile output %s: %w", outDir, err)
	}

	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		path := filepath.Join(outDir, e.Name(), ContractCodeFile)
		if _, err := os.Stat(path); err != nil {
			return "", fmt.Errorf("compiled contract not found: %w", err)
		}
		return path, nil
	}
	return "", fmt.Errorf("no compilation output directory in %s", outDir)
}
