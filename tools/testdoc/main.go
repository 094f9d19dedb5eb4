// Package main generates docs/TESTS.md from the doc comments on the
// repository's test functions, grouped by the wtm command they cover.
//
// Usage:
//
//	go run ./tools/testdoc -integration
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
)

func main() {
	rootDir := flag.String("root", ".", "directory tree to scan for _test.go files")
	outFile := flag.String("out", "docs/TESTS.md", "markdown file to write")
	integrationOnly := flag.Bool("integration", false, "document *_integration_test.go files only")
	flag.Parse()

	if err := run(*rootDir, *outFile, *integrationOnly); err != nil {
		fmt.Fprintf(os.Stderr, "testdoc: %v\n", err)
		os.Exit(1)
	}
}

func run(rootDir, outFile string, integrationOnly bool) error {
	root, err := filepath.Abs(rootDir)
	if err != nil {
		return fmt.Errorf("failed to resolve %s: %v", rootDir, err)
	}

	packages, err := ParseTestFiles(root, integrationOnly)
	if err != nil {
		return fmt.Errorf("failed to parse test files: %v", err)
	}

	if err := os.MkdirAll(filepath.Dir(outFile), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %v", err)
	}
	f, err := os.Create(outFile)
	if err != nil {
		return fmt.Errorf("failed to create %s: %v", outFile, err)
	}
	defer f.Close()

	if err := RenderMarkdown(f, packages); err != nil {
		return fmt.Errorf("failed to render markdown: %v", err)
	}

	fmt.Printf("Wrote %s (%d packages)\n", outFile, len(packages))
	return nil
}
