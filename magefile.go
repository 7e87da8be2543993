//go:build mage

package main

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Default target - build the binary
var Default = Build

// Build builds the minicheck binary
func Build() error {
	ldflags := ""
	if hash, err := sh.Output("git", "rev-parse", "--short", "HEAD"); err == nil {
		ldflags = "-X github.com/sj99642/minicheck/internal/version.CommitHash=" + hash
	}
	return sh.Run("go", "build", "-ldflags", ldflags, "-o", "bin/minicheck", "./cmd/minicheck")
}

// Test runs the full test suite
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Lint runs go vet plus golangci-lint when installed
func Lint() error {
	if err := sh.RunV("go", "vet", "./..."); err != nil {
		return fmt.Errorf("vet failed: %w", err)
	}
	if _, err := exec.LookPath("golangci-lint"); err != nil {
		fmt.Fprintln(os.Stderr, "golangci-lint not found, skipping (install: go install github.com/golangci/golangci-lint/cmd/golangci-lint@latest)")
		return nil
	}
	return sh.RunV("golangci-lint", "run", "./...")
}

// QA runs lint and tests
func QA() error {
	mg.Deps(Lint)
	return Test()
}

// Clean removes build artifacts
func Clean() error {
	return sh.Rm("bin")
}
