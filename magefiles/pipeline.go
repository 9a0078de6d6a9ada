//go:build mage

package main

import (
	"os"
	"os/exec"
	"path/filepath"

	"github.com/magefile/mage/mg"
)

// Fetch builds the binary and scrapes faculty citation data into data/.
func Fetch() error {
	mg.Deps(Init, Build)
	return runBinary("fetch", "--output", filepath.Join("data", "faculty_citations.json"))
}

// Analyze builds the binary and runs the full analysis pipeline over the
// fetched data, writing reports into output/ and saving the run.
func Analyze() error {
	mg.Deps(Init, Build)
	return runBinary("analyze",
		"--input", filepath.Join("data", "faculty_citations.json"),
		"--output-dir", "output",
		"--save")
}

func runBinary(args ...string) error {
	cmd := exec.Command(filepath.Join(binDir, binName), args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
