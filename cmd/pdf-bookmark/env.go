package main

import (
	"io"
	"os"
	"os/exec"

	pdfbookmark "github.com/alnah/go-pdfbookmark"
)

// Environment holds injectable dependencies for testability.
// Runner and LookPath stand in for the external tools.
type Environment struct {
	Stdin    io.Reader
	Stdout   io.Writer
	Stderr   io.Writer
	Runner   pdfbookmark.CommandRunner
	LookPath func(file string) (string, error)
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Stdin:    os.Stdin,
		Stdout:   os.Stdout,
		Stderr:   os.Stderr,
		Runner:   &pdfbookmark.ExecRunner{},
		LookPath: exec.LookPath,
	}
}
