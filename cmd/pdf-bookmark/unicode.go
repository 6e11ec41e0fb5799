package main

import (
	"fmt"
	"strings"

	pdfbookmark "github.com/alnah/go-pdfbookmark"
)

// unicodeTokenPrefix marks an argument as an encoded pdfmark string.
const unicodeTokenPrefix = "<FEFF"

// runUnicode converts each argument on its own output line: encoded
// "<FEFF...>" tokens are decoded to text, anything else is encoded.
func runUnicode(args []string, env *Environment) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: unicode requires at least one argument", ErrUsage)
	}

	for _, arg := range args {
		if !strings.HasPrefix(arg, unicodeTokenPrefix) {
			fmt.Fprintln(env.Stdout, pdfbookmark.EncodeMarkString(arg))
			continue
		}
		text, err := pdfbookmark.DecodeMarkString(arg)
		if err != nil {
			return fmt.Errorf("decoding %q: %w", arg, err)
		}
		fmt.Fprintln(env.Stdout, text)
	}
	return nil
}
