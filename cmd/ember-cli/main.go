// SPDX-License-Identifier: Apache-2.0
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"

	"ember/internal/errors"
	"ember/internal/parser"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: ember <file.em>")
		os.Exit(1)
	}

	startTime := time.Now()
	path := os.Args[1]

	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read file: %v\n", err)
		os.Exit(1)
	}

	module, scanErrors, parseErr := parser.ParseSource(string(source))

	reporter := errors.NewErrorReporter(path, string(source))

	hasErrors := false
	for _, scanErr := range scanErrors {
		fmt.Print(reporter.FormatError(errors.FromScanError(scanErr)))
		hasErrors = true
	}
	if parseErr != nil {
		fmt.Print(reporter.FormatError(errors.FromParseFailure(parseErr)))
		hasErrors = true
	}

	duration := formatDuration(time.Since(startTime))
	if !hasErrors {
		fmt.Println(module.String())
		color.Green("Successfully parsed %s in %s", path, duration)
	} else {
		color.Red("Parsing failed after %s", duration)
		os.Exit(1)
	}
}

func formatDuration(d time.Duration) string {
	switch {
	case d >= time.Second:
		return fmt.Sprintf("%.2fs", d.Seconds())
	case d >= time.Millisecond:
		return fmt.Sprintf("%.1fms", float64(d.Nanoseconds())/1000000.0)
	case d >= time.Microsecond:
		return fmt.Sprintf("%.1fμs", float64(d.Nanoseconds())/1000.0)
	default:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	}
}
