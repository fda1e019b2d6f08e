// Copyright (c) 2025 Hello Demo Contributors
//
// This software is released under the MIT License.
// See LICENSE file in the repository for details.

// Package demo sequences the demonstration run.
package demo

import (
	"fmt"
	"io"
	"log/slog"

	"hello-demo/internal/calculator"
	"hello-demo/internal/config"
	"hello-demo/pkg/hello"
)

// Run writes the demonstration sequence to out: the banner, the greeting
// for the configured name, and the sum of the configured addends. The
// sequence is fixed; configuration only changes the literals in it.
func Run(out io.Writer, cfg *config.Config) error {
	slog.Debug("demo starting", "banner", cfg.Demo.Banner)
	if _, err := fmt.Fprintln(out, cfg.Demo.Banner); err != nil {
		return fmt.Errorf("failed to write banner: %w", err)
	}

	greeter := hello.New(cfg.Greeter.Name)
	slog.Debug("greeter constructed", "name", greeter.Name())
	if err := greeter.WriteGreeting(out); err != nil {
		return err
	}

	a, b := cfg.Demo.Addends[0], cfg.Demo.Addends[1]
	sum := calculator.Add(a, b)
	slog.Debug("sum computed", "a", a, "b", b, "sum", sum)
	if _, err := fmt.Fprintf(out, "Result: %d\n", sum); err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}

	return nil
}
