// Copyright (c) 2025 Hello Demo Contributors
//
// This software is released under the MIT License.
// See LICENSE file in the repository for details.

// Package hello provides a greeting value for the demo program.
package hello

import (
	"fmt"
	"io"
	"os"
)

// Greeter holds a name and renders a greeting containing it.
// The name is set at construction and never changes.
type Greeter struct {
	name string
}

// New creates a Greeter for the given name.
// Any name is accepted, including the empty string.
func New(name string) Greeter {
	return Greeter{name: name}
}

// Name returns the stored name unchanged.
func (g Greeter) Name() string {
	return g.name
}

// Greeting returns the greeting message without a trailing newline.
func (g Greeter) Greeting() string {
	return fmt.Sprintf("Hello, %s!", g.name)
}

// WriteGreeting writes the greeting and a newline to w.
func (g Greeter) WriteGreeting(w io.Writer) error {
	if _, err := fmt.Fprintln(w, g.Greeting()); err != nil {
		return fmt.Errorf("failed to write greeting: %w", err)
	}
	return nil
}

// Greet prints the greeting to standard output.
func (g Greeter) Greet() {
	_ = g.WriteGreeting(os.Stdout)
}
