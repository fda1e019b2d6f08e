// Copyright (c) 2025 Hello Demo Contributors
//
// This software is released under the MIT License.
// See LICENSE file in the repository for details.

// Package calculator provides integer arithmetic for the demo program.
package calculator

// Add returns the sum of a and b.
// Overflow wraps around, as native int arithmetic does.
func Add(a, b int) int {
	return a + b
}
