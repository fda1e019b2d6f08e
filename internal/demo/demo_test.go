// Copyright (c) 2025 Hello Demo Contributors
//
// This software is released under the MIT License.
// See LICENSE file in the repository for details.

package demo

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hello-demo/internal/config"
)

func TestRun(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(cfg *config.Config)
		want   string
	}{
		{
			name:   "canonical run",
			mutate: func(cfg *config.Config) {},
			want:   "Starting test...\nHello, World!\nResult: 8\n",
		},
		{
			name: "configured name and addends",
			mutate: func(cfg *config.Config) {
				cfg.Greeter.Name = "Gopher"
				cfg.Demo.Addends = []int{2, 40}
			},
			want: "Starting test...\nHello, Gopher!\nResult: 42\n",
		},
		{
			name: "empty name",
			mutate: func(cfg *config.Config) {
				cfg.Greeter.Name = ""
			},
			want: "Starting test...\nHello, !\nResult: 8\n",
		},
		{
			name: "negative sum",
			mutate: func(cfg *config.Config) {
				cfg.Demo.Addends = []int{-5, 2}
			},
			want: "Starting test...\nHello, World!\nResult: -3\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := config.Default()
			tt.mutate(cfg)

			var buf bytes.Buffer
			require.NoError(t, Run(&buf, cfg))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("broken pipe")
}

func TestRun_WriterError(t *testing.T) {
	err := Run(failingWriter{}, config.Default())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to write banner")
}
