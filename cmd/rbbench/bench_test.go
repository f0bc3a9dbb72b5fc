// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunBench(t *testing.T) {
	res, err := runBench(&config{N: 2000, Seed: 7, Removals: 0.5, Check: true, LogLevel: "warn"})
	require.NoError(t, err)
	assert.Equal(t, uint64(7), res.seed)
	require.Len(t, res.phases, 2)
	assert.Equal(t, "insert", res.phases[0].name)
	assert.Equal(t, 2000, res.phases[0].ops)
	assert.Equal(t, 1000, res.phases[1].ops)
	assert.Equal(t, 1000, res.size)

	var buf bytes.Buffer
	res.print(&buf)
	assert.Contains(t, buf.String(), "seed 7")
	assert.Contains(t, buf.String(), "2,000 ops")
	assert.Contains(t, buf.String(), "final size 1,000")
}

func TestRunBenchBadLevel(t *testing.T) {
	_, err := runBench(&config{N: 1, LogLevel: "loud"})
	assert.ErrorContains(t, err, "log level")
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bench.yaml")
	require.NoError(t, os.WriteFile(path, []byte("n: 500\nremovals: 0.25\n"), 0o644))
	t.Setenv("RBBENCH_CHECK", "true")

	cfg, err := loadConfig(path, nil)
	require.NoError(t, err)
	assert.Equal(t, 500, cfg.N)
	assert.Equal(t, 0.25, cfg.Removals)
	assert.True(t, cfg.Check)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadConfigInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bench.yaml")
	require.NoError(t, os.WriteFile(path, []byte("removals: 2\n"), 0o644))
	_, err := loadConfig(path, nil)
	assert.ErrorContains(t, err, "removals")
}

func TestRunCommand(t *testing.T) {
	cmd := runCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--n", "300", "--seed", "3", "--removals", "1", "--check", "--log-level", "error"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "seed 3")
	assert.Contains(t, out.String(), "remove")
	assert.Contains(t, out.String(), "final size 0")
}
