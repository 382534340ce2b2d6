/*
 * Copyright (C) 2023-2025 Evidence Lab Ltd or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package cmd

import (
	"bytes"
	"crypto/md5"
	"crypto/sha1"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evidencelab/hashcalc/calc"
	"github.com/evidencelab/hashcalc/commonerrors"
	"github.com/evidencelab/hashcalc/commonerrors/errortest"
	"github.com/evidencelab/hashcalc/digest"
	"github.com/evidencelab/hashcalc/filesystem"
	"github.com/evidencelab/hashcalc/pipeline"
)

func TestCollectFiles(t *testing.T) {
	fs := filesystem.NewInMemoryFileSystem()
	require.NoError(t, fs.MkDir("/data/sub"))
	require.NoError(t, fs.WriteFile("/data/a.txt", []byte("aaa"), 0644))
	require.NoError(t, fs.WriteFile("/data/sub/b.txt", []byte("bbb"), 0644))
	require.NoError(t, fs.WriteFile("/data/sub/c.bin", []byte{0x00, 0x01}, 0644))
	require.NoError(t, fs.WriteFile("/solo.txt", []byte("solo"), 0644))

	t.Run("file argument", func(t *testing.T) {
		files, err := collectFiles(fs, []string{"/solo.txt"})
		require.NoError(t, err)
		assert.Equal(t, []string{"/solo.txt"}, files)
	})
	t.Run("directory argument is walked", func(t *testing.T) {
		files, err := collectFiles(fs, []string{"/data"})
		require.NoError(t, err)
		assert.Equal(t, []string{"/data/a.txt", "/data/sub/b.txt", "/data/sub/c.bin"}, files)
	})
	t.Run("mixed arguments are merged and sorted", func(t *testing.T) {
		files, err := collectFiles(fs, []string{"/solo.txt", "/data"})
		require.NoError(t, err)
		assert.Equal(t, []string{"/data/a.txt", "/data/sub/b.txt", "/data/sub/c.bin", "/solo.txt"}, files)
	})
	t.Run("missing path", func(t *testing.T) {
		files, err := collectFiles(fs, []string{"/nowhere"})
		errortest.RequireError(t, err, commonerrors.ErrNotFound)
		assert.Empty(t, files)
	})
	t.Run("empty directory", func(t *testing.T) {
		require.NoError(t, fs.MkDir("/empty"))
		files, err := collectFiles(fs, []string{"/empty"})
		require.NoError(t, err)
		assert.Empty(t, files)
	})
}

func TestRenderSummary(t *testing.T) {
	algorithms, err := digest.ParseSet("MD5,SHA1")
	require.NoError(t, err)

	hashed := pipeline.Report{
		Result: calc.Result{
			Path:  "/evidence/fox.txt",
			Bytes: 43,
			Digests: map[digest.Algorithm]string{
				digest.MD5:  "9e107d9d372bb6826bd81d3542a419d6",
				digest.SHA1: "2fd4e1c67a2d28fced849ee1bb76e7391b93eb12",
			},
		},
		Status: calc.StatusOK,
	}
	missing := pipeline.Report{
		Result: calc.Result{Path: "/evidence/gone.txt"},
		Status: calc.StatusNotFound,
		Err:    commonerrors.ErrNotFound,
	}
	summary := &pipeline.Summary{
		RunID:    "0b4ff19a-1f3b-47f5-a3f7-0042dca7a1e9",
		Duration: 1500 * time.Millisecond,
		Reports:  []pipeline.Report{hashed, missing},
	}

	out := &bytes.Buffer{}
	renderSummary(out, algorithms, summary)
	rendered := out.String()

	assert.Contains(t, rendered, "PATH")
	assert.Contains(t, rendered, "STATUS")
	assert.Contains(t, rendered, "MD5")
	assert.Contains(t, rendered, "SHA1")
	assert.Contains(t, rendered, "/evidence/fox.txt")
	assert.Contains(t, rendered, "9e107d9d372bb6826bd81d3542a419d6")
	assert.Contains(t, rendered, "2fd4e1c67a2d28fced849ee1bb76e7391b93eb12")
	assert.Contains(t, rendered, "NOT_FOUND")
	assert.Contains(t, rendered, summary.RunID)
	assert.Contains(t, rendered, "1 file(s) hashed")
	assert.Contains(t, rendered, "1 failed")
}

func TestRootCommand(t *testing.T) {
	tmpDir := t.TempDir()
	content := []byte("The quick brown fox jumps over the lazy dog")
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "fox.txt"), content, 0600))

	out := &bytes.Buffer{}
	rootCmd.SetOut(out)
	rootCmd.SetErr(out)
	rootCmd.SetArgs([]string{"--no-progress", tmpDir})
	require.NoError(t, rootCmd.Execute())

	rendered := out.String()
	assert.Contains(t, rendered, filepath.Join(tmpDir, "fox.txt"))
	assert.Contains(t, rendered, fmt.Sprintf("%x", md5.Sum(content)))
	assert.Contains(t, rendered, fmt.Sprintf("%x", sha1.Sum(content)))
	assert.Contains(t, rendered, "OK")
	assert.Contains(t, rendered, "1 file(s) hashed")
	assert.Contains(t, rendered, "0 failed")
}

func TestRootCommandMissingPath(t *testing.T) {
	out := &bytes.Buffer{}
	rootCmd.SetOut(out)
	rootCmd.SetErr(out)
	rootCmd.SetArgs([]string{"--no-progress", filepath.Join(t.TempDir(), "absent")})
	errortest.RequireError(t, rootCmd.Execute(), commonerrors.ErrNotFound)
}
