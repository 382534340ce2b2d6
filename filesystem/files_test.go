/*
 * Copyright (C) 2023-2025 Evidence Lab Ltd or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package filesystem

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/go-faker/faker/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evidencelab/hashcalc/commonerrors"
	"github.com/evidencelab/hashcalc/commonerrors/errortest"
	"github.com/evidencelab/hashcalc/idgen"
)

func TestExists(t *testing.T) {
	for _, fsType := range FileSystemTypes {
		t.Run(fmt.Sprintf("%v_for_fs_%v", t.Name(), fsType), func(t *testing.T) {
			fs := NewFs(fsType)
			tmpFile, err := fs.TempFileInTempDir("test-exist-")
			require.NoError(t, err)
			require.NoError(t, tmpFile.Close())

			fileName := tmpFile.Name()
			defer func() { _ = fs.Rm(fileName) }()
			assert.True(t, fs.Exists(fileName))

			randomName, err := idgen.GenerateUUID4()
			require.NoError(t, err)
			assert.False(t, fs.Exists(randomName))
		})
	}
}

func TestIsFileIsDir(t *testing.T) {
	for _, fsType := range FileSystemTypes {
		t.Run(fmt.Sprintf("%v_for_fs_%v", t.Name(), fsType), func(t *testing.T) {
			fs := NewFs(fsType)
			tmpDir, err := fs.TempDirInTempDir("test-isfile-")
			require.NoError(t, err)
			defer func() { _ = fs.Rm(tmpDir) }()

			isDir, err := fs.IsDir(tmpDir)
			require.NoError(t, err)
			assert.True(t, isDir)
			isFile, err := fs.IsFile(tmpDir)
			require.NoError(t, err)
			assert.False(t, isFile)

			filePath := filepath.Join(tmpDir, "test.txt")
			require.NoError(t, fs.WriteFile(filePath, []byte(faker.Sentence()), 0644))
			isFile, err = fs.IsFile(filePath)
			require.NoError(t, err)
			assert.True(t, isFile)
			isDir, err = fs.IsDir(filePath)
			require.NoError(t, err)
			assert.False(t, isDir)
		})
	}
}

func TestIsEmpty(t *testing.T) {
	for _, fsType := range FileSystemTypes {
		t.Run(fmt.Sprintf("%v_for_fs_%v", t.Name(), fsType), func(t *testing.T) {
			fs := NewFs(fsType)
			tmpDir, err := fs.TempDirInTempDir("test-isempty-")
			require.NoError(t, err)
			defer func() { _ = fs.Rm(tmpDir) }()

			missing, err := fs.IsEmpty(filepath.Join(tmpDir, "absent"))
			require.NoError(t, err)
			assert.True(t, missing)

			emptyFile := filepath.Join(tmpDir, "empty.bin")
			require.NoError(t, fs.WriteFile(emptyFile, []byte{}, 0644))
			empty, err := fs.IsEmpty(emptyFile)
			require.NoError(t, err)
			assert.True(t, empty)

			fullFile := filepath.Join(tmpDir, "full.bin")
			require.NoError(t, fs.WriteFile(fullFile, []byte(faker.Sentence()), 0644))
			empty, err = fs.IsEmpty(fullFile)
			require.NoError(t, err)
			assert.False(t, empty)

			empty, err = fs.IsEmpty(tmpDir)
			require.NoError(t, err)
			assert.False(t, empty)
		})
	}
}

func TestWriteReadFile(t *testing.T) {
	for _, fsType := range FileSystemTypes {
		t.Run(fmt.Sprintf("%v_for_fs_%v", t.Name(), fsType), func(t *testing.T) {
			fs := NewFs(fsType)
			tmpDir, err := fs.TempDirInTempDir("test-readwrite-")
			require.NoError(t, err)
			defer func() { _ = fs.Rm(tmpDir) }()

			content := []byte(faker.Paragraph())
			filePath := filepath.Join(tmpDir, "content.txt")
			require.NoError(t, fs.WriteFile(filePath, content, 0644))

			read, err := fs.ReadFile(filePath)
			require.NoError(t, err)
			assert.Equal(t, content, read)

			size, err := fs.GetFileSize(filePath)
			require.NoError(t, err)
			assert.Equal(t, int64(len(content)), size)
		})
	}
}

func TestLs(t *testing.T) {
	for _, fsType := range FileSystemTypes {
		t.Run(fmt.Sprintf("%v_for_fs_%v", t.Name(), fsType), func(t *testing.T) {
			fs := NewFs(fsType)
			tmpDir, err := fs.TempDirInTempDir("test-ls-")
			require.NoError(t, err)
			defer func() { _ = fs.Rm(tmpDir) }()

			require.NoError(t, fs.WriteFile(filepath.Join(tmpDir, "a.txt"), []byte("a"), 0644))
			require.NoError(t, fs.WriteFile(filepath.Join(tmpDir, "b.txt"), []byte("b"), 0644))

			names, err := fs.Ls(tmpDir)
			require.NoError(t, err)
			sort.Strings(names)
			assert.Equal(t, []string{"a.txt", "b.txt"}, names)

			_, err = fs.Ls(filepath.Join(tmpDir, "a.txt"))
			errortest.AssertError(t, err, commonerrors.ErrInvalid)
		})
	}
}

func TestWalk(t *testing.T) {
	for _, fsType := range FileSystemTypes {
		t.Run(fmt.Sprintf("%v_for_fs_%v", t.Name(), fsType), func(t *testing.T) {
			fs := NewFs(fsType)
			tmpDir, err := fs.TempDirInTempDir("test-walk-")
			require.NoError(t, err)
			defer func() { _ = fs.Rm(tmpDir) }()

			require.NoError(t, fs.MkDir(filepath.Join(tmpDir, "sub", "subsub")))
			require.NoError(t, fs.WriteFile(filepath.Join(tmpDir, "top.txt"), []byte("top"), 0644))
			require.NoError(t, fs.WriteFile(filepath.Join(tmpDir, "sub", "mid.txt"), []byte("mid"), 0644))
			require.NoError(t, fs.WriteFile(filepath.Join(tmpDir, "sub", "subsub", "deep.txt"), []byte("deep"), 0644))

			var files []string
			err = fs.Walk(tmpDir, func(path string, info os.FileInfo, walkErr error) error {
				if walkErr != nil {
					return walkErr
				}
				if IsRegularFile(info) {
					files = append(files, path)
				}
				return nil
			})
			require.NoError(t, err)
			sort.Strings(files)
			assert.Equal(t, []string{
				filepath.Join(tmpDir, "sub", "mid.txt"),
				filepath.Join(tmpDir, "sub", "subsub", "deep.txt"),
				filepath.Join(tmpDir, "top.txt"),
			}, files)
		})
	}
}

func TestListDirTree(t *testing.T) {
	for _, fsType := range FileSystemTypes {
		t.Run(fmt.Sprintf("%v_for_fs_%v", t.Name(), fsType), func(t *testing.T) {
			fs := NewFs(fsType)
			tmpDir, err := fs.TempDirInTempDir("test-tree-")
			require.NoError(t, err)
			defer func() { _ = fs.Rm(tmpDir) }()

			require.NoError(t, fs.MkDir(filepath.Join(tmpDir, "sub")))
			require.NoError(t, fs.WriteFile(filepath.Join(tmpDir, "sub", "leaf.txt"), []byte("leaf"), 0644))

			var list []string
			require.NoError(t, fs.ListDirTree(tmpDir, &list))
			sort.Strings(list)
			assert.Equal(t, []string{
				filepath.Join(tmpDir, "sub"),
				filepath.Join(tmpDir, "sub", "leaf.txt"),
			}, list)

			errortest.AssertError(t, fs.ListDirTree(tmpDir, nil), commonerrors.ErrUndefined)
		})
	}
}

func TestMkDir(t *testing.T) {
	for _, fsType := range FileSystemTypes {
		t.Run(fmt.Sprintf("%v_for_fs_%v", t.Name(), fsType), func(t *testing.T) {
			fs := NewFs(fsType)
			tmpDir, err := fs.TempDirInTempDir("test-mkdir-")
			require.NoError(t, err)
			defer func() { _ = fs.Rm(tmpDir) }()

			errortest.AssertError(t, fs.MkDir(""), commonerrors.ErrUndefined)

			nested := filepath.Join(tmpDir, "a", "b", "c")
			require.NoError(t, fs.MkDir(nested))
			assert.True(t, fs.Exists(nested))
			// Creating an existing directory must not fail.
			require.NoError(t, fs.MkDir(nested))
		})
	}
}

func TestCleanDirRm(t *testing.T) {
	for _, fsType := range FileSystemTypes {
		t.Run(fmt.Sprintf("%v_for_fs_%v", t.Name(), fsType), func(t *testing.T) {
			fs := NewFs(fsType)
			tmpDir, err := fs.TempDirInTempDir("test-clean-")
			require.NoError(t, err)
			defer func() { _ = fs.Rm(tmpDir) }()

			require.NoError(t, fs.MkDir(filepath.Join(tmpDir, "sub")))
			require.NoError(t, fs.WriteFile(filepath.Join(tmpDir, "sub", "leaf.txt"), []byte("leaf"), 0644))
			require.NoError(t, fs.WriteFile(filepath.Join(tmpDir, "top.txt"), []byte("top"), 0644))

			require.NoError(t, fs.CleanDir(tmpDir))
			assert.True(t, fs.Exists(tmpDir))
			empty, err := fs.IsEmpty(tmpDir)
			require.NoError(t, err)
			assert.True(t, empty)

			require.NoError(t, fs.Rm(tmpDir))
			assert.False(t, fs.Exists(tmpDir))
		})
	}
}

func TestConvertFileSystemError(t *testing.T) {
	assert.NoError(t, ConvertFileSystemError(nil))
	errortest.AssertError(t, ConvertFileSystemError(os.ErrNotExist), commonerrors.ErrNotFound)
	errortest.AssertError(t, ConvertFileSystemError(os.ErrExist), commonerrors.ErrExists)
	unrelated := commonerrors.ErrCondition
	assert.Equal(t, unrelated, ConvertFileSystemError(unrelated))
}

func TestFileInfoHelpers(t *testing.T) {
	assert.False(t, IsRegularFile(nil))
	assert.False(t, IsDirectory(nil))

	fs := NewInMemoryFileSystem()
	require.NoError(t, fs.WriteFile("/helper.txt", []byte("x"), 0644))
	info, err := fs.Stat("/helper.txt")
	require.NoError(t, err)
	assert.True(t, IsRegularFile(info))
	assert.False(t, IsDirectory(info))
}
