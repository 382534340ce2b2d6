/*
 * Copyright (C) 2023-2025 Evidence Lab Ltd or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package filesystem

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/evidencelab/hashcalc/commonerrors"
	"github.com/evidencelab/hashcalc/safeio"
)

var ErrPathNotExist = errors.New("readdirent: no such file or directory")

type VFS struct {
	vfs    afero.Fs
	fsType FilesystemType
}

func NewVirtualFileSystem(vfs afero.Fs, fsType FilesystemType) FS {
	return &VFS{
		vfs:    vfs,
		fsType: fsType,
	}
}

func (fs *VFS) GetType() FilesystemType {
	return fs.fsType
}

func (fs *VFS) PathSeparator() rune {
	return os.PathSeparator
}

func (fs *VFS) GenericOpen(name string) (File, error) {
	return convertFile(func() (afero.File, error) { return fs.vfs.Open(name) })
}

func (fs *VFS) OpenFile(name string, flag int, perm os.FileMode) (File, error) {
	return convertFile(func() (afero.File, error) { return fs.vfs.OpenFile(name, flag, perm) })
}

func (fs *VFS) CreateFile(name string) (File, error) {
	return convertFile(func() (afero.File, error) { return fs.vfs.Create(name) })
}

func (fs *VFS) Stat(name string) (os.FileInfo, error) {
	return fs.vfs.Stat(name)
}

func (fs *VFS) Lstat(name string) (fileInfo os.FileInfo, err error) {
	if correctobj, ok := fs.vfs.(interface {
		LstatIfPossible(string) (os.FileInfo, bool, error)
	}); ok {
		fileInfo, _, err = correctobj.LstatIfPossible(name)
		return
	}
	fileInfo, err = fs.Stat(name)
	return
}

func (fs *VFS) TempDirectory() string {
	return afero.GetTempDir(fs.vfs, "")
}

func (fs *VFS) TempDir(dir string, prefix string) (name string, err error) {
	return afero.TempDir(fs.vfs, dir, prefix)
}

func (fs *VFS) TempDirInTempDir(prefix string) (name string, err error) {
	return fs.TempDir("", prefix)
}

func (fs *VFS) TempFile(dir string, pattern string) (f File, err error) {
	file, err := afero.TempFile(fs.vfs, dir, pattern)
	if err != nil {
		return
	}
	f = &extendedFile{File: file}
	return
}

func (fs *VFS) TempFileInTempDir(pattern string) (f File, err error) {
	return fs.TempFile("", pattern)
}

// Exists checks if a file or folder exists.
func (fs *VFS) Exists(path string) bool {
	fi, err := fs.Stat(path)
	if err != nil {
		if IsPathNotExist(err) {
			return false
		}
	}
	if fi == nil {
		return false
	}
	// Double check for directories as Stat was seen to succeed on some file systems
	// even if the path does not exist.
	if fi.IsDir() {
		return fs.checkDirExists(path)
	}
	return true
}

func (fs *VFS) checkDirExists(path string) (exist bool) {
	f, err := fs.vfs.Open(path)
	if err != nil {
		return
	}
	defer func() { _ = f.Close() }()
	_, err = f.Readdirnames(1)
	exist = !IsPathNotExist(err)
	return
}

func (fs *VFS) IsFile(path string) (result bool, err error) {
	if !fs.Exists(path) {
		return
	}
	fi, err := fs.Stat(path)
	if err != nil {
		return
	}
	result = IsRegularFile(fi)
	return
}

func IsRegularFile(fi os.FileInfo) bool {
	if fi == nil {
		return false
	}
	return fi.Mode().IsRegular()
}

func (fs *VFS) IsDir(path string) (result bool, err error) {
	if !fs.Exists(path) {
		return
	}
	fi, err := fs.Stat(path)
	if err != nil {
		return
	}
	result = IsDirectory(fi)
	return
}

func IsDirectory(fi os.FileInfo) bool {
	if fi == nil {
		return false
	}
	return fi.IsDir()
}

// IsEmpty checks whether a path is empty: a file without content or a directory
// without entries.
func (fs *VFS) IsEmpty(name string) (empty bool, err error) {
	if !fs.Exists(name) {
		empty = true
		return
	}
	isFile, err := fs.IsFile(name)
	if err != nil {
		return
	}
	if isFile {
		return fs.isFileEmpty(name)
	}
	return fs.isDirEmpty(name)
}

func (fs *VFS) isFileEmpty(name string) (empty bool, err error) {
	fi, err := fs.Stat(name)
	if err != nil {
		return
	}
	empty = fi.Size() == 0
	return
}

func (fs *VFS) isDirEmpty(name string) (empty bool, err error) {
	f, err := fs.vfs.Open(name)
	if err != nil {
		return
	}
	defer func() { _ = f.Close() }()
	_, err = f.Readdirnames(1)
	if commonerrors.Any(err, io.EOF) || IsPathNotExist(err) {
		err = nil
		empty = true
	}
	return
}

func (fs *VFS) MkDir(dir string) (err error) {
	return fs.MkDirAll(dir, 0755)
}

func (fs *VFS) MkDirAll(dir string, perm os.FileMode) (err error) {
	if dir == "" {
		return commonerrors.New(commonerrors.ErrUndefined, "missing path")
	}
	if fs.Exists(dir) {
		return
	}
	err = fs.vfs.MkdirAll(dir, perm)
	// The directory was maybe created by a different process/thread.
	if err != nil && fs.Exists(dir) {
		err = nil
	}
	return
}

// CleanDir removes all the files in a directory (equivalent to rm -rf .../*).
func (fs *VFS) CleanDir(dir string) (err error) {
	if dir == "" || !fs.Exists(dir) {
		return
	}
	empty, err := fs.IsEmpty(dir)
	if empty || err != nil {
		return
	}
	files, err := fs.Ls(dir)
	if err != nil {
		return
	}
	for _, f := range files {
		err = fs.Rm(filepath.Join(dir, f))
		if err != nil {
			return
		}
	}
	return
}

// Rm removes a directory or file (equivalent to rm -r).
func (fs *VFS) Rm(dir string) (err error) {
	if dir == "" || !fs.Exists(dir) {
		return
	}
	isDir, err := fs.IsDir(dir)
	if err != nil {
		return
	}
	if isDir {
		err = fs.CleanDir(dir)
		if err != nil {
			return
		}
	}
	return fs.vfs.Remove(dir)
}

func (fs *VFS) Ls(dir string) (names []string, err error) {
	if isDir, subErr := fs.IsDir(dir); !isDir || subErr != nil {
		err = commonerrors.Newf(commonerrors.ErrInvalid, "path [%v] is not a directory", dir)
		return
	}
	f, err := fs.GenericOpen(dir)
	if err != nil {
		return
	}
	names, err = f.Readdirnames(-1)
	_ = f.Close()
	return
}

// Walk walks the file tree rooted at root, calling fn for each file or directory in
// the tree, including root.
func (fs *VFS) Walk(root string, fn filepath.WalkFunc) error {
	info, err := fs.Lstat(root)
	if err != nil {
		err = fn(root, nil, err)
	} else {
		err = fs.walk(root, info, fn)
	}
	if commonerrors.Any(err, filepath.SkipDir) {
		return nil
	}
	return err
}

// walk recursively descends path, calling fn.
func (fs *VFS) walk(path string, info os.FileInfo, fn filepath.WalkFunc) error {
	if err := fn(path, info, nil); err != nil || !info.IsDir() {
		if commonerrors.Any(err, filepath.SkipDir) && info.IsDir() {
			err = nil
		}
		return err
	}
	items, err := fs.Ls(path)
	if err != nil {
		err = fn(path, info, err)
		if err != nil {
			return err
		}
	}
	for _, name := range items {
		filename := filepath.Join(path, name)
		fileInfo, err := fs.Lstat(filename)
		if err != nil {
			if err := fn(filename, fileInfo, err); err != nil && !commonerrors.Any(err, filepath.SkipDir) {
				return err
			}
		} else {
			err = fs.walk(filename, fileInfo, fn)
			if err != nil {
				if !fileInfo.IsDir() || !commonerrors.Any(err, filepath.SkipDir) {
					return err
				}
			}
		}
	}
	return nil
}

func (fs *VFS) ListDirTree(dirPath string, list *[]string) error {
	if list == nil {
		return commonerrors.New(commonerrors.ErrUndefined, "uninitialised input variable")
	}
	elements, err := fs.Ls(dirPath)
	if err != nil {
		return err
	}
	for _, elem := range elements {
		path := filepath.Join(dirPath, elem)
		*list = append(*list, path)
		if isDir, _ := fs.IsDir(path); isDir {
			err = fs.ListDirTree(path, list)
			if err != nil {
				return err
			}
		}
	}
	return nil
}

func (fs *VFS) ReadFile(filename string) (content []byte, err error) {
	f, err := fs.GenericOpen(filename)
	if err != nil {
		return
	}
	defer func() { _ = f.Close() }()

	var bufferCapacity int64 = bytes.MinRead
	if fi, subErr := f.Stat(); subErr == nil {
		// Don't preallocate a huge buffer, just in case.
		if size := fi.Size(); size < 1e9 {
			bufferCapacity += size
		}
	}
	return safeio.ReadAtMost(context.Background(), f, -1, bufferCapacity)
}

func (fs *VFS) WriteFile(filename string, data []byte, perm os.FileMode) (err error) {
	f, err := fs.OpenFile(filename, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, perm)
	if err != nil {
		return
	}
	defer func() { _ = f.Close() }()
	n, err := f.Write(data)
	if err != nil {
		return
	}
	if n < len(data) {
		err = io.ErrShortWrite
		return
	}
	err = f.Close()
	return
}

func (fs *VFS) GetFileSize(filename string) (size int64, err error) {
	info, err := fs.Stat(filename)
	if err != nil {
		return
	}
	size = info.Size()
	return
}

func IsPathNotExist(err error) bool {
	if err == nil {
		return false
	}
	return os.IsNotExist(err) || commonerrors.Any(err, ErrPathNotExist, commonerrors.ErrNotFound)
}
