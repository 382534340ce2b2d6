/*
 * Copyright (C) 2023-2025 Evidence Lab Ltd or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package filesystem

import (
	"os"

	"github.com/spf13/afero"
)

const UnsetFileHandle = ^uint64(0)

type extendedFile struct {
	afero.File
}

func (f *extendedFile) Read(p []byte) (n int, err error) {
	n, err = f.File.Read(p)
	err = ConvertFileSystemError(err)
	return
}

func (f *extendedFile) ReadAt(p []byte, off int64) (n int, err error) {
	n, err = f.File.ReadAt(p, off)
	err = ConvertFileSystemError(err)
	return
}

func (f *extendedFile) Seek(offset int64, whence int) (n int64, err error) {
	n, err = f.File.Seek(offset, whence)
	err = ConvertFileSystemError(err)
	return
}

func (f *extendedFile) Write(p []byte) (n int, err error) {
	n, err = f.File.Write(p)
	err = ConvertFileSystemError(err)
	return
}

func (f *extendedFile) WriteAt(p []byte, off int64) (n int, err error) {
	n, err = f.File.WriteAt(p, off)
	err = ConvertFileSystemError(err)
	return
}

func (f *extendedFile) WriteString(s string) (n int, err error) {
	n, err = f.File.WriteString(s)
	err = ConvertFileSystemError(err)
	return
}

func (f *extendedFile) Readdir(count int) (i []os.FileInfo, err error) {
	i, err = f.File.Readdir(count)
	err = ConvertFileSystemError(err)
	return
}

func (f *extendedFile) Readdirnames(n int) (names []string, err error) {
	names, err = f.File.Readdirnames(n)
	err = ConvertFileSystemError(err)
	return
}

func (f *extendedFile) Stat() (i os.FileInfo, err error) {
	i, err = f.File.Stat()
	err = ConvertFileSystemError(err)
	return
}

func (f *extendedFile) Sync() error {
	return ConvertFileSystemError(f.File.Sync())
}

func (f *extendedFile) Truncate(size int64) error {
	return ConvertFileSystemError(f.File.Truncate(size))
}

func (f *extendedFile) Close() error {
	return ConvertFileSystemError(f.File.Close())
}

func (f *extendedFile) Fd() uintptr {
	if osFile, ok := f.File.(interface{ Fd() uintptr }); ok {
		return osFile.Fd()
	}
	return uintptr(UnsetFileHandle)
}

func convertFile(getFile func() (afero.File, error)) (f File, err error) {
	file, err := getFile()
	err = ConvertFileSystemError(err)
	if err != nil {
		return
	}
	f = &extendedFile{File: file}
	return
}
