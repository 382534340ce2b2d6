/*
 * Copyright (C) 2023-2025 Evidence Lab Ltd or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package filesystem provides the file system abstraction content items are read
// from, so that the same hashing code serves real evidence trees and in-memory
// test fixtures alike.
package filesystem

import (
	"os"

	"github.com/spf13/afero"

	"github.com/evidencelab/hashcalc/commonerrors"
)

type FilesystemType int

const (
	StandardFS FilesystemType = iota
	InMemoryFS
)

var (
	FileSystemTypes  = []FilesystemType{StandardFS, InMemoryFS}
	globalFileSystem = NewFs(StandardFS)
)

func NewInMemoryFileSystem() FS {
	return NewVirtualFileSystem(afero.NewMemMapFs(), InMemoryFS)
}

func NewStandardFileSystem() FS {
	return NewVirtualFileSystem(afero.NewOsFs(), StandardFS)
}

func NewFs(fsType FilesystemType) FS {
	switch fsType {
	case StandardFS:
		return NewStandardFileSystem()
	case InMemoryFS:
		return NewInMemoryFileSystem()
	}
	return NewStandardFileSystem()
}

func GetGlobalFileSystem() FS {
	return globalFileSystem
}

// ConvertFileSystemError converts file system errors into common errors.
func ConvertFileSystemError(err error) error {
	if err == nil {
		return nil
	}
	if commonerrors.Any(err, os.ErrExist) || commonerrors.CorrespondTo(err, "file exists", "file already exists") {
		return commonerrors.ErrExists
	}
	if commonerrors.Any(err, os.ErrNotExist) || commonerrors.CorrespondTo(err, "file does not exist") {
		return commonerrors.ErrNotFound
	}
	return err
}
