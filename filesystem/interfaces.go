/*
 * Copyright (C) 2023-2025 Evidence Lab Ltd or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package filesystem

import (
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

//go:generate go tool mockgen -destination=../mocks/mock_$GOPACKAGE.go -package=mocks github.com/evidencelab/hashcalc/$GOPACKAGE File,FS

type File interface {
	afero.File
	Fd() uintptr
}

type FS interface {
	// GenericOpen opens a file for reading. It opens the named file with specified flag (O_RDONLY etc.).
	// See os.Open()
	GenericOpen(name string) (File, error)
	// OpenFile opens a file using the given flags and the given mode.
	// OpenFile is the generalized open call
	// most users will use GenericOpen or CreateFile instead.
	// See os.OpenFile
	OpenFile(name string, flag int, perm os.FileMode) (File, error)
	// Creates a file.
	CreateFile(name string) (File, error)
	Stat(name string) (os.FileInfo, error)
	Lstat(name string) (os.FileInfo, error)
	// Gets the path separator character.
	PathSeparator() rune
	// Gets the type of the file system.
	GetType() FilesystemType
	// Checks if a file or folder exists
	Exists(path string) bool
	// States whether it is a file or not
	IsFile(path string) (result bool, err error)
	// States whether it is a directory or not
	IsDir(path string) (result bool, err error)
	// Checks whether a path is empty or not
	IsEmpty(name string) (empty bool, err error)
	// Makes directory (equivalent to mkdir -p)
	MkDir(dir string) (err error)
	// Makes directory (equivalent to mkdir -p)
	MkDirAll(dir string, perm os.FileMode) (err error)
	// Removes all the files in a directory (equivalent rm -rf .../*)
	CleanDir(dir string) (err error)
	// Removes directory (equivalent to rm -r)
	Rm(dir string) (err error)
	// Walks the file tree rooted at root, calling fn for each file or
	// directory in the tree, including root. See https://golang.org/pkg/path/filepath/#WalkDir
	Walk(root string, fn filepath.WalkFunc) error
	// Lists all files and directory (equivalent to ls)
	Ls(dir string) (files []string, err error)
	// Lists the content of directory recursively
	ListDirTree(dirPath string, list *[]string) error
	// Creates a temp directory
	TempDir(dir string, prefix string) (name string, err error)
	// Creates a temp directory in temp directory.
	TempDirInTempDir(prefix string) (name string, err error)
	// Creates a temp file
	TempFile(dir string, pattern string) (f File, err error)
	// Creates a temp file in temp directory.
	TempFileInTempDir(pattern string) (f File, err error)
	// Gets temp directory.
	TempDirectory() string
	// Reads a file and return its content.
	ReadFile(filename string) ([]byte, error)
	// Writes data to a file named by filename.
	// If the file does not exist, WriteFile creates it with permissions perm;
	// otherwise WriteFile truncates it before writing.
	WriteFile(filename string, data []byte, perm os.FileMode) error
	// Gets file size
	GetFileSize(filename string) (int64, error)
}
