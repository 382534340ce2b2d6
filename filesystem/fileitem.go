/*
 * Copyright (C) 2023-2025 Evidence Lab Ltd or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package filesystem

import (
	"github.com/evidencelab/hashcalc/commonerrors"
	"github.com/evidencelab/hashcalc/digest"
)

// FileItem exposes a file of a file system as a content item the hashing module can
// process. The digests recorded by the module are kept on the item and available
// through Hashes once the run is over.
//
// A FileItem is not thread-safe: it is meant to be handled by one module run at a
// time, as the calc.ContentItem contract states.
type FileItem struct {
	fs      FS
	path    string
	file    File
	digests map[digest.Algorithm]string
}

// NewFileItem returns an item for the file at path on fs. The file does not have to
// exist yet; existence is checked when the item is processed.
func NewFileItem(fs FS, path string) (*FileItem, error) {
	if fs == nil {
		return nil, commonerrors.New(commonerrors.ErrUndefined, "missing file system")
	}
	if path == "" {
		return nil, commonerrors.New(commonerrors.ErrUndefined, "missing file path")
	}
	return &FileItem{
		fs:      fs,
		path:    path,
		digests: make(map[digest.Algorithm]string),
	}, nil
}

func (i *FileItem) Path() string {
	return i.path
}

// Exists states whether the item points at a regular file. Directories and special
// files have no hashable content.
func (i *FileItem) Exists() bool {
	isFile, err := i.fs.IsFile(i.path)
	return err == nil && isFile
}

func (i *FileItem) Open() error {
	file, err := i.fs.GenericOpen(i.path)
	if err != nil {
		return err
	}
	i.file = file
	return nil
}

func (i *FileItem) Read(p []byte) (int, error) {
	if i.file == nil {
		return 0, commonerrors.Newf(commonerrors.ErrCondition, "file [%v] is not open", i.path)
	}
	return i.file.Read(p)
}

func (i *FileItem) Close() error {
	if i.file == nil {
		return nil
	}
	err := i.file.Close()
	i.file = nil
	return err
}

func (i *FileItem) SetHash(algo digest.Algorithm, hexDigest string) error {
	if algo == "" {
		return commonerrors.New(commonerrors.ErrUndefined, "missing algorithm")
	}
	if hexDigest == "" {
		return commonerrors.Newf(commonerrors.ErrUndefined, "missing %v digest for [%v]", algo, i.path)
	}
	i.digests[algo] = hexDigest
	return nil
}

// Hashes returns a copy of the digests recorded on the item.
func (i *FileItem) Hashes() map[digest.Algorithm]string {
	hashes := make(map[digest.Algorithm]string, len(i.digests))
	for algo, hexDigest := range i.digests {
		hashes[algo] = hexDigest
	}
	return hashes
}

// Size returns the size in bytes of the underlying file.
func (i *FileItem) Size() (int64, error) {
	return i.fs.GetFileSize(i.path)
}
