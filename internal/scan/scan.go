// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

// Package scan finds simulator report files in a results directory tree and
// groups them by the sub-directory that holds them.
package scan

import (
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/pkg/errors"
)

// DefaultExtension identifies report files when no other extension is configured.
const DefaultExtension = ".txt"

// GroupSeparator replaces path separators in group names.
const GroupSeparator = "_"

// ErrRootNotFound is returned when the results root is missing or not a directory.
var ErrRootNotFound = errors.New("results directory not found")

// Group is a directory below the root that directly contains report files.
type Group struct {
	Name  string   // relative path from the root, separators replaced
	Dir   string   // absolute or root-relative path of the directory
	Files []string // report file paths, in lexical order of file name
}

// Walk traverses root and returns one Group per directory that directly holds
// at least one file with an eligible extension. The root itself is never a
// group. Groups are returned in traversal order, i.e., lexical depth-first.
func Walk(root string, extensions []string) ([]Group, error) {
	info, err := os.Stat(root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(ErrRootNotFound, "%s", root)
		}
		return nil, errors.Wrapf(err, "failed to access %s", root)
	}
	if !info.IsDir() {
		return nil, errors.Wrapf(ErrRootNotFound, "%s is not a directory", root)
	}
	// walk the target of a symlinked root
	if resolved, err := filepath.EvalSymlinks(root); err == nil {
		root = resolved
	}
	if len(extensions) == 0 {
		extensions = []string{DefaultExtension}
	}
	eligible := mapset.NewThreadUnsafeSet(extensions...)

	var groups []Group
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root {
				return err
			}
			slog.Warn("skipping unreadable entry", slog.String("path", path), slog.String("error", err.Error()))
			return nil
		}
		if !d.IsDir() || path == root {
			return nil
		}
		files, err := reportFiles(path, eligible)
		if err != nil {
			slog.Warn("skipping unreadable directory", slog.String("path", path), slog.String("error", err.Error()))
			return fs.SkipDir
		}
		if len(files) == 0 {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		groups = append(groups, Group{
			Name:  GroupName(rel),
			Dir:   path,
			Files: files,
		})
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to walk %s", root)
	}
	return groups, nil
}

// reportFiles returns the eligible files directly inside dir, sorted by name.
func reportFiles(dir string, eligible mapset.Set[string]) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var files []string
	for _, entry := range entries {
		if entry.IsDir() || !hasExtension(entry.Name(), eligible) {
			continue
		}
		files = append(files, filepath.Join(dir, entry.Name()))
	}
	slices.Sort(files)
	return files, nil
}

func hasExtension(name string, eligible mapset.Set[string]) bool {
	found := false
	eligible.Each(func(ext string) bool {
		if strings.HasSuffix(name, ext) {
			found = true
			return true
		}
		return false
	})
	return found
}

// GroupName turns a root-relative directory path into a group name.
func GroupName(rel string) string {
	rel = filepath.ToSlash(filepath.Clean(rel))
	return strings.ReplaceAll(rel, "/", GroupSeparator)
}
