// Copyright (C) 2021-2025 Intel Corporation
// SPDX-License-Identifier: BSD-3-Clause

// Package config loads collection settings from a YAML file and merges them
// with command line values.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"simstat/internal/report"
	"simstat/internal/scan"
	"simstat/internal/util"

	"gopkg.in/yaml.v2"
)

// Collection holds the settings of one collection run.
type Collection struct {
	Input       string   `yaml:"input"`        // results directory to scan
	Output      string   `yaml:"output"`       // report file to write
	Format      string   `yaml:"format"`       // report format, see report.FormatOptions
	Extensions  []string `yaml:"extensions"`   // report file extensions, e.g., .txt
	MetricsFile string   `yaml:"metrics_file"` // optional Prometheus textfile with run counters
}

// Load reads a YAML settings file. Relative paths in the file are resolved
// against the file's directory.
func Load(path string) (Collection, error) {
	var c Collection
	content, err := os.ReadFile(path) // #nosec G304
	if err != nil {
		return c, fmt.Errorf("failed to read config file: %w", err)
	}
	if err = yaml.UnmarshalStrict(content, &c); err != nil {
		return c, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	base := filepath.Dir(path)
	c.Input = resolve(base, c.Input)
	c.Output = resolve(base, c.Output)
	c.MetricsFile = resolve(base, c.MetricsFile)
	return c, nil
}

func resolve(base, path string) string {
	if path == "" {
		return ""
	}
	path = util.ExpandUser(path)
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(base, path)
}

// Merge returns c with every non-empty field of override applied on top.
func (c Collection) Merge(override Collection) Collection {
	if override.Input != "" {
		c.Input = override.Input
	}
	if override.Output != "" {
		c.Output = override.Output
	}
	if override.Format != "" {
		c.Format = override.Format
	}
	if len(override.Extensions) > 0 {
		c.Extensions = override.Extensions
	}
	if override.MetricsFile != "" {
		c.MetricsFile = override.MetricsFile
	}
	return c
}

// Normalize fills defaults, makes paths absolute and checks the settings.
func (c Collection) Normalize() (Collection, error) {
	if c.Input == "" {
		return c, fmt.Errorf("input directory is required")
	}
	if c.Output == "" {
		return c, fmt.Errorf("output file is required")
	}
	if c.Format == "" {
		c.Format = report.FormatXlsx
	}
	if !slices.Contains(report.FormatOptions, c.Format) {
		return c, fmt.Errorf("format options are: %s", strings.Join(report.FormatOptions, ", "))
	}
	if len(c.Extensions) == 0 {
		c.Extensions = []string{scan.DefaultExtension}
	}
	extensions := make([]string, 0, len(c.Extensions))
	for _, ext := range c.Extensions {
		ext = strings.TrimSpace(ext)
		if ext == "" {
			return c, fmt.Errorf("extensions cannot be empty")
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		extensions = append(extensions, ext)
	}
	c.Extensions = extensions
	var err error
	if c.Input, err = util.AbsPath(c.Input); err != nil {
		return c, fmt.Errorf("failed to expand input path: %w", err)
	}
	if c.Output, err = util.AbsPath(c.Output); err != nil {
		return c, fmt.Errorf("failed to expand output path: %w", err)
	}
	if c.MetricsFile != "" {
		if c.MetricsFile, err = util.AbsPath(c.MetricsFile); err != nil {
			return c, fmt.Errorf("failed to expand metrics file path: %w", err)
		}
	}
	return c, nil
}
