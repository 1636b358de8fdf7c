package models

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Parser is the contract for turning statement file bytes into records.
type Parser interface {
	ProcessBytes(data []byte, filename string) (*ParsedStatement, error)
}

// Manifest lists statement files to process in one batch run.
type Manifest struct {
	OutputDir  string      `yaml:"output_dir"`
	Statements []Statement `yaml:"statements"`
}

// Statement is a single statement file entry in the manifest.
type Statement struct {
	FilePath string `yaml:"file"`
}

// File returns the absolute path to the statement file, expanding ~.
func (s *Statement) File() (string, error) {
	if strings.HasPrefix(s.FilePath, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, s.FilePath[2:]), nil
	}
	return s.FilePath, nil
}

// Parse reads the statement file and runs the provided parser over it.
func (s *Statement) Parse(p Parser) (*ParsedStatement, error) {
	filePath, err := s.File()
	if err != nil {
		return nil, err
	}

	fileBytes, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read statement file %s: %w", filePath, err)
	}

	parsed, err := p.ProcessBytes(fileBytes, filepath.Base(filePath))
	if err != nil {
		return nil, fmt.Errorf("failed to process statement file %s: %w", filePath, err)
	}

	return parsed, nil
}

// FromFile reads a manifest from a YAML file.
func FromFile(filePath string) (*Manifest, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}

	var manifest Manifest
	err = yaml.Unmarshal(data, &manifest)
	if err != nil {
		return nil, err
	}

	if len(manifest.Statements) == 0 {
		return nil, fmt.Errorf("manifest has no statements")
	}
	return &manifest, nil
}
