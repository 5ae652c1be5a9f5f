package main

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/rgonek/docx-latex-converter/docx"
	"github.com/rgonek/docx-latex-converter/omml"
)

const (
	presetDefault = "default"
	presetStrict  = "strict"
	presetPlain   = "plain"
)

func presetConfig(preset string) (docx.Config, error) {
	switch strings.ToLower(strings.TrimSpace(preset)) {
	case "", presetDefault:
		return docx.Config{}, nil
	case presetStrict:
		return docx.Config{
			Math: omml.Config{
				UnknownElements: omml.UnknownError,
			},
		}, nil
	case presetPlain:
		return docx.Config{
			Math: omml.Config{
				MatrixEnvironment: "matrix",
			},
		}, nil
	default:
		return docx.Config{}, fmt.Errorf("unknown preset %q (allowed: default, strict, plain)", preset)
	}
}

// fileConfig is the YAML config file schema. It covers everything the flags
// cover, plus custom symbol mappings merged over the builtin table.
type fileConfig struct {
	ImagesDir         string            `yaml:"imagesDir"`
	Strict            bool              `yaml:"strict"`
	MaxDepth          int               `yaml:"maxDepth"`
	MatrixEnvironment string            `yaml:"matrixEnvironment"`
	Symbols           map[string]string `yaml:"symbols"`
}

func loadFileConfig(path string) (fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return fileConfig{}, fmt.Errorf("failed to read config file: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fileConfig{}, fmt.Errorf("failed to parse config file: %w", err)
	}
	return fc, nil
}

func applyFileConfig(cfg docx.Config, fc fileConfig) (docx.Config, error) {
	if fc.ImagesDir != "" {
		cfg.ImagesDir = fc.ImagesDir
	}
	if fc.Strict {
		cfg.Math.UnknownElements = omml.UnknownError
	}
	if fc.MaxDepth != 0 {
		cfg.Math.MaxDepth = fc.MaxDepth
	}
	if fc.MatrixEnvironment != "" {
		cfg.Math.MatrixEnvironment = fc.MatrixEnvironment
	}

	for key, macro := range fc.Symbols {
		r, size := utf8.DecodeRuneInString(key)
		if r == utf8.RuneError || size != len(key) {
			return docx.Config{}, fmt.Errorf("symbols key %q must be a single character", key)
		}
		if cfg.Math.Symbols == nil {
			cfg.Math.Symbols = make(map[rune]string, len(fc.Symbols))
		}
		cfg.Math.Symbols[r] = macro
	}
	return cfg, nil
}

// resolveConfig layers the preset, the optional config file, and the explicit
// flags, in that order of increasing priority.
func resolveConfig(preset, configPath string, strict bool, maxDepth int, imagesDir, matrixEnv string) (docx.Config, error) {
	cfg, err := presetConfig(preset)
	if err != nil {
		return docx.Config{}, err
	}

	if configPath != "" {
		fc, err := loadFileConfig(configPath)
		if err != nil {
			return docx.Config{}, err
		}
		cfg, err = applyFileConfig(cfg, fc)
		if err != nil {
			return docx.Config{}, err
		}
	}

	if strict {
		cfg.Math.UnknownElements = omml.UnknownError
	}
	if maxDepth != 0 {
		cfg.Math.MaxDepth = maxDepth
	}
	if imagesDir != "" {
		cfg.ImagesDir = imagesDir
	}
	if matrixEnv != "" {
		cfg.Math.MatrixEnvironment = matrixEnv
	}

	return cfg, nil
}
