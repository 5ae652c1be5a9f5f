package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rgonek/docx-latex-converter/docx"
)

func main() {
	preset := flag.String("preset", presetDefault, "Preset: default|strict|plain")
	configPath := flag.String("config", "", "YAML config file (policies and custom symbol mappings)")
	imagesDir := flag.String("images-dir", "", "Directory to extract images (default: images)")
	strict := flag.Bool("strict", false, "Return error on unknown math elements")
	maxDepth := flag.Int("max-depth", 0, "Maximum formula nesting depth (0 uses the default)")
	matrixEnv := flag.String("matrix-env", "", "Matrix environment (default: pmatrix)")
	quiet := flag.Bool("quiet", false, "Suppress conversion warnings")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: d2l [options] <input.docx> <output.tex>\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	args := flag.Args()
	if len(args) < 2 {
		flag.Usage()
		os.Exit(1)
	}
	inputFile, outputFile := args[0], args[1]

	cfg, err := resolveConfig(*preset, *configPath, *strict, *maxDepth, *imagesDir, *matrixEnv)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid config: %v\n", err)
		os.Exit(1)
	}

	conv, err := docx.New(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid config: %v\n", err)
		os.Exit(1)
	}

	result, err := conv.ConvertFile(inputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error converting file: %v\n", err)
		os.Exit(1)
	}

	if err := os.WriteFile(outputFile, []byte(result.LaTeX), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
		os.Exit(1)
	}

	if !*quiet {
		for _, w := range result.Warnings {
			if w.Element != "" {
				fmt.Fprintf(os.Stderr, "warning: [%s] %s: %s\n", w.Type, w.Element, w.Message)
			} else {
				fmt.Fprintf(os.Stderr, "warning: [%s] %s\n", w.Type, w.Message)
			}
		}
	}

	fmt.Printf("Successfully converted %q to %q\n", inputFile, outputFile)
	if len(result.Images) > 0 {
		fmt.Printf("Extracted %d images\n", len(result.Images))
	}
}
