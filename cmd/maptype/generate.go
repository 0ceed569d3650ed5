package main

import (
	"fmt"
	"io"
	"os"

	"github.com/juusaw/maptype"
	"github.com/juusaw/maptype/iots"
)

// runGenerate executes one traversal over the input source and prints the
// generated validator declarations (or the JSON type dump) to stdout.
// Warnings go to stderr; any fatal error aborts with a nonzero exit.
func runGenerate(opts cliOptions) int {
	source, err := readSource(opts.inputPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}

	cfg, err := buildConfig(opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}

	if opts.dumpTypes {
		return runDumpTypes(source, cfg)
	}

	bindings, diags, err := maptype.ProcessTypes(iots.Validators(), source, cfg)
	if out := diags.FormatAll(); out != "" {
		fmt.Fprint(os.Stderr, out)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		return 1
	}

	if cfg.IncludeHeader && len(bindings) > 0 {
		fmt.Println(iots.Header)
		fmt.Println()
	}
	for _, b := range bindings {
		fmt.Printf("const %s = %s\n", b.Name, b.Result)
	}
	return 0
}

// buildConfig loads the config file when given and applies CLI overrides.
func buildConfig(opts cliOptions) (*maptype.Config, error) {
	var cfg *maptype.Config
	if opts.configPath != "" {
		loaded, err := maptype.LoadConfig(opts.configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	} else {
		c := maptype.DefaultConfig()
		cfg = &c
	}

	if opts.followImports {
		cfg.FollowImports = true
	}
	if opts.noHeader {
		cfg.IncludeHeader = false
	}
	return cfg, nil
}

func readSource(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("no input file given (use - for stdin)")
	}
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading %q: %w", path, err)
	}
	return string(data), nil
}
