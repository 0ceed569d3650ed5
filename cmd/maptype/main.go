package main

import (
	"fmt"
	"os"
)

const version = "0.1.0-dev"

func main() {
	os.Exit(run(os.Args[1:]))
}

type cliOptions struct {
	inputPath     string
	configPath    string
	followImports bool
	noHeader      bool
	dumpTypes     bool
}

func run(args []string) int {
	var opts cliOptions

	for i := 0; i < len(args); i++ {
		switch arg := args[i]; arg {
		case "--version", "-v":
			fmt.Println("maptype", version)
			return 0
		case "--help", "-h":
			printUsage()
			return 0
		case "--config":
			i++
			if i >= len(args) {
				fmt.Fprintln(os.Stderr, "error: --config requires a path")
				return 1
			}
			opts.configPath = args[i]
		case "--follow-imports":
			opts.followImports = true
		case "--no-header":
			opts.noHeader = true
		case "--dump-types":
			opts.dumpTypes = true
		default:
			if len(arg) > 0 && arg[0] == '-' && arg != "-" {
				fmt.Fprintf(os.Stderr, "unknown flag: %s\n", arg)
				printUsage()
				return 1
			}
			if opts.inputPath != "" {
				fmt.Fprintln(os.Stderr, "error: more than one input file given")
				return 1
			}
			opts.inputPath = arg
		}
	}

	return runGenerate(opts)
}

func printUsage() {
	fmt.Println("maptype - generate io-ts validators from TypeScript type declarations")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  maptype [flags] <file.ts>")
	fmt.Println("  maptype [flags] -            Read source from stdin")
	fmt.Println()
	fmt.Println("Flags:")
	fmt.Println("  --config <path>        Path to maptype.config.json")
	fmt.Println("  --follow-imports       Also visit declarations from imported files")
	fmt.Println("  --no-header            Omit the io-ts import header")
	fmt.Println("  --dump-types           Dump classified type trees as JSON (debug)")
	fmt.Println("  --version, -v          Print version and exit")
	fmt.Println("  --help, -h             Print this help message")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  maptype types.ts")
	fmt.Println("  maptype --follow-imports --no-header types.ts")
	fmt.Println("  cat types.ts | maptype -")
	fmt.Println()
}
