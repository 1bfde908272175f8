package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"puzshelf/internal/puz"
)

type options struct {
	grid       bool
	clues      bool
	extensions bool
	json       bool
	yaml       bool
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	var opts options

	flagSet := pflag.NewFlagSet("puzinfo", pflag.ContinueOnError)
	flagSet.BoolVarP(&opts.grid, "grid", "g", false, "print the solution and fill grids")
	flagSet.BoolVarP(&opts.clues, "clues", "c", false, "print numbered clues")
	flagSet.BoolVarP(&opts.extensions, "extensions", "e", false, "print extension blocks")
	flagSet.BoolVar(&opts.json, "json", false, "print everything as JSON")
	flagSet.BoolVar(&opts.yaml, "yaml", false, "print everything as YAML")
	flagSet.BoolP("help", "h", false, "show help")

	if err := flagSet.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			printHelp(flagSet)
			return nil
		}
		return err
	}

	if help, _ := flagSet.GetBool("help"); help {
		printHelp(flagSet)
		return nil
	}

	if opts.json && opts.yaml {
		return fmt.Errorf("--json and --yaml are mutually exclusive")
	}

	files := flagSet.Args()
	if len(files) == 0 {
		printHelp(flagSet)
		return fmt.Errorf("no puzzle files given")
	}

	for i, path := range files {
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		p, err := puz.Decode(data)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}

		if opts.json || opts.yaml {
			write := writeJSON
			if opts.yaml {
				write = writeYAML
			}
			if err := write(os.Stdout, p); err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			continue
		}

		if i > 0 {
			fmt.Println()
		}
		if err := writeReport(os.Stdout, path, p, opts); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
	}
	return nil
}

func printHelp(flagSet *pflag.FlagSet) {
	fmt.Fprintf(os.Stderr, `puzinfo decodes Across Lite .puz files and prints what they contain.
Every checksum is verified before anything is printed.

Usage:
  puzinfo [flags] FILE...

Flags:
%s`, flagSet.FlagUsages())
}
