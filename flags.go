package main

import (
	"flag"
	"fmt"
	"os"
)

const help = `Usage: ccinput [flags] input.toml

The input file describes one calculation:

    [calculation]
    type = "Constrained Optimisation"
    file = "ethanol.xyz"
    charge = 0
    multiplicity = 1
    solvent = "water"
    solvation_model = "gbsa"
    specifications = "--o vtight --acc 0.2"
    constraints = "Scan_9_1.4_10/1_2;"

The geometry is read from the xyz file named by "file", resolved
relative to the input file. The assembled command line is printed to
stdout; for the constrained calculation types, the option file the
command references is written next to the geometry.
Flags:
`

var (
	dry     = flag.Bool("n", false, "print the option file instead of writing it")
	version = flag.Bool("version", false, "print the version and exit")
)

// ParseFlags parses command line flags and returns a slice of the
// remaining arguments
func ParseFlags() []string {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), help)
		flag.PrintDefaults()
	}
	flag.Parse()
	if *version {
		fmt.Printf("ccinput version: %s\n", VERSION)
		os.Exit(0)
	}
	return flag.Args()
}
