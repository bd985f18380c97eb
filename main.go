/*
ccinput translates a calculation description into a ready-to-run xtb,
stda, or crest command line and, for constrained calculations, the
option file encoding the geometric constraints, scan ranges, and
metadynamics atom sets.
*/
package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
)

// VERSION is set at build time
var VERSION = "dev"

// optionFileName is the fixed name the generated commands reference
// for constraint input
const optionFileName = "input"

func main() {
	log.SetFlags(0)
	log.SetPrefix("ccinput: ")
	args := ParseFlags()
	if len(args) < 1 {
		log.Fatal("no input file supplied, run with -h for usage")
	}
	req, err := LoadRequest(args[0])
	if err != nil {
		log.Fatalf("error %v reading %q", err, args[0])
	}
	// the geometry file is named relative to the request file
	dir := filepath.Dir(args[0])
	geomfile := filepath.Join(dir, req.Calculation.File)
	contents, err := os.ReadFile(geomfile)
	if err != nil {
		log.Fatalf("error %v reading geometry %q", err, geomfile)
	}
	calc, err := req.Build(string(contents))
	if err != nil {
		log.Fatal(err)
	}
	x, err := NewXtbCalculation(calc)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(x.Command)
	if x.OptionFile == "" {
		return
	}
	if *dry {
		fmt.Print(x.OptionFile)
		return
	}
	outfile := filepath.Join(dir, optionFileName)
	if err := os.WriteFile(outfile, []byte(x.OptionFile), 0644); err != nil {
		log.Fatalf("error %v writing %q", err, outfile)
	}
}
