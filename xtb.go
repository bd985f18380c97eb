package main

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/exp/slices"
)

// executables maps each calculation type to the program that runs it
var executables = map[CalcType]string{
	Opt:              "xtb",
	ConstrOpt:        "xtb",
	Freq:             "xtb",
	SP:               "xtb",
	UVVis:            "stda",
	OptFreq:          "xtb",
	ConfSearch:       "crest",
	ConstrConfSearch: "crest",
}

// An XtbCalculation translates one Calculation into the command line
// and, for the constrained types, the option-file text for xtb, stda,
// or crest
type XtbCalculation struct {
	calc    *Calculation
	program string
	state   *specState

	Command    string
	OptionFile string
}

// NewXtbCalculation runs the whole pipeline for calc: select the
// executable and default arguments, parse the specifications, encode
// the constraints, and assemble the command. Any validation failure
// aborts with a wrapped ErrInvalidParameter and no usable output.
func NewXtbCalculation(calc *Calculation) (*XtbCalculation, error) {
	x := &XtbCalculation{calc: calc, state: newSpecState(calc.Type)}
	defaults := x.handleCommand()
	if err := x.state.parse(defaults, calc.Specifications); err != nil {
		return nil, err
	}
	x.state.finalize()
	switch calc.Type {
	case ConstrConfSearch:
		x.handleConstraintsCrest()
	case ConstrOpt:
		x.handleConstraintsScan()
	}
	if err := x.handleParameters(); err != nil {
		return nil, err
	}
	x.createCommand()
	return x, nil
}

// handleCommand picks the executable and seeds the type-specific
// arguments, returning the default specification text to be parsed
// ahead of the user's
func (x *XtbCalculation) handleCommand() string {
	x.program = executables[x.calc.Type]
	st := x.state
	switch x.calc.Type {
	case Opt:
		st.args = append(st.args, argument{flag: "--opt", level: true})
		return "--opt tight "
	case OptFreq:
		st.args = append(st.args, argument{flag: "--ohess", level: true})
	case ConstrConfSearch:
		st.args = append(st.args, argument{flag: "-cinp", value: "input"})
	case ConstrOpt:
		st.args = append(st.args,
			argument{flag: "--opt", level: true},
			argument{flag: "--input", value: "input"})
	case Freq:
		st.args = append(st.args, argument{flag: "--hess"})
	}
	return ""
}

// handleConstraintsScan writes the $constrain section for a
// constrained optimization and, when any constraint is scanned, the
// $scan section with one "index: start, end, steps" line per scanned
// constraint, indexed 1-based in the original order. No constraints
// means no option file at all.
func (x *XtbCalculation) handleConstraintsScan() {
	if len(x.calc.Constraints) == 0 {
		return
	}
	var b strings.Builder
	fmt.Fprintf(&b, "$constrain\n")
	fmt.Fprintf(&b, "force constant=%s\n", formatFloat(x.state.forceConstant))
	hasScan := false
	for _, cmd := range x.calc.Constraints {
		b.WriteString(cmd.ToXtb())
		if cmd.Scan {
			hasScan = true
		}
	}
	if hasScan {
		fmt.Fprintf(&b, "$scan\n")
		for i, cmd := range x.calc.Constraints {
			if cmd.Scan {
				fmt.Fprintf(&b, "%d: %s, %s, %d\n", i+1,
					formatFloat(cmd.StartD), formatFloat(cmd.EndD), cmd.NumSteps)
			}
		}
	}
	x.OptionFile = b.String()
}

// handleConstraintsCrest writes the $constrain and $metadyn sections
// for a constrained conformational search. The constrained atoms are
// held near the reference geometry while the complement set is biased
// by the metadynamics.
func (x *XtbCalculation) handleConstraintsCrest() {
	// TODO derive the atom count from the parsed atoms instead of
	// the raw line count of the block
	numAtoms := len(strings.Split(x.calc.XYZ, "\n"))
	var b strings.Builder
	fmt.Fprintf(&b, "$constrain\n")
	fmt.Fprintf(&b, "force constant=%s\n", formatFloat(x.state.forceConstant))
	fmt.Fprintf(&b, "reference=%s\n", filepath.Base(x.calc.File))
	var constrained []int
	for _, cmd := range x.calc.Constraints {
		b.WriteString(cmd.ToXtb())
		constrained = append(constrained, cmd.Ids...)
	}
	fmt.Fprintf(&b, "atoms: %s\n", CompressIndices(constrained))
	var free []int
	for a := 1; a < numAtoms; a++ {
		if !slices.Contains(constrained, a) {
			free = append(free, a)
		}
	}
	fmt.Fprintf(&b, "$metadyn\n")
	fmt.Fprintf(&b, "atoms: %s\n", CompressIndices(free))
	x.OptionFile = b.String()
}

// handleParameters appends the solvation, charge, and spin arguments,
// which do not pass through the specification parser
func (x *XtbCalculation) handleParameters() error {
	st := x.state
	if x.calc.Solvent != "" {
		kw, err := GetSolvent(x.calc.Solvent, "xtb")
		if err != nil {
			return paramErrorf("invalid solvent")
		}
		switch x.calc.SolvationModel {
		case "gbsa":
			st.args = append(st.args, argument{flag: "-g", value: kw})
		case "alpb":
			st.args = append(st.args, argument{flag: "--alpb", value: kw})
		default:
			return paramErrorf("invalid solvation method for xtb: %s",
				x.calc.SolvationModel)
		}
	}
	if x.calc.Charge != 0 {
		st.args = append(st.args,
			argument{flag: "--chrg", value: strconv.Itoa(x.calc.Charge)})
	}
	if x.calc.Multiplicity != 1 {
		st.args = append(st.args,
			argument{flag: "--uhf", value: strconv.Itoa(x.calc.Multiplicity)})
	}
	return nil
}

// createCommand assembles the final command line from the executable,
// the base name of the geometry file, and the rendered arguments
func (x *XtbCalculation) createCommand() {
	x.Command = fmt.Sprintf("%s %s %s",
		x.program, filepath.Base(x.calc.File), x.state.render(x.program))
}
