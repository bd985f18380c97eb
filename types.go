package main

import (
	"errors"
	"fmt"
	"strings"
)

// CalcType is a type for the supported kinds of calculation
type CalcType int

// Calculation types. To add a new one, add it here and to
// calcTypeNames below, then map it to an executable and its default
// arguments in xtb.go.
const (
	Opt CalcType = iota
	ConstrOpt
	Freq
	SP
	UVVis
	OptFreq
	ConfSearch
	ConstrConfSearch
	NumCalcTypes
)

// calcTypeNames holds the request-file names of the calculation
// types, indexed by CalcType
var calcTypeNames = []string{
	"Geometrical Optimisation",
	"Constrained Optimisation",
	"Frequency Calculation",
	"Single-Point Energy",
	"UV-Vis Calculation",
	"Opt+Freq",
	"Conformational Search",
	"Constrained Conformational Search",
}

func (c CalcType) String() string {
	return calcTypeNames[c]
}

// IsConfSearch reports whether c runs a conformational search
func (c CalcType) IsConfSearch() bool {
	return c == ConfSearch || c == ConstrConfSearch
}

// ParseCalcType maps a request-file name, case-insensitively, to its
// CalcType
func ParseCalcType(name string) (CalcType, error) {
	trim := strings.ToLower(strings.TrimSpace(name))
	for c := CalcType(0); c < NumCalcTypes; c++ {
		if trim == strings.ToLower(calcTypeNames[c]) {
			return c, nil
		}
	}
	switch trim {
	case "opt":
		return Opt, nil
	case "freq":
		return Freq, nil
	case "sp":
		return SP, nil
	case "optfreq", "opt+freq":
		return OptFreq, nil
	}
	return 0, paramErrorf("unknown calculation type: %s", name)
}

// A Calculation is one fully specified request, immutable once built
type Calculation struct {
	Type           CalcType
	Charge         int
	Multiplicity   int
	Solvent        string
	SolvationModel string
	Specifications string
	Constraints    []Constraint
	XYZ            string
	File           string
}

// ErrInvalidParameter is the failure kind for every rejected request;
// match it with errors.Is
var ErrInvalidParameter = errors.New("invalid parameter")

// paramErrorf wraps ErrInvalidParameter with a descriptive message
func paramErrorf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format,
		append([]interface{}{ErrInvalidParameter}, args...)...)
}
