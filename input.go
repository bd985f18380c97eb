package main

import (
	"os"

	"github.com/pelletier/go-toml"
)

// A Request mirrors the [calculation] table of a TOML input file
type Request struct {
	Calculation struct {
		Type           string `toml:"type"`
		Charge         int    `toml:"charge"`
		Multiplicity   int    `toml:"multiplicity"`
		Solvent        string `toml:"solvent"`
		SolvationModel string `toml:"solvation_model"`
		Specifications string `toml:"specifications"`
		Constraints    string `toml:"constraints"`
		File           string `toml:"file"`
	} `toml:"calculation"`
}

// LoadRequest reads and parses a TOML request file
func LoadRequest(filename string) (*Request, error) {
	byts, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	var req Request
	if err := toml.Unmarshal(byts, &req); err != nil {
		return nil, err
	}
	return &req, nil
}

// Build validates r and assembles the Calculation it describes, with
// contents as the text of the geometry file it names. An omitted
// multiplicity means a closed shell and an omitted solvation model
// defaults to gbsa.
func (r *Request) Build(contents string) (*Calculation, error) {
	c := &Calculation{
		Charge:         r.Calculation.Charge,
		Multiplicity:   r.Calculation.Multiplicity,
		Solvent:        r.Calculation.Solvent,
		SolvationModel: r.Calculation.SolvationModel,
		Specifications: r.Calculation.Specifications,
		XYZ:            xyzBlock(contents),
		File:           r.Calculation.File,
	}
	t, err := ParseCalcType(r.Calculation.Type)
	if err != nil {
		return nil, err
	}
	c.Type = t
	if c.Multiplicity == 0 {
		c.Multiplicity = 1
	}
	if c.Multiplicity < 1 {
		return nil, paramErrorf("invalid multiplicity: %d", c.Multiplicity)
	}
	if c.Solvent != "" && c.SolvationModel == "" {
		c.SolvationModel = "gbsa"
	}
	c.Constraints, err = ParseConstraints(r.Calculation.Constraints, ParseXYZ(c.XYZ))
	if err != nil {
		return nil, err
	}
	return c, nil
}
