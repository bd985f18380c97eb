package main

import (
	"fmt"
	"strings"
)

// xtbSolvents maps normalized solvent names to the keywords the xtb
// and crest implicit-solvation models accept
var xtbSolvents = map[string]string{
	"acetone":               "acetone",
	"acetonitrile":          "acetonitrile",
	"acn":                   "acetonitrile",
	"mecn":                  "acetonitrile",
	"benzene":               "benzene",
	"dichloromethane":       "ch2cl2",
	"dcm":                   "ch2cl2",
	"ch2cl2":                "ch2cl2",
	"chloroform":            "chcl3",
	"chcl3":                 "chcl3",
	"carbon disulfide":      "cs2",
	"cs2":                   "cs2",
	"dimethylformamide":     "dmf",
	"n,n-dimethylformamide": "dmf",
	"dmf":                   "dmf",
	"dimethylsulfoxide":     "dmso",
	"dmso":                  "dmso",
	"diethyl ether":         "ether",
	"diethylether":          "ether",
	"et2o":                  "ether",
	"ether":                 "ether",
	"water":                 "h2o",
	"h2o":                   "h2o",
	"methanol":              "methanol",
	"meoh":                  "methanol",
	"hexane":                "n-hexane",
	"n-hexane":              "n-hexane",
	"tetrahydrofuran":       "thf",
	"thf":                   "thf",
	"toluene":               "toluene",
}

// solventTables keys the per-software keyword tables by the target
// software identifier
var solventTables = map[string]map[string]string{
	"xtb": xtbSolvents,
}

// GetSolvent returns the keyword software uses for the solvent name,
// or an error when the software or the solvent is unknown
func GetSolvent(name, software string) (string, error) {
	table, ok := solventTables[strings.ToLower(software)]
	if !ok {
		return "", fmt.Errorf("no solvents known for software %q", software)
	}
	kw, ok := table[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return "", fmt.Errorf("unknown solvent %q", name)
	}
	return kw, nil
}
