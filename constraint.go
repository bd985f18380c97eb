package main

import (
	"fmt"
	"strconv"
	"strings"
)

// A Constraint is a single geometric restraint on two to four atoms,
// optionally scanned linearly from StartD to EndD in NumSteps steps
type Constraint struct {
	Ids      []int
	Scan     bool
	StartD   float64
	EndD     float64
	NumSteps int
}

// coordNames maps the number of constrained atoms to the xtb name of
// the internal coordinate
var coordNames = map[int]string{
	2: "distance",
	3: "angle",
	4: "dihedral",
}

// ToXtb renders c as one line of an xtb $constrain section. The value
// is always "auto": frozen coordinates hold their current value, and
// scanned ones take their range from the $scan section instead.
func (c Constraint) ToXtb() string {
	ids := make([]string, len(c.Ids))
	for i, id := range c.Ids {
		ids[i] = strconv.Itoa(id)
	}
	return fmt.Sprintf("%s: %s, auto\n", coordNames[len(c.Ids)], strings.Join(ids, ", "))
}

// ParseConstraints parses a constraint specification of the form
//
//	Freeze/1_2;Scan_9_1.4_10/1_2;
//
// where each entry is a mode, underscore-separated scan parameters,
// a slash, and two to four underscore-separated 1-based atom indices.
// A scan start of "auto" resolves to the current value of the
// coordinate in atoms.
func ParseConstraints(text string, atoms []Atom) ([]Constraint, error) {
	var constraints []Constraint
	for _, entry := range strings.Split(text, ";") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		parts := strings.Split(entry, "/")
		if len(parts) != 2 {
			return nil, paramErrorf("invalid constraint: %s", entry)
		}
		var c Constraint
		for _, field := range strings.Split(parts[1], "_") {
			id, err := strconv.Atoi(field)
			if err != nil {
				return nil, paramErrorf("invalid constraint atom: %s", field)
			}
			c.Ids = append(c.Ids, id)
		}
		if len(c.Ids) < 2 || len(c.Ids) > 4 {
			return nil, paramErrorf("invalid constraint: %s", entry)
		}
		mode := strings.Split(parts[0], "_")
		switch strings.ToLower(mode[0]) {
		case "freeze":
			if len(mode) != 1 {
				return nil, paramErrorf("invalid constraint: %s", entry)
			}
		case "scan":
			if len(mode) != 4 {
				return nil, paramErrorf("invalid constraint: %s", entry)
			}
			c.Scan = true
			var err error
			if strings.ToLower(mode[1]) == "auto" {
				if c.StartD, err = measure(atoms, c.Ids); err != nil {
					return nil, err
				}
			} else if c.StartD, err = strconv.ParseFloat(mode[1], 64); err != nil {
				return nil, paramErrorf("invalid scan start: %s", mode[1])
			}
			if c.EndD, err = strconv.ParseFloat(mode[2], 64); err != nil {
				return nil, paramErrorf("invalid scan end: %s", mode[2])
			}
			if c.NumSteps, err = strconv.Atoi(mode[3]); err != nil {
				return nil, paramErrorf("invalid scan step count: %s", mode[3])
			}
		default:
			return nil, paramErrorf("invalid constraint mode: %s", mode[0])
		}
		constraints = append(constraints, c)
	}
	return constraints, nil
}
