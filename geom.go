package main

import (
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// An Atom is one line of an xyz geometry block
type Atom struct {
	Symbol string
	Coords [3]float64
}

// ParseXYZ extracts the atoms from an xyz geometry block, skipping
// the atom-count header, comment lines, and anything else that is not
// a coordinate line
func ParseXYZ(xyz string) (atoms []Atom) {
	for _, line := range strings.Split(xyz, "\n") {
		fields := strings.Fields(line)
		if len(fields) < 4 {
			continue
		}
		var (
			coords [3]float64
			err    error
		)
		for i, f := range fields[1:4] {
			if coords[i], err = strconv.ParseFloat(f, 64); err != nil {
				break
			}
		}
		if err != nil {
			continue
		}
		atoms = append(atoms, Atom{Symbol: fields[0], Coords: coords})
	}
	return
}

// xyzBlock trims the atom-count and comment header of a standard xyz
// file, leaving only the coordinate lines
func xyzBlock(contents string) string {
	lines := strings.Split(contents, "\n")
	if len(lines) >= 2 {
		if _, err := strconv.Atoi(strings.TrimSpace(lines[0])); err == nil {
			return strings.Join(lines[2:], "\n")
		}
	}
	return contents
}

func vec(a Atom) *mat.VecDense {
	return mat.NewVecDense(3, []float64{a.Coords[0], a.Coords[1], a.Coords[2]})
}

func sub(a, b *mat.VecDense) *mat.VecDense {
	v := mat.NewVecDense(3, nil)
	v.SubVec(a, b)
	return v
}

func cross(a, b *mat.VecDense) *mat.VecDense {
	return mat.NewVecDense(3, []float64{
		a.AtVec(1)*b.AtVec(2) - a.AtVec(2)*b.AtVec(1),
		a.AtVec(2)*b.AtVec(0) - a.AtVec(0)*b.AtVec(2),
		a.AtVec(0)*b.AtVec(1) - a.AtVec(1)*b.AtVec(0),
	})
}

// Distance returns the distance between 1-based atoms i and j in the
// units of the geometry
func Distance(atoms []Atom, i, j int) float64 {
	return mat.Norm(sub(vec(atoms[i-1]), vec(atoms[j-1])), 2)
}

// Angle returns the i-j-k angle in degrees for 1-based atom indices
func Angle(atoms []Atom, i, j, k int) float64 {
	v1 := sub(vec(atoms[i-1]), vec(atoms[j-1]))
	v2 := sub(vec(atoms[k-1]), vec(atoms[j-1]))
	arg := mat.Dot(v1, v2) / (mat.Norm(v1, 2) * mat.Norm(v2, 2))
	// floating point math can push the argument out of acos's domain
	if arg > 1 {
		arg = 1
	} else if arg < -1 {
		arg = -1
	}
	return math.Acos(arg) * 180 / math.Pi
}

// Dihedral returns the signed i-j-k-l torsion in degrees for 1-based
// atom indices
func Dihedral(atoms []Atom, i, j, k, l int) float64 {
	u1 := sub(vec(atoms[j-1]), vec(atoms[i-1]))
	u2 := sub(vec(atoms[k-1]), vec(atoms[j-1]))
	u3 := sub(vec(atoms[l-1]), vec(atoms[k-1]))
	n1 := cross(u1, u2)
	n2 := cross(u2, u3)
	u2.ScaleVec(1/mat.Norm(u2, 2), u2)
	y := mat.Dot(cross(n1, n2), u2)
	x := mat.Dot(n1, n2)
	return math.Atan2(y, x) * 180 / math.Pi
}

// measure returns the current value of the internal coordinate
// defined by two to four 1-based atom indices
func measure(atoms []Atom, ids []int) (float64, error) {
	for _, id := range ids {
		if id < 1 || id > len(atoms) {
			return 0, paramErrorf("invalid constraint: atom %d out of range", id)
		}
	}
	switch len(ids) {
	case 2:
		return Distance(atoms, ids[0], ids[1]), nil
	case 3:
		return Angle(atoms, ids[0], ids[1], ids[2]), nil
	case 4:
		return Dihedral(atoms, ids[0], ids[1], ids[2], ids[3]), nil
	}
	return 0, paramErrorf("invalid constraint: %d atoms", len(ids))
}
