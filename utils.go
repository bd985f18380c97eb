package main

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/exp/slices"
)

// CompressIndices renders a collection of atom indices as a minimal
// comma-separated list of consecutive runs, like "1-3,5,9-10".
// Duplicates and ordering of the input do not affect the result; an
// empty input yields an empty string.
func CompressIndices(ids []int) string {
	if len(ids) == 0 {
		return ""
	}
	sorted := slices.Clone(ids)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)
	var (
		runs  []string
		start = sorted[0]
		prev  = sorted[0]
	)
	flush := func() {
		if start == prev {
			runs = append(runs, strconv.Itoa(start))
		} else {
			runs = append(runs, fmt.Sprintf("%d-%d", start, prev))
		}
	}
	for _, id := range sorted[1:] {
		if id == prev+1 {
			prev = id
			continue
		}
		flush()
		start, prev = id, id
	}
	flush()
	return strings.Join(runs, ",")
}

// formatFloat renders f in its shortest form but always with a
// decimal point, so 9 prints as "9.0" and 1.25 as "1.25"
func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}
