package main

import (
	"errors"
	"math"
	"reflect"
	"strings"
	"testing"
)

func TestParseConstraints(t *testing.T) {
	tests := []struct {
		text string
		want []Constraint
	}{
		{
			text: "",
			want: nil,
		},
		{
			text: "Freeze/1_2;",
			want: []Constraint{{Ids: []int{1, 2}}},
		},
		{
			text: "Freeze/2_1_3;Freeze/4_1_5_8;",
			want: []Constraint{
				{Ids: []int{2, 1, 3}},
				{Ids: []int{4, 1, 5, 8}},
			},
		},
		{
			text: "Scan_9_1.4_10/1_2;",
			want: []Constraint{
				{Ids: []int{1, 2}, Scan: true, StartD: 9, EndD: 1.4, NumSteps: 10},
			},
		},
		{
			text: "Scan_9_90_10/2_1_3;Freeze/1_2;",
			want: []Constraint{
				{Ids: []int{2, 1, 3}, Scan: true, StartD: 9, EndD: 90, NumSteps: 10},
				{Ids: []int{1, 2}},
			},
		},
	}
	for _, test := range tests {
		got, err := ParseConstraints(test.text, nil)
		if err != nil {
			t.Errorf("ParseConstraints(%q): unexpected error %v\n", test.text, err)
			continue
		}
		if !reflect.DeepEqual(got, test.want) {
			t.Errorf("ParseConstraints(%q): got %#v, wanted %#v\n",
				test.text, got, test.want)
		}
	}
}

func TestParseConstraintsAuto(t *testing.T) {
	atoms := []Atom{
		{Symbol: "O", Coords: [3]float64{0, 0, 0}},
		{Symbol: "H", Coords: [3]float64{0, 0, 1.5}},
	}
	got, err := ParseConstraints("Scan_auto_1.0_10/1_2;", atoms)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || math.Abs(got[0].StartD-1.5) > 1e-12 {
		t.Errorf("got %#v, wanted scan start 1.5\n", got)
	}
}

func TestParseConstraintsErrors(t *testing.T) {
	tests := []struct {
		text string
		frag string
	}{
		{text: "Freeze/1;", frag: "invalid constraint"},
		{text: "Freeze/1_2_3_4_5;", frag: "invalid constraint"},
		{text: "Freeze/1_x;", frag: "invalid constraint atom"},
		{text: "Melt/1_2;", frag: "invalid constraint mode"},
		{text: "Scan_9_1.4/1_2;", frag: "invalid constraint"},
		{text: "Scan_a_1.4_10/1_2;", frag: "invalid scan start"},
		{text: "Scan_9_b_10/1_2;", frag: "invalid scan end"},
		{text: "Scan_9_1.4_c/1_2;", frag: "invalid scan step count"},
		{text: "Scan_auto_1.4_10/1_5;", frag: "out of range"},
		{text: "noslash;", frag: "invalid constraint"},
	}
	atoms := []Atom{
		{Symbol: "O", Coords: [3]float64{0, 0, 0}},
		{Symbol: "H", Coords: [3]float64{0, 0, 1.5}},
	}
	for _, test := range tests {
		_, err := ParseConstraints(test.text, atoms)
		if err == nil {
			t.Errorf("ParseConstraints(%q): expected error\n", test.text)
			continue
		}
		if !errors.Is(err, ErrInvalidParameter) {
			t.Errorf("ParseConstraints(%q): error %v does not wrap ErrInvalidParameter\n",
				test.text, err)
		}
		if !strings.Contains(err.Error(), test.frag) {
			t.Errorf("ParseConstraints(%q): error %q does not contain %q\n",
				test.text, err, test.frag)
		}
	}
}

func TestToXtb(t *testing.T) {
	tests := []struct {
		c    Constraint
		want string
	}{
		{
			c:    Constraint{Ids: []int{1, 2}},
			want: "distance: 1, 2, auto\n",
		},
		{
			c:    Constraint{Ids: []int{2, 1, 3}},
			want: "angle: 2, 1, 3, auto\n",
		},
		{
			c:    Constraint{Ids: []int{4, 1, 5, 8}, Scan: true, StartD: 9},
			want: "dihedral: 4, 1, 5, 8, auto\n",
		},
	}
	for _, test := range tests {
		got := test.c.ToXtb()
		if got != test.want {
			t.Errorf("ToXtb(%#v): got %q, wanted %q\n", test.c, got, test.want)
		}
	}
}
