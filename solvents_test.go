package main

import "testing"

func TestGetSolvent(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{name: "water", want: "h2o"},
		{name: "Water", want: "h2o"},
		{name: " THF ", want: "thf"},
		{name: "dichloromethane", want: "ch2cl2"},
		{name: "hexane", want: "n-hexane"},
	}
	for _, test := range tests {
		got, err := GetSolvent(test.name, "xtb")
		if err != nil {
			t.Errorf("GetSolvent(%q): unexpected error %v\n", test.name, err)
			continue
		}
		if got != test.want {
			t.Errorf("GetSolvent(%q): got %q, wanted %q\n", test.name, got, test.want)
		}
	}
	if _, err := GetSolvent("unobtainium", "xtb"); err == nil {
		t.Errorf("expected unknown solvent error\n")
	}
	if _, err := GetSolvent("water", "mopac"); err == nil {
		t.Errorf("expected unknown software error\n")
	}
}
