package main

import "testing"

func TestSanitize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "--acc=0.2", want: "--acc 0.2"},
		{in: "--opt  tight", want: "--opt tight"},
		{in: "--nci; rm -rf /", want: "--nci rm -rf /"},
		{in: "--gfn2//gfnff", want: "--gfn2//gfnff"},
		{in: "", want: ""},
	}
	for _, test := range tests {
		got := sanitize(test.in)
		if got != test.want {
			t.Errorf("sanitize(%q): got %q, wanted %q\n", test.in, got, test.want)
		}
	}
}

// every recognized one-word directive parses cleanly, and for the
// methods the last one wins
func TestOneWordDirectives(t *testing.T) {
	st := newSpecState(ConfSearch)
	for _, m := range methods {
		if err := st.applyWord(m); err != nil {
			t.Errorf("applyWord(%q): unexpected error %v\n", m, err)
		}
	}
	if st.method != "gfn2//gfnff" {
		t.Errorf("got method %q, wanted gfn2//gfnff\n", st.method)
	}
	for w := range flagDirectives {
		if err := st.applyWord(w); err != nil {
			t.Errorf("applyWord(%q): unexpected error %v\n", w, err)
		}
	}
	if len(st.args) != len(flagDirectives) {
		t.Errorf("got %d args, wanted %d\n", len(st.args), len(flagDirectives))
	}
}

func TestDirectiveOverride(t *testing.T) {
	st := newSpecState(Opt)
	if err := st.parse("--opt tight ", "--o loose --o extreme --acc 1 --acc 2"); err != nil {
		t.Fatal(err)
	}
	if st.optLevel != "extreme" {
		t.Errorf("got level %q, wanted extreme\n", st.optLevel)
	}
	if st.accuracy != 2 {
		t.Errorf("got accuracy %v, wanted 2\n", st.accuracy)
	}
}

func TestUserSpecsLowercased(t *testing.T) {
	st := newSpecState(SP)
	if err := st.parse("", "--GFN1 --NCI"); err != nil {
		t.Fatal(err)
	}
	if st.method != "gfn 1" {
		t.Errorf("got method %q, wanted gfn 1\n", st.method)
	}
}
