package main

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/exp/slices"
)

// An argument is one command-line fragment: a flag, an optional
// value, and for the optimization flags a marker telling the renderer
// to splice in the final optimization level
type argument struct {
	flag  string
	value string
	level bool
}

// defaultMethod is gfn2, the method xtb selects on its own, so it is
// never emitted explicitly
const defaultMethod = "gfn 2"

// specState accumulates the effect of the specification directives
// for one calculation. Later directives override earlier ones; the
// argument list keeps bare flags in the order they appeared.
// Accuracy and the iteration cap carry their own set flags so that
// every legal value, negative ones included, makes it to the output.
type specState struct {
	calcType      CalcType
	method        string
	optLevel      string
	accuracy      float64
	accSet        bool
	iterations    int
	iterSet       bool
	forceConstant float64
	rthr          string
	ewin          string
	args          []argument
}

func newSpecState(t CalcType) *specState {
	return &specState{
		calcType:      t,
		method:        defaultMethod,
		optLevel:      "tight",
		forceConstant: 1.0,
		rthr:          "0.6",
		ewin:          "6",
	}
}

// methods usable as one-word directives
var methods = []string{"gfn2", "gfn1", "gfn0", "gfnff", "gfn2//gfnff"}

// one-word directives appended verbatim as flags
var flagDirectives = map[string]bool{
	"nci":    true,
	"quick":  true,
	"squick": true,
	"mquick": true,
}

// optLevels are the xtb convergence levels, loosest to tightest
var optLevels = []string{
	"crude", "sloppy", "loose", "lax", "normal", "tight", "vtight", "extreme",
}

// A directive validates and applies the second word of a two-word
// specification. Entries with confSearchOnly set are rejected for
// anything but the conformational search types.
type directive struct {
	confSearchOnly bool
	apply          func(st *specState, val string) error
}

func applyOptLevel(st *specState, val string) error {
	if !slices.Contains(optLevels, val) {
		return paramErrorf("invalid optimization specification: %s", val)
	}
	st.optLevel = val
	return nil
}

// directives keys the two-word specifications by their first word
var directives = map[string]directive{
	"o":     {apply: applyOptLevel},
	"opt":   {apply: applyOptLevel},
	"ohess": {apply: applyOptLevel},
	"rthr": {confSearchOnly: true, apply: func(st *specState, val string) error {
		st.rthr = val
		return nil
	}},
	"ewin": {confSearchOnly: true, apply: func(st *specState, val string) error {
		st.ewin = val
		return nil
	}},
	"acc": {apply: func(st *specState, val string) error {
		f, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return paramErrorf("invalid accuracy: must be a floating point value")
		}
		st.accuracy = f
		st.accSet = true
		return nil
	}},
	"iterations": {apply: func(st *specState, val string) error {
		n, err := strconv.Atoi(val)
		if err != nil {
			return paramErrorf("invalid number of iterations: must be an integer")
		}
		st.iterations = n
		st.iterSet = true
		return nil
	}},
	"forceconstant": {apply: func(st *specState, val string) error {
		f, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return paramErrorf("invalid force constant: must be a floating point value")
		}
		st.forceConstant = f
		return nil
	}},
	"gfn": {apply: func(st *specState, val string) error {
		if !slices.Contains([]string{"0", "1", "2"}, val) {
			return paramErrorf("invalid GFN version")
		}
		st.method = "gfn " + val
		return nil
	}},
}

// sanitize strips every character outside the directive alphabet,
// turns key=value pairs into words, and collapses doubled spaces
func sanitize(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9',
			r == '-', r == '.', r == '/', r == ' ':
			b.WriteRune(r)
		case r == '=':
			b.WriteByte(' ')
		}
	}
	return strings.ReplaceAll(b.String(), "  ", " ")
}

// parse merges the type-specific default specification text with the
// user's text and applies every directive to st. The first invalid
// directive aborts the whole parse.
func (st *specState) parse(defaults, user string) error {
	clean := sanitize(defaults + strings.ToLower(user))
	for _, tok := range strings.Split(strings.TrimSpace(clean), "--") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		words := strings.Fields(tok)
		switch len(words) {
		case 1:
			if err := st.applyWord(words[0]); err != nil {
				return err
			}
		case 2:
			d, ok := directives[words[0]]
			if !ok {
				return paramErrorf("unknown specification: %s", words[0])
			}
			if d.confSearchOnly && !st.calcType.IsConfSearch() {
				return paramErrorf(
					"invalid specification for calculation type: %s", words[0])
			}
			if err := d.apply(st, words[1]); err != nil {
				return err
			}
		default:
			return paramErrorf("invalid specification: %s", tok)
		}
	}
	return nil
}

// applyWord handles a one-word directive: a method name or a bare
// flag
func (st *specState) applyWord(w string) error {
	switch {
	case slices.Contains(methods, w):
		if w == "gfn2//gfnff" && !st.calcType.IsConfSearch() {
			return paramErrorf("invalid method for calculation type: %s", w)
		}
		if w == "gfnff" || w == "gfn2//gfnff" {
			st.method = w
		} else {
			st.method = w[:3] + " " + w[3:]
		}
	case flagDirectives[w]:
		st.args = append(st.args, argument{flag: "--" + w})
	default:
		return paramErrorf("invalid specification: %s", w)
	}
	return nil
}

// finalize appends the trailing arguments implied by the parsed
// state: accuracy, iteration cap, a non-default method, and the
// conformer pruning thresholds
func (st *specState) finalize() {
	if st.accSet {
		st.args = append(st.args,
			argument{flag: "--acc", value: fmt.Sprintf("%.2f", st.accuracy)})
	}
	if st.iterSet {
		st.args = append(st.args,
			argument{flag: "--iterations", value: strconv.Itoa(st.iterations)})
	}
	if st.method != defaultMethod {
		st.args = append(st.args, argument{flag: "--" + st.method})
	}
	if st.calcType.IsConfSearch() {
		st.args = append(st.args,
			argument{flag: "--rthr", value: st.rthr},
			argument{flag: "--ewin", value: st.ewin})
	}
}

// render serializes the argument list for prog, splicing the final
// optimization level into its placeholder flags. Every fragment ends
// in a space, including the last one.
func (st *specState) render(prog string) string {
	var b strings.Builder
	for _, a := range st.args {
		flag := a.flag
		if prog == "crest" {
			flag = singleDash(flag)
		}
		b.WriteString(flag)
		if a.level && st.optLevel != "normal" {
			b.WriteString(" " + st.optLevel)
		}
		if a.value != "" {
			b.WriteString(" " + a.value)
		}
		b.WriteString(" ")
	}
	return b.String()
}

// singleDash rewrites a double-dash flag prefix to a single dash;
// crest 2.10.2 does not read arguments with double dashes
func singleDash(flag string) string {
	if strings.HasPrefix(flag, "--") {
		return flag[1:]
	}
	return flag
}
