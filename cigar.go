package astarpa

import (
	"fmt"
	"log"
	"strconv"
	"strings"
)

// OpKind is the kind of a single CIGAR run: match (identity),
// substitution, insertion or deletion. Match runs are included so a
// CIGAR can represent the whole alignment, not just its edits.
type OpKind int

const (
	OpMatch OpKind = iota
	OpSub
	OpIns
	OpDel
)

func (k OpKind) letter() byte {
	switch k {
	case OpMatch:
		return '='
	case OpSub:
		return 'X'
	case OpIns:
		return 'I'
	case OpDel:
		return 'D'
	}
	log.Panicf("astarpa: invalid CIGAR op kind %d", int(k))
	panic("unreachable")
}

// Op is a single run-length-encoded CIGAR operation, e.g. {OpMatch, 4}
// for "4=".
type Op struct {
	Kind OpKind
	Len  int
}

func (o Op) String() string {
	return fmt.Sprintf("%d%c", o.Len, o.Kind.letter())
}

// CIGAR is a run-length-encoded alignment script, indexed by run
// kind+length rather than by raw replacement residues, since
// substitutions/insertions in a unit-cost DNA alignment only need to
// be counted, never spelled out.
type CIGAR struct {
	Ops []Op
}

// push appends an op, merging it into the previous run when the kind
// matches.
func (c *CIGAR) push(kind OpKind, n int) {
	if n <= 0 {
		return
	}
	if m := len(c.Ops); m > 0 && c.Ops[m-1].Kind == kind {
		c.Ops[m-1].Len += n
		return
	}
	c.Ops = append(c.Ops, Op{Kind: kind, Len: n})
}

// Cost returns the unit edit cost implied by the script: every
// non-OpMatch run contributes its length.
func (c CIGAR) Cost() int {
	cost := 0
	for _, op := range c.Ops {
		if op.Kind != OpMatch {
			cost += op.Len
		}
	}
	return cost
}

// String renders the compact run-length form, e.g. "4=1D3=".
func (c CIGAR) String() string {
	parts := make([]string, len(c.Ops))
	for i, op := range c.Ops {
		parts[i] = op.String()
	}
	return strings.Join(parts, "")
}

// Apply replays the script over the two sequences it was computed
// from, reconstructing b from a: a CIGAR's compact form never spells
// out substituted or inserted residues, so it is a run-length
// alignment trace, not a patch, and needs b back to replay against.
func (c CIGAR) Apply(a, b []byte) []byte {
	out := make([]byte, 0, len(b))
	ai, bi := 0, 0
	for _, op := range c.Ops {
		switch op.Kind {
		case OpMatch:
			out = append(out, a[ai:ai+op.Len]...)
			ai += op.Len
			bi += op.Len
		case OpSub:
			out = append(out, b[bi:bi+op.Len]...)
			ai += op.Len
			bi += op.Len
		case OpDel:
			ai += op.Len
		case OpIns:
			out = append(out, b[bi:bi+op.Len]...)
			bi += op.Len
		}
	}
	return out
}

// ParseCIGAR parses the compact run-length form back into a CIGAR by
// scanning digit-then-letter runs.
func ParseCIGAR(s string) (CIGAR, error) {
	var c CIGAR
	i := 0
	for i < len(s) {
		start := i
		for i < len(s) && s[i] >= '0' && s[i] <= '9' {
			i++
		}
		if i == start {
			return CIGAR{}, fmt.Errorf("astarpa: expected a run length at column %d in %q", start, s)
		}
		n, err := strconv.Atoi(s[start:i])
		if err != nil {
			return CIGAR{}, fmt.Errorf("astarpa: bad run length in %q: %w", s, err)
		}
		if i >= len(s) {
			return CIGAR{}, fmt.Errorf("astarpa: expected an op letter after %d in %q", n, s)
		}
		var kind OpKind
		switch s[i] {
		case '=':
			kind = OpMatch
		case 'X':
			kind = OpSub
		case 'I':
			kind = OpIns
		case 'D':
			kind = OpDel
		default:
			return CIGAR{}, fmt.Errorf("astarpa: unknown CIGAR op %q in %q", s[i], s)
		}
		i++
		c.push(kind, n)
	}
	return c, nil
}
