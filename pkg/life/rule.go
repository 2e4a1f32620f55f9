package life

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrBadRule reports malformed rule notation or out-of-range counts.
	ErrBadRule = errors.New("life: bad rule")
	// ErrBirthOnZero rejects rules where empty space comes alive. A sparse
	// store cannot represent them.
	ErrBirthOnZero = errors.New("life: birth on zero neighbors is not supported")
)

// Rule maps (live neighbor count, current state) to the next cell state and
// carries the per-axis wrap flags.
type Rule struct {
	transitions [9][2]uint8

	WrapX bool
	WrapY bool
}

// Conway returns the standard B3/S23 rule without wrapping.
func Conway() Rule {
	r, _ := NewRule([]int{3}, []int{2, 3})
	return r
}

// NewRule builds a rule from birth and survival neighbor counts.
func NewRule(birth, survive []int) (Rule, error) {
	var r Rule
	for _, n := range birth {
		if n < 0 || n > 8 {
			return Rule{}, fmt.Errorf("%w: birth count %d", ErrBadRule, n)
		}
		if n == 0 {
			return Rule{}, ErrBirthOnZero
		}
		r.transitions[n][0] = 1
	}
	for _, n := range survive {
		if n < 0 || n > 8 {
			return Rule{}, fmt.Errorf("%w: survival count %d", ErrBadRule, n)
		}
		r.transitions[n][1] = 1
	}
	return r, nil
}

// ParseRule parses B/S notation such as "B3/S23" or "S23/B3".
func ParseRule(notation string) (Rule, error) {
	parts := strings.Split(strings.ToUpper(strings.TrimSpace(notation)), "/")
	if len(parts) != 2 {
		return Rule{}, fmt.Errorf("%w: %q", ErrBadRule, notation)
	}
	var birth, survive []int
	var seenB, seenS bool
	for _, part := range parts {
		if part == "" {
			return Rule{}, fmt.Errorf("%w: %q", ErrBadRule, notation)
		}
		counts, err := parseCounts(part[1:])
		if err != nil {
			return Rule{}, fmt.Errorf("%w: %q", err, notation)
		}
		switch part[0] {
		case 'B':
			if seenB {
				return Rule{}, fmt.Errorf("%w: %q", ErrBadRule, notation)
			}
			seenB = true
			birth = counts
		case 'S':
			if seenS {
				return Rule{}, fmt.Errorf("%w: %q", ErrBadRule, notation)
			}
			seenS = true
			survive = counts
		default:
			return Rule{}, fmt.Errorf("%w: %q", ErrBadRule, notation)
		}
	}
	return NewRule(birth, survive)
}

func parseCounts(digits string) ([]int, error) {
	counts := make([]int, 0, len(digits))
	for _, ch := range digits {
		if ch < '0' || ch > '8' {
			return nil, ErrBadRule
		}
		counts = append(counts, int(ch-'0'))
	}
	return counts, nil
}

// Evaluate returns the next state for a cell. Only zero versus non-zero of
// current matters.
func (r Rule) Evaluate(neighbors int, current uint8) uint8 {
	if current != 0 {
		return r.transitions[neighbors][1]
	}
	return r.transitions[neighbors][0]
}

// String renders the rule in canonical B/S notation.
func (r Rule) String() string {
	var b strings.Builder
	b.WriteByte('B')
	for n := 0; n <= 8; n++ {
		if r.transitions[n][0] != 0 {
			b.WriteByte(byte('0' + n))
		}
	}
	b.WriteString("/S")
	for n := 0; n <= 8; n++ {
		if r.transitions[n][1] != 0 {
			b.WriteByte(byte('0' + n))
		}
	}
	return b.String()
}
