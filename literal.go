package simplesat

// A literal is a variable occurrence, encoded as an unsigned code so that
// negation is a single bit flip. For variable index v (1-based), the
// positive literal is 2(v-1) and the negative literal is 2(v-1)+1.
type literal uint32

// litNone marks the absence of a literal (used as a sentinel, never stored
// in an occurrence list or a clause).
const litNone literal = 1<<32 - 1

// negate flips the polarity of a literal without touching its variable.
func negate(l literal) literal { return l ^ 1 }

// variable returns the 0-based variable index a literal belongs to.
func (l literal) variable() int { return int(l >> 1) }

// negative reports whether l is the negated form of its variable.
func (l literal) negative() bool { return l&1 == 1 }

// litFromInt converts a nonzero signed DIMACS literal into its internal
// code. Positive integers map to even codes, negative integers to odd
// codes for the same variable.
func litFromInt(repr int) literal {
	if repr == 0 {
		panic("simplesat: litFromInt called with zero")
	}
	v := repr
	neg := false
	if v < 0 {
		neg = true
		v = -v
	}
	lit := literal(v-1) << 1
	if neg {
		lit |= 1
	}
	return lit
}

// intFromLit is the inverse of litFromInt: it recovers the signed DIMACS
// representation of a literal.
func intFromLit(l literal) int {
	v := int(l>>1) + 1
	if l.negative() {
		return -v
	}
	return v
}
