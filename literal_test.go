package simplesat

import "testing"

func TestLitFromIntRoundTrip(t *testing.T) {
	for n := -50; n <= 50; n++ {
		if n == 0 {
			continue
		}
		lit := litFromInt(n)
		if got := intFromLit(lit); got != n {
			t.Errorf("intFromLit(litFromInt(%d)) = %d, want %d", n, got, n)
		}
	}
}

func TestNegateInvolution(t *testing.T) {
	for v := 1; v <= 50; v++ {
		lit := litFromInt(v)
		if got := negate(negate(lit)); got != lit {
			t.Errorf("negate(negate(%d)) = %d, want %d", lit, got, lit)
		}
		if lit&^1 != negate(lit)&^1 {
			t.Errorf("negate(%d) changed the variable bits", lit)
		}
	}
}

func TestLitFromIntPolarity(t *testing.T) {
	for v := 1; v <= 10; v++ {
		pos := litFromInt(v)
		neg := litFromInt(-v)
		if negate(pos) != neg {
			t.Errorf("negate(litFromInt(%d)) = %d, want litFromInt(%d) = %d", v, negate(pos), -v, neg)
		}
		if pos.negative() {
			t.Errorf("litFromInt(%d) should be the positive literal", v)
		}
		if !neg.negative() {
			t.Errorf("litFromInt(%d) should be the negative literal", -v)
		}
	}
}
