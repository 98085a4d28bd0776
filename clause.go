package simplesat

// clauseState is the per-clause bookkeeping that lets the search engine
// classify a clause as satisfied, unit, or contradictory in O(1), without
// rescanning its literals.
//
// Invariants (spec §3, C0-C2):
//
//	C0: nAssignedTrue + nAssignedFalse + nFreeLits == len(lits)
//	C1: no literal appears twice in lits
//	C2: satisfied iff nAssignedTrue > 0; contradicted iff nAssignedTrue == 0
//	    && nFreeLits == 0; unit iff nAssignedTrue == 0 && nFreeLits == 1
type clauseState struct {
	lits           []literal
	nAssignedTrue  int
	nAssignedFalse int
	nFreeLits      int
}

func (c *clauseState) satisfied() bool {
	return c.nAssignedTrue > 0
}

func (c *clauseState) contradicted() bool {
	return c.nAssignedTrue == 0 && c.nFreeLits == 0
}

func (c *clauseState) unit() bool {
	return c.nAssignedTrue == 0 && c.nFreeLits == 1
}

// addLiteralToClause appends lit to clause ci, unless it is already
// present (enforcing C1). It is the only way new literals enter a clause;
// it must run before any assignment has been made to the solver.
func (sv *Solver) addLiteralToClause(ci int, lit literal) {
	c := &sv.clauses[ci]
	for _, existing := range c.lits {
		if existing == lit {
			return
		}
	}
	c.lits = append(c.lits, lit)
	c.nFreeLits++
	sv.lits[lit].contClauses = append(sv.lits[lit].contClauses, ci)
}

// addTrueAssignment records that one of c's literals has just become true.
// Precondition: c.nFreeLits > 0.
func (sv *Solver) addTrueAssignment(ci int) {
	c := &sv.clauses[ci]
	if c.nAssignedTrue == 0 {
		sv.nSatClauses++
	}
	c.nAssignedTrue++
	c.nFreeLits--
}

// addFalseAssignment records that one of c's literals has just become
// false. It may push a freshly-derived unit literal onto the unit stack.
// Precondition: c.nFreeLits > 0.
func (sv *Solver) addFalseAssignment(ci int) {
	c := &sv.clauses[ci]
	if c.nAssignedTrue == 0 && c.nFreeLits == 1 {
		sv.nUnsatClauses++
	}
	c.nAssignedFalse++
	c.nFreeLits--
	if c.unit() {
		u := sv.getUnit(ci)
		sv.unitStack = append(sv.unitStack, u)
	}
}

// undoTrueAssignment is the exact inverse of addTrueAssignment.
func (sv *Solver) undoTrueAssignment(ci int) {
	c := &sv.clauses[ci]
	c.nFreeLits++
	c.nAssignedTrue--
	if c.nAssignedTrue == 0 {
		sv.nSatClauses--
	}
}

// undoFalseAssignment is the exact inverse of addFalseAssignment. It does
// not pop the unit stack; that is drained separately by the search loop.
func (sv *Solver) undoFalseAssignment(ci int) {
	c := &sv.clauses[ci]
	if c.nAssignedTrue == 0 && c.nFreeLits == 0 {
		sv.nUnsatClauses--
	}
	c.nFreeLits++
	c.nAssignedFalse--
}

// getUnit returns the sole non-fixed literal of a unit clause.
// Precondition: c.nFreeLits == 1 && c.nAssignedTrue == 0.
func (sv *Solver) getUnit(ci int) literal {
	c := &sv.clauses[ci]
	for _, lit := range c.lits {
		if !sv.lits[lit].fixed {
			return lit
		}
	}
	panic("simplesat: getUnit called on a non-unit clause")
}
