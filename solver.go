package simplesat

import (
	"context"
	"time"
)

// Problem is a CNF formula: NumVars variables and a list of clauses, each a
// list of nonzero signed DIMACS literals (positive for the variable,
// negative for its complement).
type Problem struct {
	NumVars int
	Clauses [][]int
}

// Result is the verdict of a solve attempt.
type Result int

const (
	Unknown Result = iota
	Satisfiable
	Unsatisfiable
)

func (r Result) String() string {
	switch r {
	case Satisfiable:
		return "SATISFIABLE"
	case Unsatisfiable:
		return "UNSATISFIABLE"
	default:
		return "UNKNOWN"
	}
}

// Stats carries the engine's informational counters. They don't affect the
// verdict and the set of fields may grow over time.
type Stats struct {
	NumBranches     int64
	NumPropagations int64
	Elapsed         time.Duration
}

// Solution is the outcome of solving a Problem.
type Solution struct {
	Result     Result
	Assignment []int // one entry per variable, signed; nil unless Result == Satisfiable
	Stats      Stats
}

// Solver holds all per-solve state: the literal and clause arrays, the
// occurrence-list-derived unit stack, and the assignment trail. A Solver is
// built fresh for each solve and is not reusable (spec: "re-solving the
// same solver is undefined").
type Solver struct {
	numVars int

	lits    []litState    // len == 2*numVars
	clauses []clauseState // len == len(problem.Clauses)

	nSatClauses   int
	nUnsatClauses int

	unitStack []literal // pending unit-propagation queue (LIFO)
	trail     []literal // ordered record of literals assigned true

	numBranches     int64
	numPropagations int64

	ctx      context.Context
	canceled bool
}

func newSolver(p *Problem) *Solver {
	sv := &Solver{
		numVars: p.NumVars,
		lits:    make([]litState, 2*p.NumVars),
		clauses: make([]clauseState, len(p.Clauses)),
	}
	for ci, cls := range p.Clauses {
		for _, repr := range cls {
			sv.addLiteralToClause(ci, litFromInt(repr))
		}
		if len(sv.clauses[ci].lits) == 0 {
			// An empty clause is vacuously contradicted; nothing will ever
			// assign a literal in it to trigger the usual transition.
			sv.nUnsatClauses++
		}
	}
	return sv
}

// makeAssignment sets lit true (and its negation false), then forward
// propagates that fact through both occurrence lists. Precondition:
// neither lit nor negate(lit) is fixed.
func (sv *Solver) makeAssignment(lit literal) {
	neg := negate(lit)
	sv.lits[lit].fixed = true
	sv.lits[lit].assigned = true
	sv.lits[neg].fixed = true
	sv.lits[neg].assigned = false

	for _, ci := range sv.lits[lit].contClauses {
		sv.addTrueAssignment(ci)
	}
	for _, ci := range sv.lits[neg].contClauses {
		sv.addFalseAssignment(ci)
	}
}

// undoAssignment is the exact inverse of makeAssignment.
func (sv *Solver) undoAssignment(lit literal) {
	neg := negate(lit)
	for _, ci := range sv.lits[neg].contClauses {
		sv.undoFalseAssignment(ci)
	}
	for _, ci := range sv.lits[lit].contClauses {
		sv.undoTrueAssignment(ci)
	}
	sv.lits[lit].fixed = false
	sv.lits[neg].fixed = false
}

func weight(nFreeLits int) int {
	switch {
	case nFreeLits == 2:
		return 4
	case nFreeLits == 3:
		return 2
	default:
		return 1
	}
}

// updateScores recomputes the scratch score of every non-fixed literal as
// the sum, over its not-yet-satisfied containing clauses, of a weight
// biased toward short clauses (spec §4.6).
func (sv *Solver) updateScores() {
	for lit := range sv.lits {
		ls := &sv.lits[lit]
		if ls.fixed {
			continue
		}
		score := 0
		for _, ci := range ls.contClauses {
			c := &sv.clauses[ci]
			if c.satisfied() {
				continue
			}
			score += weight(c.nFreeLits)
		}
		ls.score = score
	}
}

// chooseBranch picks the next literal to assign true: the variable whose
// two polarity scores combine (via (a+1)*(b+1)) to the largest value,
// breaking ties toward the first variable to reach the maximum and, within
// a variable, toward the positive polarity. Precondition: at least one
// variable is unassigned.
func (sv *Solver) chooseBranch() literal {
	sv.updateScores()
	best := -1
	bestLit := litNone
	for v := 0; v < sv.numVars; v++ {
		p := literal(v) << 1
		if sv.lits[p].fixed {
			continue
		}
		n := negate(p)
		a, b := sv.lits[p].score, sv.lits[n].score
		combined := (a + 1) * (b + 1)
		if combined > best {
			best = combined
			if a >= b {
				bestLit = p
			} else {
				bestLit = n
			}
		}
	}
	return bestLit
}

// searchAssignments is the recursive backtracking driver. On entry and
// exit, the unit-propagation queue is always empty (spec invariant S5).
func (sv *Solver) searchAssignments() Result {
	if sv.nUnsatClauses > 0 {
		return Unsatisfiable
	}
	if sv.nSatClauses == len(sv.clauses) {
		return Satisfiable
	}
	if sv.ctx != nil {
		select {
		case <-sv.ctx.Done():
			sv.canceled = true
			return Unsatisfiable
		default:
		}
	}

	lit := sv.chooseBranch()
	if lit == litNone {
		panic("simplesat: chooseBranch found no unassigned variable with clauses still unsatisfied")
	}
	if result := sv.tryAssignment(lit); result != Unsatisfiable {
		return result
	}
	return sv.tryAssignment(negate(lit))
}

// tryAssignment assigns branch, drains the resulting unit-propagation
// queue (detecting conflicts along the way), recurses, and unwinds the
// trail back to its entry state unless the outcome was SATISFIABLE.
func (sv *Solver) tryAssignment(branch literal) Result {
	prevLen := len(sv.trail)
	sv.numBranches++
	sv.trail = append(sv.trail, branch)
	sv.makeAssignment(branch)

	conflict := false
	for len(sv.unitStack) > 0 {
		u := sv.unitStack[len(sv.unitStack)-1]
		sv.unitStack = sv.unitStack[:len(sv.unitStack)-1]
		ls := &sv.lits[u]
		switch {
		case !ls.fixed:
			sv.trail = append(sv.trail, u)
			sv.numPropagations++
			sv.makeAssignment(u)
		case !ls.assigned:
			// u's negation was assigned true: conflict.
			conflict = true
			sv.unitStack = sv.unitStack[:0]
		default:
			// u is already satisfied; discard.
		}
		if conflict {
			break
		}
	}

	var outcome Result
	if conflict {
		outcome = Unsatisfiable
	} else {
		outcome = sv.searchAssignments()
	}

	if outcome == Unsatisfiable {
		for len(sv.trail) > prevLen {
			l := sv.trail[len(sv.trail)-1]
			sv.trail = sv.trail[:len(sv.trail)-1]
			sv.undoAssignment(l)
		}
	}
	return outcome
}

// extractAssignment reads the satisfying assignment off the current
// (unwound-from-failure, not-unwound-from-success) literal states.
// Variables that were never touched because every clause was already
// satisfied without them default to true.
func (sv *Solver) extractAssignment() []int {
	out := make([]int, sv.numVars)
	for v := 0; v < sv.numVars; v++ {
		p := literal(v) << 1
		val := true
		if sv.lits[p].fixed {
			val = sv.lits[p].assigned
		}
		if val {
			out[v] = v + 1
		} else {
			out[v] = -(v + 1)
		}
	}
	return out
}

// Solve decides the satisfiability of p and, if satisfiable, returns a
// satisfying assignment alongside search statistics.
func Solve(p *Problem) *Solution {
	start := time.Now()
	sv := newSolver(p)
	result := sv.searchAssignments()
	sol := &Solution{
		Result: result,
		Stats: Stats{
			NumBranches:     sv.numBranches,
			NumPropagations: sv.numPropagations,
			Elapsed:         time.Since(start),
		},
	}
	if result == Satisfiable {
		sol.Assignment = sv.extractAssignment()
	}
	return sol
}

// SolveContext behaves like Solve but polls ctx between branch decisions so
// a caller embedding the solver in a larger service can cancel a
// pathologically long search. The search itself remains single-threaded
// and synchronous; this only adds a cancellation check, not concurrency.
func SolveContext(ctx context.Context, p *Problem) (*Solution, error) {
	start := time.Now()
	sv := newSolver(p)
	sv.ctx = ctx
	result := sv.searchAssignments()
	if sv.canceled {
		return nil, ctx.Err()
	}
	sol := &Solution{
		Result: result,
		Stats: Stats{
			NumBranches:     sv.numBranches,
			NumPropagations: sv.numPropagations,
			Elapsed:         time.Since(start),
		},
	}
	if result == Satisfiable {
		sol.Assignment = sv.extractAssignment()
	}
	return sol, nil
}
