package code_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/baconshor/internal/code"
)

func edges(specs ...string) []code.Edge {
	out := make([]code.Edge, len(specs))
	for i, s := range specs {
		e, err := code.ParseEdge(s)
		Expect(err).NotTo(HaveOccurred())
		out[i] = e
	}
	return out
}

func groupKeys(tr *code.Tracker) []string {
	stabs := tr.Stabilizers()
	keys := make([]string, len(stabs))
	for i, s := range stabs {
		keys[i] = s.Key()
	}
	return keys
}

// A full Bacon-Shor measurement cycle on the 3x3 qubit lattice:
//
//	1 2 3
//	4 5 6
//	7 8 9
var _ = Describe("Tracker over a full measurement cycle", func() {
	var tr *code.Tracker

	vertical := edges("1-4", "2-5", "3-6", "4-7", "5-8", "6-9")
	horizontal := edges("1-2", "2-3", "4-5", "5-6", "7-8", "8-9")

	BeforeEach(func() {
		l, err := code.NewLattice(2, 2)
		Expect(err).NotTo(HaveOccurred())
		tr = code.NewTracker(l)
	})

	It("starts with the bare XX gauge generators", func() {
		res := tr.ApplyStep(vertical)
		Expect(res.Rejected).To(BeEmpty())
		Expect(groupKeys(tr)).To(Equal([]string{
			"X1 X4", "X2 X5", "X3 X6", "X4 X7", "X5 X8", "X6 X9",
		}))
	})

	It("merges column pairs into row X stabilizers when the ZZ round lands", func() {
		tr.ApplyStep(vertical)
		tr.ApplyStep(horizontal)
		Expect(groupKeys(tr)).To(Equal([]string{
			"X1 X2 X3 X4 X5 X6",
			"X4 X5 X6 X7 X8 X9",
			"Z1 Z2", "Z2 Z3", "Z4 Z5", "Z5 Z6", "Z7 Z8", "Z8 Z9",
		}))
	})

	It("forms column Z stabilizers on the next XX round", func() {
		tr.ApplyStep(vertical)
		tr.ApplyStep(horizontal)
		tr.ApplyStep(vertical)
		Expect(groupKeys(tr)).To(Equal([]string{
			"X1 X4", "X2 X5", "X3 X6", "X4 X7", "X5 X8", "X6 X9",
			"Z1 Z2 Z4 Z5 Z7 Z8",
			"Z2 Z3 Z5 Z6 Z8 Z9",
		}))
	})

	It("reaches a steady alternation after the first full cycle", func() {
		tr.ApplyStep(vertical)
		tr.ApplyStep(horizontal)
		tr.ApplyStep(vertical)
		afterThree := groupKeys(tr)

		tr.ApplyStep(horizontal)
		tr.ApplyStep(vertical)
		Expect(groupKeys(tr)).To(Equal(afterThree))
	})

	It("keeps the group size bounded by the lattice", func() {
		for i := 0; i < 6; i++ {
			if i%2 == 0 {
				tr.ApplyStep(vertical)
			} else {
				tr.ApplyStep(horizontal)
			}
		}
		Expect(len(tr.Stabilizers())).To(BeNumerically("<=", tr.Lattice().NumQubits()-1))
	})
})
