package dbdm_test

import (
	"context"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/dbdm"
)

// sampling settings small enough to keep the suite fast
func suiteParams() dbdm.Params {
	p := dbdm.DefaultParams()
	p.MonteCarlo.Iterations = 4
	p.MonteCarlo.Evals = 2000
	p.MonteCarlo.Seed = 7
	return p
}

var _ = Describe("diffuse flux", func() {
	var ctx context.Context

	BeforeEach(func() {
		ctx = context.Background()
	})

	It("is positive for fiducial parameters", func() {
		res, err := dbdm.Flux(ctx, 10, 1, suiteParams())
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Value).To(BeNumerically(">", 0))
		Expect(res.Err).To(BeNumerically(">=", 0))
	})

	It("grows with the interaction cross-section", func() {
		weak := suiteParams()
		strong := suiteParams()
		strong.Sigma = 100 * weak.Sigma

		a, err := dbdm.Flux(ctx, 10, 1, weak)
		Expect(err).NotTo(HaveOccurred())
		b, err := dbdm.Flux(ctx, 10, 1, strong)
		Expect(err).NotTo(HaveOccurred())

		Expect(b.Value).To(BeNumerically(">", a.Value))
	})

	It("gains from the halo spike at the galactic center", func() {
		spiked := suiteParams()
		spiked.Average = false
		spiked.R = 0
		// freeze the importance grid so both runs sample identical
		// points; the spiked integrand then dominates pointwise
		spiked.MonteCarlo.Alpha = 0

		flat := spiked
		flat.Spike = false

		a, err := dbdm.Flux(ctx, 10, 1, spiked)
		Expect(err).NotTo(HaveOccurred())
		b, err := dbdm.Flux(ctx, 10, 1, flat)
		Expect(err).NotTo(HaveOccurred())

		Expect(a.Value).To(BeNumerically(">=", b.Value))
	})

	It("vanishes above the emission validity cutoff", func() {
		res, err := dbdm.Flux(ctx, 300, 1, suiteParams())
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Value).To(BeZero())
	})
})

var _ = Describe("event rate", func() {
	It("accumulates a positive rate over the energy window", func() {
		res, err := dbdm.Event(context.Background(), 1, suiteParams())
		Expect(err).NotTo(HaveOccurred())
		Expect(res.Value).To(BeNumerically(">", 0))
	})

	It("rejects a non-physical energy window", func() {
		p := suiteParams()
		p.TxMin, p.TxMax = 50, 5
		_, err := dbdm.Event(context.Background(), 1, p)
		Expect(err).To(MatchError(dbdm.ErrParameterBounds))
	})
})
