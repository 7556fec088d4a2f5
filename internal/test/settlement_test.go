package test

import (
	"github.com/shopspring/decimal"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/waxline/waxmart/internal"
)

var _ = Describe("SettlementCalculator", func() {
	var calc *internal.SettlementCalculator

	BeforeEach(func() {
		calc = internal.NewSettlementCalculator(decimal.RequireFromString("0.04"))
	})
	Context("ComputeSettlement", func() {
		It("splits 500.00 into 20.00 fee and 480.00 payout", func() {
			s, err := calc.ComputeSettlement(decimal.RequireFromString("500.00"))
			Expect(err).ShouldNot(HaveOccurred())
			Expect(s.PlatformFeeAmount.StringFixed(2)).Should(Equal("20.00"))
			Expect(s.DistributorPayout.StringFixed(2)).Should(Equal("480.00"))
		})
		It("returns zero fee and zero payout for a zero total", func() {
			s, err := calc.ComputeSettlement(decimal.Zero)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(s.PlatformFeeAmount.IsZero()).Should(BeTrue())
			Expect(s.DistributorPayout.IsZero()).Should(BeTrue())
		})
		It("rounds the fee half-up to the smallest currency unit", func() {
			// 10.63 × 0.04 = 0.4252
			s, err := calc.ComputeSettlement(decimal.RequireFromString("10.63"))
			Expect(err).ShouldNot(HaveOccurred())
			Expect(s.PlatformFeeAmount.StringFixed(2)).Should(Equal("0.43"))
			Expect(s.DistributorPayout.StringFixed(2)).Should(Equal("10.20"))
		})
		It("rounds a midpoint fee up", func() {
			// 10.125 × 0.04 = 0.405
			s, err := calc.ComputeSettlement(decimal.RequireFromString("10.125"))
			Expect(err).ShouldNot(HaveOccurred())
			Expect(s.PlatformFeeAmount.StringFixed(2)).Should(Equal("0.41"))
		})
		It("fee and payout always sum back to the total", func() {
			for _, t := range []string{"0.01", "19.99", "123.45", "9999.99"} {
				total := decimal.RequireFromString(t)
				s, err := calc.ComputeSettlement(total)
				Expect(err).ShouldNot(HaveOccurred())
				Expect(s.PlatformFeeAmount.Add(s.DistributorPayout).Equal(total)).Should(BeTrue())
			}
		})
		It("rejects a negative total", func() {
			_, err := calc.ComputeSettlement(decimal.RequireFromString("-1"))
			Expect(err).Should(Equal(internal.ErrValidation))
		})
		It("respects a configured fee rate", func() {
			tenPercent := internal.NewSettlementCalculator(decimal.RequireFromString("0.10"))
			s, err := tenPercent.ComputeSettlement(decimal.RequireFromString("500.00"))
			Expect(err).ShouldNot(HaveOccurred())
			Expect(s.PlatformFeeAmount.StringFixed(2)).Should(Equal("50.00"))
		})
	})
})
