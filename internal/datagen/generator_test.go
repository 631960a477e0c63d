package datagen

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gonum.org/v1/gonum/stat"
)

var _ = Describe("Generator", func() {

	Describe("Sample", func() {
		It("should draw the requested number of observations", func() {
			gen, err := New(10.0, 1.0, 1)
			Expect(err).NotTo(HaveOccurred())

			obs, err := gen.Sample(25)
			Expect(err).NotTo(HaveOccurred())
			Expect(obs).To(HaveLen(25))
		})

		It("should be deterministic for a fixed seed", func() {
			a, err := New(0.0, 2.0, 42)
			Expect(err).NotTo(HaveOccurred())
			b, err := New(0.0, 2.0, 42)
			Expect(err).NotTo(HaveOccurred())

			obsA, err := a.Sample(100)
			Expect(err).NotTo(HaveOccurred())
			obsB, err := b.Sample(100)
			Expect(err).NotTo(HaveOccurred())
			Expect(obsA).To(Equal(obsB))
		})

		It("should produce different draws for different seeds", func() {
			a, err := New(0.0, 2.0, 1)
			Expect(err).NotTo(HaveOccurred())
			b, err := New(0.0, 2.0, 2)
			Expect(err).NotTo(HaveOccurred())

			obsA, err := a.Sample(10)
			Expect(err).NotTo(HaveOccurred())
			obsB, err := b.Sample(10)
			Expect(err).NotTo(HaveOccurred())
			Expect(obsA).NotTo(Equal(obsB))
		})

		It("should roughly reproduce the ground-truth moments", func() {
			gen, err := New(5.0, 1.5, 7)
			Expect(err).NotTo(HaveOccurred())

			obs, err := gen.Sample(20000)
			Expect(err).NotTo(HaveOccurred())

			Expect(stat.Mean(obs, nil)).To(BeNumerically("~", 5.0, 0.1))
			Expect(stat.Variance(obs, nil)).To(BeNumerically("~", 2.25, 0.2))
		})

		It("should reject a non-positive sample count", func() {
			gen, err := New(0.0, 1.0, 1)
			Expect(err).NotTo(HaveOccurred())

			_, err = gen.Sample(0)
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("New", func() {
		It("should reject a non-positive standard deviation", func() {
			_, err := New(0.0, 0.0, 1)
			Expect(err).To(HaveOccurred())

			_, err = New(0.0, -1.0, 1)
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("Truth", func() {
		It("should report the ground-truth mean and precision", func() {
			gen, err := New(3.0, 2.0, 1)
			Expect(err).NotTo(HaveOccurred())

			mean, precision := gen.Truth()
			Expect(mean).To(Equal(3.0))
			Expect(precision).To(Equal(0.25))
		})
	})
})
