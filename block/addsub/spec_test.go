package addsub

import (
	"errors"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func invalidField(err error) string {
	var invalid *InvalidConfigError
	if errors.As(err, &invalid) {
		return invalid.Field
	}

	return ""
}

var _ = Describe("ValidateConfig", func() {
	It("should accept every sign string of 2 to 255 signs", func() {
		for n := MinOperands; n <= MaxOperands; n++ {
			raw := strings.Repeat("+-", n)[:n]

			spec, err := ValidateConfig(raw, false, 1)

			Expect(err).NotTo(HaveOccurred())
			Expect(spec.NumOperands()).To(Equal(n))
			Expect(spec.SignString()).To(Equal(raw))
		}
	})

	It("should parse signs in order", func() {
		spec, err := ValidateConfig("+-+", true, "error")

		Expect(err).NotTo(HaveOccurred())
		Expect(spec.Signs).To(Equal([]Sign{Plus, Minus, Plus}))
		Expect(spec.SaturateOnOverflow).To(BeTrue())
		Expect(spec.OverflowPolicy).To(Equal(PolicyError))
	})

	DescribeTable("rejecting sign strings",
		func(raw any) {
			_, err := ValidateConfig(raw, false, 1)
			Expect(invalidField(err)).To(Equal("signs"))
		},
		Entry("too short", "+"),
		Entry("empty", ""),
		Entry("too long", strings.Repeat("+", MaxOperands+1)),
		Entry("other character", "+*"),
		Entry("pipe separator", "|++"),
		Entry("space", "+ -"),
		Entry("not a string", 42),
		Entry("nil", nil),
		Entry("bad sign slice", []Sign{Plus, Sign(7)}),
	)

	It("should accept a sign slice and copy it", func() {
		signs := []Sign{Minus, Plus}

		spec, err := ValidateConfig(signs, false, PolicyWarn)
		signs[0] = Plus

		Expect(err).NotTo(HaveOccurred())
		Expect(spec.Signs).To(Equal([]Sign{Minus, Plus}))
	})

	DescribeTable("saturation flags",
		func(raw any, expected bool) {
			spec, err := ValidateConfig("++", raw, 1)
			Expect(err).NotTo(HaveOccurred())
			Expect(spec.SaturateOnOverflow).To(Equal(expected))
		},
		Entry("bool true", true, true),
		Entry("bool false", false, false),
		Entry("float one", 1.0, true),
		Entry("float zero", 0.0, false),
		Entry("int", 3, true),
		Entry("uint8", uint8(0), false),
		Entry("string", "true", true),
		Entry("string zero", "0", false),
		Entry("matrix", []float64{1}, true),
		Entry("bool matrix", []bool{false}, false),
	)

	DescribeTable("rejecting saturation flags",
		func(raw any) {
			_, err := ValidateConfig("++", raw, 1)
			Expect(invalidField(err)).To(Equal("saturate"))
		},
		Entry("vector", []float64{1, 0}),
		Entry("empty matrix", []bool{}),
		Entry("word", "maybe"),
		Entry("nil", nil),
		Entry("struct", struct{}{}),
	)

	DescribeTable("overflow policies",
		func(raw any, expected OverflowPolicy) {
			spec, err := ValidateConfig("++", false, raw)
			Expect(err).NotTo(HaveOccurred())
			Expect(spec.OverflowPolicy).To(Equal(expected))
		},
		Entry("index 1", 1, PolicySilent),
		Entry("index 2", 2.0, PolicyWarn),
		Entry("index 3", uint8(3), PolicyError),
		Entry("none", "None", PolicySilent),
		Entry("silent", "silent", PolicySilent),
		Entry("warning", "Warning", PolicyWarn),
		Entry("warn", "warn", PolicyWarn),
		Entry("error", "ERROR", PolicyError),
		Entry("typed", PolicyWarn, PolicyWarn),
	)

	DescribeTable("rejecting overflow policies",
		func(raw any) {
			_, err := ValidateConfig("++", false, raw)
			Expect(invalidField(err)).To(Equal("overflowPolicy"))
		},
		Entry("zero", 0),
		Entry("four", 4),
		Entry("fraction", 2.5),
		Entry("unknown name", "panic"),
		Entry("out of range typed", OverflowPolicy(9)),
		Entry("nil", nil),
	)
})

var _ = Describe("Spec", func() {
	It("should validate the defaults", func() {
		Expect(Defaults().Validate()).To(Succeed())
	})

	It("should reject a bad policy", func() {
		spec := Defaults()
		spec.OverflowPolicy = 0

		Expect(invalidField(spec.Validate())).To(Equal("overflowPolicy"))
	})

	It("should produce the parameter table", func() {
		spec, err := ValidateConfig("+-+", true, 2)
		Expect(err).NotTo(HaveOccurred())

		table := spec.ParamTable()

		Expect(table.Signs).To(Equal([]string{"+", "-", "+"}))
		Expect(table.IsOverflowSaturation).To(BeTrue())
		Expect(table.SignsVector()).To(Equal(`["+", "-", "+"]`))
	})
})
