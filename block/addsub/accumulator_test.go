package addsub

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"

	"github.com/sarchlab/sumblock/numeric"
)

func uniformTypes(n int, k numeric.Kind) Types {
	t := Types{Operands: make([]numeric.Kind, n), Output: k}
	for i := range t.Operands {
		t.Operands[i] = k
	}

	return t
}

var _ = Describe("State", func() {
	var (
		mockCtrl *gomock.Controller
		reporter *MockOverflowReporter
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		reporter = NewMockOverflowReporter(mockCtrl)
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	newState := func(signs string, saturate bool, policy OverflowPolicy) *State {
		spec, err := ValidateConfig(signs, saturate, policy)
		Expect(err).NotTo(HaveOccurred())

		return NewState(spec)
	}

	It("should add and subtract in sign order", func() {
		s := newState("+-+", false, PolicyWarn)

		result, err := s.Evaluate(
			uniformTypes(3, numeric.Int16), []int64{10, 3, 2}, 0, reporter)

		Expect(err).NotTo(HaveOccurred())
		Expect(result.Value).To(Equal(int64(9)))
		Expect(result.Status).To(Equal(numeric.StatusNormal))
	})

	It("should negate a leading minus operand", func() {
		s := newState("-+", false, PolicyWarn)

		result, err := s.Evaluate(
			uniformTypes(2, numeric.Int8), []int64{5, 2}, 0, reporter)

		Expect(err).NotTo(HaveOccurred())
		Expect(result.Value).To(Equal(int64(-3)))
	})

	It("should saturate without reporting", func() {
		s := newState("++", true, PolicyError)

		result, err := s.Evaluate(
			uniformTypes(2, numeric.Uint8), []int64{200, 100}, 0, reporter)

		Expect(err).NotTo(HaveOccurred())
		Expect(result).To(Equal(Result{
			Value:  255,
			Status: numeric.StatusOverflow,
		}))
	})

	It("should saturate an unsigned underflow to zero", func() {
		s := newState("+-", true, PolicyWarn)

		result, err := s.Evaluate(
			uniformTypes(2, numeric.Uint8), []int64{3, 10}, 0, reporter)

		Expect(err).NotTo(HaveOccurred())
		Expect(result.Value).To(Equal(int64(0)))
		Expect(result.Status).To(Equal(numeric.StatusUnderflow))
	})

	It("should keep the first non-normal status", func() {
		s := newState("++-", true, PolicyWarn)

		result, err := s.Evaluate(
			uniformTypes(3, numeric.Int8), []int64{-100, -100, -100}, 0, reporter)

		Expect(err).NotTo(HaveOccurred())
		Expect(result.Value).To(Equal(int64(-28)))
		Expect(result.Status).To(Equal(numeric.StatusUnderflow))
	})

	It("should wrap silently", func() {
		s := newState("++", false, PolicySilent)
		reporter.EXPECT().ReportOverflow(OverflowEvent{
			Operand: 2,
			Op:      numeric.OpAdd,
			Status:  numeric.StatusOverflow,
			Time:    2,
			Policy:  PolicySilent,
		})

		result, err := s.Evaluate(
			uniformTypes(2, numeric.Uint8), []int64{200, 100}, 2, reporter)

		Expect(err).NotTo(HaveOccurred())
		Expect(result.Value).To(Equal(int64(44)))
		Expect(s.HasWarnedOnce).To(BeFalse())
	})

	It("should wrap signed results with sign extension", func() {
		s := newState("+-", false, PolicySilent)
		reporter.EXPECT().ReportOverflow(gomock.Any())

		result, err := s.Evaluate(
			uniformTypes(2, numeric.Int8), []int64{100, -100}, 0, reporter)

		Expect(err).NotTo(HaveOccurred())
		Expect(result.Value).To(Equal(int64(-56)))
		Expect(result.Status).To(Equal(numeric.StatusOverflow))
	})

	It("should warn only once per block", func() {
		s := newState("++", false, PolicyWarn)
		types := uniformTypes(2, numeric.Uint8)

		var overflows []OverflowEvent
		reporter.EXPECT().
			ReportOverflow(gomock.Any()).
			Do(func(evt OverflowEvent) { overflows = append(overflows, evt) }).
			Times(2)
		reporter.EXPECT().
			ReportWarning(gomock.Any()).
			Do(func(evt OverflowEvent) {
				Expect(evt.WarningMessage()).To(Equal(
					"Wrap on overflow detected when adding inport 2 " +
						"at time 1.500000."))
			})

		first, err := s.Evaluate(types, []int64{200, 100}, 1.5, reporter)
		Expect(err).NotTo(HaveOccurred())
		second, err := s.Evaluate(types, []int64{255, 1}, 2.5, reporter)
		Expect(err).NotTo(HaveOccurred())

		Expect(first.Value).To(Equal(int64(44)))
		Expect(second.Value).To(Equal(int64(0)))
		Expect(s.HasWarnedOnce).To(BeTrue())
		Expect(overflows).To(HaveLen(2))
		Expect(overflows[0].Warned).To(BeTrue())
		Expect(overflows[1].Warned).To(BeFalse())
	})

	It("should not share the warning latch between blocks", func() {
		spec, err := ValidateConfig("++", false, PolicyWarn)
		Expect(err).NotTo(HaveOccurred())
		a, b := NewState(spec), NewState(spec)

		reporter.EXPECT().ReportOverflow(gomock.Any()).Times(2)
		reporter.EXPECT().ReportWarning(gomock.Any()).Times(2)

		types := uniformTypes(2, numeric.Uint8)
		_, err = a.Evaluate(types, []int64{200, 100}, 0, reporter)
		Expect(err).NotTo(HaveOccurred())
		_, err = b.Evaluate(types, []int64{200, 100}, 0, reporter)
		Expect(err).NotTo(HaveOccurred())
	})

	It("should fail the step under the error policy", func() {
		s := newState("+-", false, PolicyError)
		reporter.EXPECT().ReportOverflow(gomock.Any())

		_, err := s.Evaluate(
			uniformTypes(2, numeric.Uint8), []int64{3, 10}, 0.25, reporter)

		var overflow *OverflowError
		Expect(errors.As(err, &overflow)).To(BeTrue())
		Expect(overflow.Operand).To(Equal(2))
		Expect(overflow.Operation()).To(Equal("subtracting"))
		Expect(overflow.Status).To(Equal(numeric.StatusUnderflow))
		Expect(overflow.Message()).To(Equal(
			"Error: underflow detected when subtracting inport 2 " +
				"at time 0.250000."))
	})

	It("should rescale fixed-point operands to Q31", func() {
		s := newState("++", false, PolicyWarn)
		types := Types{
			Operands: []numeric.Kind{numeric.FixQ15, numeric.FixQ15},
			Output:   numeric.FixQ15,
		}

		result, err := s.Evaluate(types, []int64{1 << 13, 1 << 13}, 0, reporter)

		Expect(err).NotTo(HaveOccurred())
		Expect(result.Value).To(Equal(int64(1 << 30)))
	})

	It("should saturate fixed-point results to the Q31 range", func() {
		s := newState("++", true, PolicyWarn)
		types := Types{
			Operands: []numeric.Kind{numeric.FixQ15, numeric.FixQ31},
			Output:   numeric.FixQ31,
		}

		result, err := s.Evaluate(
			types, []int64{1 << 15, 1 << 30}, 0, reporter)

		Expect(err).NotTo(HaveOccurred())
		Expect(result.Value).To(Equal(int64(1<<31 - 1)))
		Expect(result.Status).To(Equal(numeric.StatusOverflow))
	})

	It("should accept signed operands with an unsigned output", func() {
		s := newState("++", true, PolicyWarn)
		types := Types{
			Operands: []numeric.Kind{numeric.Uint8, numeric.Int8},
			Output:   numeric.Uint8,
		}

		result, err := s.Evaluate(types, []int64{10, -20}, 0, reporter)

		Expect(err).NotTo(HaveOccurred())
		Expect(result.Value).To(Equal(int64(0)))
		Expect(result.Status).To(Equal(numeric.StatusUnderflow))
	})

	It("should reject a wrong number of values", func() {
		s := newState("++", false, PolicyWarn)

		_, err := s.Evaluate(
			uniformTypes(2, numeric.Int8), []int64{1}, 0, reporter)

		Expect(err).To(MatchError(ErrOperandCount))
	})

	It("should reject values outside the operand kind", func() {
		s := newState("++", false, PolicyWarn)

		_, err := s.Evaluate(
			uniformTypes(2, numeric.Int8), []int64{1, 128}, 0, reporter)

		Expect(err).To(MatchError(ErrOperandValue))
	})

	It("should reject mixed integer and fixed-point kinds", func() {
		s := newState("++", false, PolicyWarn)
		types := Types{
			Operands: []numeric.Kind{numeric.Int16, numeric.Int16},
			Output:   numeric.FixQ31,
		}

		_, err := s.Evaluate(types, []int64{3, 4}, 0, reporter)

		var incompatible *IncompatibleTypesError
		Expect(errors.As(err, &incompatible)).To(BeTrue())
		Expect(incompatible.Existing.Position).To(Equal(1))
		Expect(incompatible.Proposed.Position).To(Equal(OutputPosition))
	})

	It("should reject unsupported kinds", func() {
		s := newState("++", false, PolicyWarn)
		bad := numeric.Integer(0, true)
		types := Types{
			Operands: []numeric.Kind{bad, bad},
			Output:   numeric.Int16,
		}

		_, err := s.Evaluate(types, []int64{1, 2}, 0, reporter)

		Expect(err).To(MatchError(numeric.ErrUnsupportedKind))
	})

	It("should accept a nil reporter", func() {
		s := newState("++", false, PolicyWarn)

		result, err := s.Evaluate(
			uniformTypes(2, numeric.Uint8), []int64{200, 100}, 0, nil)

		Expect(err).NotTo(HaveOccurred())
		Expect(result.Value).To(Equal(int64(44)))
		Expect(s.HasWarnedOnce).To(BeTrue())
	})
})
