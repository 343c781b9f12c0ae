package sim

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("ComponentBase", func() {
	var (
		component *ComponentBase
	)

	BeforeEach(func() {
		component = NewComponentBase("Block[2].Sum")
	})

	It("should set and get name", func() {
		Expect(component.Name()).To(Equal("Block[2].Sum"))
	})

	It("should accept hooks", func() {
		component.AcceptHook(NewEventLogger(nil))

		Expect(component.NumHooks()).To(Equal(1))
	})

	It("should reject invalid names", func() {
		Expect(func() { NewComponentBase("test_comp") }).To(Panic())
	})
})
