package simulation

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/sumblock/block/addsub"
	"github.com/sarchlab/sumblock/datarecording"
	"github.com/sarchlab/sumblock/numeric"
	"github.com/sarchlab/sumblock/sim"
)

func buildBlock(engine sim.Engine, name string, steps [][]int64) *addsub.Comp {
	block, err := addsub.MakeBuilder().
		WithEngine(engine).
		WithOperandType(0, numeric.Uint8).
		WithOperandType(1, numeric.Uint8).
		WithSource(addsub.NewSliceSource(steps)).
		Build(name)
	Expect(err).NotTo(HaveOccurred())

	return block
}

var _ = Describe("Simulation", func() {
	var simulation *Simulation

	BeforeEach(func() {
		var err error
		simulation, err = MakeBuilder().Build()
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		Expect(simulation.Terminate()).To(Succeed())
	})

	It("should have an ID and an engine", func() {
		Expect(simulation.ID()).NotTo(BeEmpty())
		Expect(simulation.GetEngine()).NotTo(BeNil())
		Expect(simulation.GetDataRecorder()).To(BeNil())
		Expect(simulation.GetMonitor()).To(BeNil())
	})

	It("should register a component", func() {
		block := buildBlock(simulation.GetEngine(), "Sum", nil)

		simulation.RegisterComponent(block)

		Expect(simulation.GetComponentByName("Sum")).To(BeIdenticalTo(block))
		Expect(simulation.GetComponentByName("Other")).To(BeNil())
		Expect(simulation.Components()).To(HaveLen(1))
	})

	It("should reject duplicated names", func() {
		simulation.RegisterComponent(
			buildBlock(simulation.GetEngine(), "Sum", nil))

		Expect(func() {
			simulation.RegisterComponent(
				buildBlock(simulation.GetEngine(), "Sum", nil))
		}).To(Panic())
	})

	It("should reject recording options without recording", func() {
		Expect(func() {
			_, _ = MakeBuilder().WithOutputRecording().Build()
		}).To(Panic())
		Expect(func() {
			_, _ = MakeBuilder().WithMonitorPort(8080).Build()
		}).To(Panic())
	})
})

var _ = Describe("Simulation with recording and monitoring", func() {
	It("should record the blocks and serve them", func() {
		dbPath := filepath.Join(GinkgoT().TempDir(), "run")

		simulation, err := MakeBuilder().
			WithRecording().
			WithOutputRecording().
			WithOutputFileName(dbPath).
			WithMonitoring().
			Build()
		Expect(err).NotTo(HaveOccurred())
		Expect(simulation.MonitorPort()).To(BeNumerically(">", 0))

		block := buildBlock(simulation.GetEngine(), "Sum",
			[][]int64{{200, 100}, {1, 2}})
		simulation.RegisterComponent(block)

		block.TickLater()
		Expect(simulation.GetEngine().Run()).To(Succeed())

		rsp, err := http.Get(fmt.Sprintf(
			"http://localhost:%d/api/list_components",
			simulation.MonitorPort()))
		Expect(err).NotTo(HaveOccurred())
		body, err := io.ReadAll(rsp.Body)
		Expect(err).NotTo(HaveOccurred())
		rsp.Body.Close()
		Expect(string(body)).To(MatchJSON(`["Sum"]`))

		Expect(simulation.Terminate()).To(Succeed())

		reader := datarecording.NewReader(dbPath + ".sqlite3")
		defer reader.Close()

		reader.MapTable(datarecording.OutputTableName,
			datarecording.OutputEntry{})
		_, outputs, err := reader.Query(context.Background(),
			datarecording.OutputTableName, datarecording.QueryParams{})
		Expect(err).NotTo(HaveOccurred())
		Expect(outputs).To(Equal(2))
	})
})
