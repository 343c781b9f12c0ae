package simulation

import (
	"github.com/rs/xid"

	"github.com/sarchlab/sumblock/datarecording"
	"github.com/sarchlab/sumblock/monitoring"
	"github.com/sarchlab/sumblock/sim"
)

// Builder can be used to build a simulation.
type Builder struct {
	monitorOn      bool
	monitorPort    int
	recordOn       bool
	recordOutputs  bool
	outputFileName string
}

// MakeBuilder creates a new builder. By default, the simulation neither
// records nor serves a monitor.
func MakeBuilder() Builder {
	return Builder{}
}

// WithMonitoring makes the simulation serve the monitoring page.
func (b Builder) WithMonitoring() Builder {
	b.monitorOn = true
	return b
}

// WithMonitorPort sets the port number for the monitoring server.
func (b Builder) WithMonitorPort(port int) Builder {
	b.monitorPort = port
	return b
}

// WithRecording makes the simulation record the overflows of its blocks.
func (b Builder) WithRecording() Builder {
	b.recordOn = true
	return b
}

// WithOutputRecording also records the output of every step.
func (b Builder) WithOutputRecording() Builder {
	b.recordOutputs = true
	return b
}

// WithOutputFileName sets the custom output file name for the data recorder.
func (b Builder) WithOutputFileName(filename string) Builder {
	b.outputFileName = filename
	return b
}

func (b Builder) parametersMustBeValid() {
	if !b.monitorOn && b.monitorPort != 0 {
		panic("monitor port cannot be set when monitoring is disabled")
	}

	if !b.recordOn && (b.recordOutputs || b.outputFileName != "") {
		panic("recording options cannot be set when recording is disabled")
	}
}

// Build builds the simulation and starts the monitor if it is enabled.
func (b Builder) Build() (*Simulation, error) {
	b.parametersMustBeValid()

	s := &Simulation{
		id:            xid.New().String(),
		compNameIndex: make(map[string]int),
		engine:        sim.NewSerialEngine(),
	}

	if b.recordOn {
		outputPath := b.outputFileName
		if outputPath == "" {
			outputPath = "sumblock_sim_" + s.id
		}

		s.dataRecorder = datarecording.New(outputPath)
		s.overflowRecorder = datarecording.NewOverflowRecorder(s.dataRecorder)
		s.overflowRecorder.RecordOutputs = b.recordOutputs
	}

	if b.monitorOn {
		s.monitor = monitoring.NewMonitor().WithPortNumber(b.monitorPort)
		s.monitor.RegisterEngine(s.engine)

		port, err := s.monitor.StartServer()
		if err != nil {
			s.closeRecorder()
			return nil, err
		}

		s.monitorPort = port
	}

	return s, nil
}
