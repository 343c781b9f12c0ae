// Package simulation bundles the engine, the data recorder and the monitor
// that a run needs.
package simulation

import (
	"context"
	"errors"

	"github.com/sarchlab/sumblock/datarecording"
	"github.com/sarchlab/sumblock/monitoring"
	"github.com/sarchlab/sumblock/sim"
)

// A Simulation provides the service requires to define a simulation.
type Simulation struct {
	id     string
	engine *sim.SerialEngine

	dataRecorder     datarecording.DataRecorder
	overflowRecorder *datarecording.OverflowRecorder
	monitor          *monitoring.Monitor
	monitorPort      int

	components    []sim.Component
	compNameIndex map[string]int
}

// ID returns the unique ID of the simulation.
func (s *Simulation) ID() string {
	return s.id
}

// GetEngine returns the engine used in the simulation.
func (s *Simulation) GetEngine() sim.Engine {
	return s.engine
}

// GetDataRecorder returns the data recorder used in the simulation. It is nil
// if recording is disabled.
func (s *Simulation) GetDataRecorder() datarecording.DataRecorder {
	return s.dataRecorder
}

// GetMonitor returns the monitor used in the simulation. It is nil if
// monitoring is disabled.
func (s *Simulation) GetMonitor() *monitoring.Monitor {
	return s.monitor
}

// MonitorPort returns the port the monitor listens on.
func (s *Simulation) MonitorPort() int {
	return s.monitorPort
}

// RegisterComponent registers a component with the simulation. The component
// is shown by the monitor, and its overflows are recorded if the component
// accepts hooks.
func (s *Simulation) RegisterComponent(c sim.Component) {
	compName := c.Name()
	if _, found := s.compNameIndex[compName]; found {
		panic("component " + compName + " already registered")
	}

	s.components = append(s.components, c)
	s.compNameIndex[compName] = len(s.components) - 1

	if s.monitor != nil {
		s.monitor.RegisterComponent(c)
	}

	if s.overflowRecorder != nil {
		c.AcceptHook(s.overflowRecorder)
	}
}

// GetComponentByName returns the component with the given name, or nil.
func (s *Simulation) GetComponentByName(name string) sim.Component {
	index, found := s.compNameIndex[name]
	if !found {
		return nil
	}

	return s.components[index]
}

// Components returns all the registered components.
func (s *Simulation) Components() []sim.Component {
	return append([]sim.Component(nil), s.components...)
}

// Terminate stops the monitor and closes the data recorder.
func (s *Simulation) Terminate() error {
	var errs []error

	if s.monitor != nil {
		errs = append(errs, s.monitor.StopServer(context.Background()))
	}

	errs = append(errs, s.closeRecorder())

	return errors.Join(errs...)
}

func (s *Simulation) closeRecorder() error {
	if s.dataRecorder == nil {
		return nil
	}

	return s.dataRecorder.Close()
}
