package cmd

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/sarchlab/sumblock/block/addsub"
	"github.com/sarchlab/sumblock/numeric"
	"github.com/sarchlab/sumblock/sim"
)

// Scenario describes one block and the operand values it is fed with.
//
//	name: Sum
//	signs: "+-"
//	saturate: true
//	overflow_policy: warning
//	operand_types: {1: int16}
//	output_type: int16
//	freq_hz: 1000
//	steps:
//	  - [1, 2]
//	  - [30000, -30000]
//
// saturate and overflow_policy take any form the block accepts, e.g. 1 or
// "true" for saturate and 1, 2, 3, "none", "warning" or "error" for the
// policy. operand_types is keyed by the 1-based inport number.
type Scenario struct {
	Name           string         `yaml:"name"`
	Signs          string         `yaml:"signs"`
	Saturate       any            `yaml:"saturate"`
	OverflowPolicy any            `yaml:"overflow_policy"`
	OperandTypes   map[int]string `yaml:"operand_types"`
	OutputType     string         `yaml:"output_type"`
	FreqHz         float64        `yaml:"freq_hz"`
	Steps          [][]int64      `yaml:"steps"`
}

// The scenario defaults.
const (
	DefaultBlockName = "Sum"
	DefaultFreq      = 1 * sim.GHz
)

var errNoSigns = errors.New("scenario has no signs")

// LoadScenario reads a YAML scenario file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return ParseScenario(data)
}

// ParseScenario decodes a YAML scenario and fills in the defaults.
func ParseScenario(data []byte) (*Scenario, error) {
	s := &Scenario{}

	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("parsing scenario: %w", err)
	}

	if s.Signs == "" {
		return nil, errNoSigns
	}

	if s.Name == "" {
		s.Name = DefaultBlockName
	}

	if s.Saturate == nil {
		s.Saturate = false
	}

	if s.OverflowPolicy == nil {
		s.OverflowPolicy = addsub.Defaults().OverflowPolicy
	}

	return s, nil
}

// Spec validates the block parameters of the scenario.
func (s *Scenario) Spec() (addsub.Spec, error) {
	return addsub.ValidateConfig(s.Signs, s.Saturate, s.OverflowPolicy)
}

// Freq returns the evaluation frequency of the block.
func (s *Scenario) Freq() sim.Freq {
	if s.FreqHz <= 0 {
		return DefaultFreq
	}

	return sim.Freq(s.FreqHz)
}

// Builder returns a block builder configured by the scenario. The block
// reads its operands from source.
func (s *Scenario) Builder(
	engine sim.Engine,
	source addsub.Source,
	sink addsub.Sink,
) (addsub.Builder, error) {
	spec, err := s.Spec()
	if err != nil {
		return addsub.Builder{}, err
	}

	b := addsub.MakeBuilder().
		WithEngine(engine).
		WithFreq(s.Freq()).
		WithSpec(spec).
		WithSource(source).
		WithSink(sink)

	inports := make([]int, 0, len(s.OperandTypes))
	for inport := range s.OperandTypes {
		inports = append(inports, inport)
	}
	sort.Ints(inports)

	for _, inport := range inports {
		k, err := numeric.ParseKind(s.OperandTypes[inport])
		if err != nil {
			return addsub.Builder{}, fmt.Errorf("inport %d: %w", inport, err)
		}

		b = b.WithOperandType(inport-1, k)
	}

	if s.OutputType != "" {
		k, err := numeric.ParseKind(s.OutputType)
		if err != nil {
			return addsub.Builder{}, fmt.Errorf("outport: %w", err)
		}

		b = b.WithOutputType(k)
	}

	return b, nil
}
