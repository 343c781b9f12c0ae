package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/pkg/browser"
	"github.com/spf13/cobra"

	"github.com/sarchlab/sumblock/block/addsub"
	"github.com/sarchlab/sumblock/sim"
	"github.com/sarchlab/sumblock/simulation"
)

func newRunCommand() *cobra.Command {
	runCmd := &cobra.Command{
		Use:   "run [scenario]",
		Short: "Run a scenario and print the output of every step.",
		Long: "Run a scenario and print the output of every step as " +
			"`time, value, status`. Warnings and errors go to stderr.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			envFile, _ := cmd.Flags().GetString("env-file")

			cfg, err := LoadConfig(envFile)
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			overrideBool(flags, "record", &cfg.Record)
			overrideString(flags, "record-path", &cfg.RecordPath)
			overrideBool(flags, "record-outputs", &cfg.RecordOutputs)
			overrideBool(flags, "monitor", &cfg.Monitor)
			overrideInt(flags, "monitor-port", &cfg.MonitorPort)
			overrideBool(flags, "open-monitor", &cfg.OpenMonitor)
			overrideBool(flags, "hold", &cfg.Hold)
			overrideBool(flags, "log-events", &cfg.LogEvents)

			if len(args) == 1 {
				cfg.Scenario = args[0]
			}

			return Run(cmd.Context(), cfg, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	flags := runCmd.Flags()
	flags.Bool("record", false, "record overflows into a SQLite database")
	flags.String("record-path", "",
		"database path without the .sqlite3 suffix, generated if empty")
	flags.Bool("record-outputs", false, "also record the output of every step")
	flags.Bool("monitor", false, "serve the monitoring page during the run")
	flags.Int("monitor-port", 0, "port of the monitoring page, random if 0")
	flags.Bool("open-monitor", false, "open the monitoring page in a browser")
	flags.Bool("hold", false,
		"keep the monitor running after the simulation until interrupted")
	flags.Bool("log-events", false, "log every simulation event to stderr")

	return runCmd
}

// Run executes the scenario of cfg. Outputs are written to out and
// diagnostics to errOut. It returns the error that stopped the block, if any.
func Run(ctx context.Context, cfg Config, out, errOut io.Writer) error {
	if cfg.Scenario == "" {
		return errors.New("scenario path is required")
	}

	scenario, err := LoadScenario(cfg.Scenario)
	if err != nil {
		return err
	}

	s, err := buildSimulation(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := s.Terminate(); err != nil {
			fmt.Fprintf(errOut, "Failed to terminate the simulation: %v\n", err)
		}
	}()

	engine := s.GetEngine()
	if cfg.LogEvents {
		engine.AcceptHook(sim.NewEventLogger(log.New(errOut, "", 0)))
	}

	source := addsub.NewSliceSource(scenario.Steps)

	builder, err := scenario.Builder(engine, source, &stepPrinter{out: out})
	if err != nil {
		return err
	}

	block, err := builder.Build(scenario.Name)
	if err != nil {
		return err
	}

	block.AcceptHook(addsub.NewOverflowLogger(log.New(errOut, "", 0)))
	s.RegisterComponent(block)

	if m := s.GetMonitor(); m != nil {
		bar := m.CreateProgressBar(block.Name(), uint64(len(scenario.Steps)))
		block.AcceptHook(bar)
		defer m.CompleteProgressBar(bar)

		if cfg.OpenMonitor {
			openMonitor(s.MonitorPort(), errOut)
		}
	}

	block.TickLater()

	if err := engine.Run(); err != nil {
		return err
	}

	engine.Finished()

	if cfg.Monitor && cfg.Hold {
		fmt.Fprintln(errOut, "Simulation finished. Press Ctrl+C to exit.")
		<-ctx.Done()
	}

	if err := block.Err(); err != nil {
		return fmt.Errorf("block %s stopped: %w", block.Name(), err)
	}

	return nil
}

func buildSimulation(cfg Config) (*simulation.Simulation, error) {
	b := simulation.MakeBuilder()

	if cfg.Record {
		b = b.WithRecording().WithOutputFileName(cfg.RecordPath)
		if cfg.RecordOutputs {
			b = b.WithOutputRecording()
		}
	}

	if cfg.Monitor {
		b = b.WithMonitoring().WithMonitorPort(cfg.MonitorPort)
	}

	return b.Build()
}

func openMonitor(port int, errOut io.Writer) {
	url := fmt.Sprintf("http://localhost:%d", port)
	if err := browser.OpenURL(url); err != nil {
		fmt.Fprintf(errOut, "Failed to open %s: %v\n", url, err)
	}
}

// stepPrinter is a Sink that prints every output.
type stepPrinter struct {
	out io.Writer
}

func (p *stepPrinter) Accept(now sim.VTimeInSec, result addsub.Result) {
	fmt.Fprintf(p.out, "%.10f, %d, %s\n", now, result.Value, result.Status)
}
