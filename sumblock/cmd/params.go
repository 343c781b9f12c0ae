package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sarchlab/sumblock/block/addsub"
	"github.com/sarchlab/sumblock/sim"
)

func newParamsCommand() *cobra.Command {
	paramsCmd := &cobra.Command{
		Use:   "params scenario",
		Short: "Print the resolved parameters of the block of a scenario.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			asJSON, _ := cmd.Flags().GetBool("json")

			return PrintParams(args[0], asJSON, cmd.OutOrStdout())
		},
	}

	paramsCmd.Flags().Bool("json", false,
		"print the code generation parameter table as JSON")

	return paramsCmd
}

// PrintParams validates the block of a scenario, resolves its port types and
// prints its parameters.
func PrintParams(path string, asJSON bool, out io.Writer) error {
	scenario, err := LoadScenario(path)
	if err != nil {
		return err
	}

	builder, err := scenario.Builder(sim.NewSerialEngine(), nil, nil)
	if err != nil {
		return err
	}

	block, err := builder.Build(scenario.Name)
	if err != nil {
		return err
	}

	params := block.Spec.ParamTable()

	if asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")

		return enc.Encode(params)
	}

	printParams(out, block, params)

	return nil
}

func printParams(out io.Writer, block *addsub.Comp, params addsub.ParamTable) {
	kinds := make([]string, len(block.Types.Operands))
	for i, k := range block.Types.Operands {
		kinds[i] = k.Name()
	}

	fmt.Fprintf(out, "name: %s\n", block.Name())
	fmt.Fprintf(out, "signs: %s\n", params.SignsVector())
	fmt.Fprintf(out, "saturate: %t\n", params.IsOverflowSaturation)
	fmt.Fprintf(out, "overflow policy: %s\n", block.Spec.OverflowPolicy)
	fmt.Fprintf(out, "inports: %s\n", strings.Join(kinds, ", "))
	fmt.Fprintf(out, "outport: %s\n", block.Types.Output)
}
