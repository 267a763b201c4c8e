package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"tlog.app/go/tlog"

	"github.com/quantir/quantir/internal/ir"
	"github.com/quantir/quantir/internal/loader"
)

// PlatformSummary is the JSON shape of the platform command output.
type PlatformSummary struct {
	Name         string   `json:"name"`
	Qubits       uint64   `json:"qubits"`
	Types        []string `json:"types"`
	Objects      []string `json:"objects"`
	Instructions []string `json:"instructions"`
	Functions    []string `json:"functions"`
}

// NewPlatformCommand creates the platform command, which loads a platform
// descriptor and dumps the resulting registries.
func NewPlatformCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "platform <descriptor.yaml>",
		Short: "Load a platform descriptor and dump its registries",
		Long: `Load a YAML platform descriptor, build the typed platform from it,
and print the data types, registers, instruction types, and function
types it declares, in registry (name) order.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlatform(rootOpts, args[0], cmd)
		},
	}
	return cmd
}

func runPlatform(opts *RootOptions, path string, cmd *cobra.Command) error {
	root, err := loader.LoadFile(path)
	if err != nil {
		return err
	}

	summary := summarize(root)
	tlog.Printw("loaded platform",
		"name", summary.Name,
		"types", len(summary.Types),
		"objects", len(summary.Objects),
		"instructions", len(summary.Instructions),
		"functions", len(summary.Functions))

	out := cmd.OutOrStdout()
	if opts.Format == "json" {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(summary)
	}

	if summary.Name != "" {
		fmt.Fprintf(out, "platform %s\n", summary.Name)
	} else {
		fmt.Fprintln(out, "anonymous platform")
	}
	fmt.Fprintf(out, "qubits: %d\n", summary.Qubits)
	printSection(out, "types", summary.Types)
	printSection(out, "objects", summary.Objects)
	printSection(out, "instructions", summary.Instructions)
	printSection(out, "functions", summary.Functions)
	return nil
}

func summarize(root *ir.Root) *PlatformSummary {
	summary := &PlatformSummary{Name: root.Platform.Name}
	if root.Platform.Qubits != nil && len(root.Platform.Qubits.Shape) == 1 {
		summary.Qubits = root.Platform.Qubits.Shape[0]
	}
	for _, typ := range root.Platform.DataTypes {
		summary.Types = append(summary.Types, typ.TypeName())
	}
	for _, obj := range root.Platform.Objects {
		summary.Objects = append(summary.Objects, ir.Describe(obj))
	}
	for _, ityp := range root.Platform.Instructions {
		summary.Instructions = append(summary.Instructions, ir.Describe(ityp))
	}
	for _, fn := range root.Platform.Functions {
		summary.Functions = append(summary.Functions, ir.Describe(fn))
	}
	return summary
}

func printSection(out io.Writer, title string, entries []string) {
	fmt.Fprintf(out, "%s (%d):\n", title, len(entries))
	for _, entry := range entries {
		fmt.Fprintf(out, "  %s\n", entry)
	}
}
