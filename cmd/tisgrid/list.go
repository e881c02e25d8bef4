package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ezrec/tisgrid/node"
)

var listCmd = &cobra.Command{
	Use:   "list FILE...",
	Short: "Assemble programs and print their listings",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	asm := &node.Assembler{Verbose: verbose}
	for _, path := range args {
		inf, err := os.Open(path)
		if err != nil {
			return err
		}

		prog, err := asm.Parse(inf)
		inf.Close()
		if err != nil {
			return fmt.Errorf("%v: %w", path, err)
		}

		fmt.Fprintf(out, "%v:\n%v", path, prog)
	}

	return nil
}
