package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/grichal/desingPatterns/internal/script"
)

var runCmd = &cobra.Command{
	Use:   "run <script.yaml>",
	Short: "Run a YAML script of place/track/cancel steps",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := script.Load(args[0])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		rep, err := script.Run(s, out)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "orders (%s): %v\n", rep.Manager, rep.Orders)
		return nil
	},
}
