package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/grichal/desingPatterns/internal/command"
	"github.com/grichal/desingPatterns/internal/order"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the sample orders through both managers",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		runDemo(cmd.OutOrStdout())
	},
}

func runDemo(w io.Writer) {
	fmt.Fprintln(w, "== direct manager")
	manager := order.NewManager()
	fmt.Fprintln(w, manager.PlaceOrder("yuca", "311"))
	fmt.Fprintln(w, manager.TrackOrder("311"))
	fmt.Fprintln(w, manager.CancelOrder("311"))
	fmt.Fprintf(w, "orders: %v\n", manager.Orders())

	fmt.Fprintln(w, "== command manager")
	prev := command.SetOutput(w)
	defer command.SetOutput(prev)

	manager2 := command.NewManager()
	manager2.Execute(command.PlaceOrderCommand("Pad Thai", "1234"))
	manager2.Execute(command.TrackOrderCommand("1234"))
	manager2.Execute(command.CancelOrderCommand("1234"))
	fmt.Fprintf(w, "orders: %v\n", manager2.Orders())
}
