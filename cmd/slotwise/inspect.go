package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/voxkit/slotwise/internal/cli"
	"github.com/voxkit/slotwise/internal/inspect"
	"github.com/voxkit/slotwise/internal/presentation/tui"
)

// inspectCmd renders the full resolution picture of an envelope: every slot,
// every authority, every candidate value.
var inspectCmd = &cobra.Command{
	Use:   "inspect <envelope>",
	Short: "Show all slots and their resolution authorities",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		plain, _ := cmd.Flags().GetBool("plain")

		envelope, err := cli.LoadEnvelope(args[0])
		if err != nil {
			return err
		}

		markdown := inspect.Build(envelope).Markdown()

		// Rendered output only on an interactive terminal; piped output
		// stays plain so it remains grep-able.
		if plain || !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Print(markdown)
			return nil
		}

		fmt.Println(tui.Header("slotwise"))
		render := tui.NewRenderer()
		out, err := render(markdown)
		if err != nil {
			// Fall back to the unrendered report rather than failing.
			fmt.Print(markdown)
			return nil
		}
		fmt.Print(out)
		return nil
	},
}

func init() {
	inspectCmd.Flags().Bool("plain", false, "disable markdown rendering")
	rootCmd.AddCommand(inspectCmd)
}
