package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/voxkit/slotwise"
	"github.com/voxkit/slotwise/internal/cli"
)

// resolveCmd prints the matched values (or just the canonical id) for one slot.
var resolveCmd = &cobra.Command{
	Use:   "resolve <envelope>",
	Short: "Print the matched values for a slot",
	Long: `Reads a request envelope file and prints the values of the first
resolution authority that reports ER_SUCCESS_MATCH for the given slot.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		slot, _ := cmd.Flags().GetString("slot")
		idOnly, _ := cmd.Flags().GetBool("id")
		asJSON, _ := cmd.Flags().GetBool("json")
		verbose, _ := cmd.Flags().GetBool("verbose")

		envelope, err := cli.LoadEnvelope(args[0])
		if err != nil {
			return err
		}

		resolver := slotwise.New(slotwise.WithLogger(cli.NewLogger(verbose)))

		if idOnly {
			id, ok := resolver.SlotValueID(envelope, slot)
			if !ok {
				return fmt.Errorf("slot %q: no matched value id", slot)
			}
			fmt.Println(id)
			return nil
		}

		values, err := resolver.DecodeSlotValues(envelope, slot)
		if err != nil {
			return err
		}
		if len(values) == 0 {
			return fmt.Errorf("slot %q: no matched values", slot)
		}

		if asJSON {
			return cli.PrintJSON(os.Stdout, values)
		}
		for _, v := range values {
			fmt.Printf("%s\t%s\n", v.ID, v.Name)
		}
		return nil
	},
}

func init() {
	resolveCmd.Flags().String("slot", "", "slot name to resolve (required)")
	resolveCmd.Flags().Bool("id", false, "print only the first matched value id")
	resolveCmd.Flags().Bool("json", false, "emit the values as JSON")
	_ = resolveCmd.MarkFlagRequired("slot")
	rootCmd.AddCommand(resolveCmd)
}
