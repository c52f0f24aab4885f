package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// disableCmd represents the disable command
var disableCmd = &cobra.Command{
	Use:   "disable [name]...",
	Short: "Disable the given mods in mod-list.json",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("Disabling mod(s) %v\n", args)
		setEnabled(args, false)
	},
}

func init() {
	rootCmd.AddCommand(disableCmd)
}
