package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// setEnabled is the shared implementation of the enable and disable commands.
func setEnabled(names []string, enabled bool) {
	cfg := getConfig()
	list := loadModList(cfg)

	changed := false
	for _, name := range names {
		if !list.Has(name) {
			picked, ok := pickName(name, list.Names())
			if !ok {
				fmt.Printf("Mod %q is not in the mod list, skipping\n", name)
				continue
			}
			name = picked
		}
		if list.SetEnabled(name, enabled) {
			changed = true
		}
	}
	if !changed {
		fmt.Println("Nothing to change")
		return
	}

	if err := cfg.SaveModList(list); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	cfg.FlagRestart()
	finishRun(cfg)
}

// enableCmd represents the enable command
var enableCmd = &cobra.Command{
	Use:   "enable [name]...",
	Short: "Enable the given mods in mod-list.json",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("Enabling mod(s) %v\n", args)
		setEnabled(args, true)
	},
}

func init() {
	rootCmd.AddCommand(enableCmd)
}
