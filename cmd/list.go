package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List installed mods and whether they are enabled",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := getConfig()
		list := loadModList(cfg)

		entries := list.Entries(viper.GetBool("list.base"))

		if viper.GetBool("list.enabled-only") {
			i := 0
			for _, entry := range entries {
				if entry.Enabled {
					entries[i] = entry
					i++
				}
			}
			entries = entries[:i]
		}

		if len(entries) == 0 {
			fmt.Println("No mods are installed")
			return
		}

		sort.Slice(entries, func(i, j int) bool {
			return strings.ToLower(entries[i].Name) < strings.ToLower(entries[j].Name)
		})

		fmt.Println("Currently installed mods:")
		for _, entry := range entries {
			state := "disabled"
			if entry.Enabled {
				state = "enabled"
			}
			fmt.Printf("    %s (%s)\n", entry.Name, state)
		}
	},
}

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().BoolP("enabled-only", "e", false, "Only show enabled mods")
	_ = viper.BindPFlag("list.enabled-only", listCmd.Flags().Lookup("enabled-only"))
	listCmd.Flags().Bool("base", false, "Include the built-in base package")
	_ = viper.BindPFlag("list.base", listCmd.Flags().Lookup("base"))
}
