package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/factoman/factoman/portal"
)

// removeCmd represents the remove command
var removeCmd = &cobra.Command{
	Use:     "remove [name]",
	Short:   "Remove a mod and all of its release files",
	Aliases: []string{"delete", "uninstall"},
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		name := args[0]
		cfg := getConfig()
		list := loadModList(cfg)

		if !list.Has(name) {
			picked, ok := pickName(name, list.Names())
			if !ok {
				fmt.Printf("Mod %q is not in the mod list. Nothing removed.\n", name)
				return
			}
			name = picked
		}

		// Multiple stale release files may sit on disk; the portal's release
		// list is the source for every file name this mod is known by.
		client := portal.NewClient()
		releases, err := client.FetchMod(name)
		if err != nil {
			logrus.Warnf("failed to fetch releases for %q: %v; removing the manifest entry only", name, err)
		}
		for _, release := range releases {
			if err := cfg.RemoveFile(filepath.Join(cfg.ModsDir, release.FileName)); err != nil {
				fmt.Println(err)
				os.Exit(1)
			}
		}

		list.Remove(name)
		if err := cfg.SaveModList(list); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		cfg.FlagRestart()

		fmt.Printf("Mod %s removed successfully!\n", name)
		finishRun(cfg)
	},
}

func init() {
	rootCmd.AddCommand(removeCmd)
}
