package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/factoman/factoman/core"
	"github.com/factoman/factoman/portal"
)

// updateCmd represents the update command
var updateCmd = &cobra.Command{
	Use:     "update",
	Short:   "Update all installed mods to the newest compatible release",
	Aliases: []string{"upgrade"},
	Args:    cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := getConfig()
		if err := cfg.RequireCredentials(); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		if err := cfg.ProbeGameVersion(); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		enabledOnly := viper.GetBool("update.enabled-only")

		client := portal.NewClient()
		list := loadModList(cfg)
		for _, entry := range list.Entries(false) {
			if enabledOnly && !entry.Enabled {
				logrus.Debugf("mod %s is disabled and --enabled-only was used, skipping", entry.Name)
				continue
			}

			releases, ok := fetchReleases(client, entry.Name)
			if !ok {
				continue
			}

			selected, ok := core.ResolveRelease(releases, cfg.GameVersion, cfg.Downgrade)
			if !ok {
				logrus.Warnf("no release of %q matches Factorio %s, skipping", entry.Name, cfg.GameVersion)
				continue
			}

			if _, err := syncRelease(cfg, entry.Name, releases, selected); err != nil {
				logrus.Warnf("failed to update %q: %v", entry.Name, err)
			}
		}

		finishRun(cfg)
	},
}

func init() {
	rootCmd.AddCommand(updateCmd)

	updateCmd.Flags().BoolP("enabled-only", "e", false, "Only update mods enabled in mod-list.json")
	_ = viper.BindPFlag("update.enabled-only", updateCmd.Flags().Lookup("enabled-only"))
}
