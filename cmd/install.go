package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/factoman/factoman/core"
	"github.com/factoman/factoman/portal"
)

// installCmd represents the install command
var installCmd = &cobra.Command{
	Use:     "install [name]",
	Short:   "Install a mod from the mod portal",
	Aliases: []string{"add", "get"},
	Args:    cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		name := args[0]
		cfg := getConfig()
		if err := cfg.RequireCredentials(); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		if err := cfg.ProbeGameVersion(); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		client := portal.NewClient()
		releases, ok := fetchReleases(client, name)
		if !ok {
			fmt.Printf("No mod has been installed!\n")
			return
		}

		selected, ok := core.ResolveRelease(releases, cfg.GameVersion, cfg.Downgrade)
		if !ok {
			fmt.Printf("No release of %q matches Factorio %s. No mod has been installed!\n", name, cfg.GameVersion)
			return
		}

		// Record the mod in the manifest before downloading. This may create
		// a duplicate entry; the game tolerates that and cleans it up, and
		// appending anyway covers a mod file existing with a stale manifest.
		list := loadModList(cfg)
		list.Append(core.ModEntry{Name: name, Enabled: true})
		if err := cfg.SaveModList(list); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		changed, err := syncRelease(cfg, name, releases, selected)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		if changed {
			fmt.Printf("Installed mod %s version %s for Factorio %s\n", name, selected.Version, selected.RequiredHostVersion)
		}
		finishRun(cfg)
	},
}

func init() {
	rootCmd.AddCommand(installCmd)
}
