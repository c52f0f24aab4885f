package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"gopkg.in/dixonwille/wmenu.v4"

	"github.com/factoman/factoman/core"
	"github.com/factoman/factoman/portal"
)

// getConfig builds the run configuration from flags/config file and validates
// the filesystem side of it. Commands call this first; configuration errors
// abort before any action is taken.
func getConfig() *core.Config {
	cfg := &core.Config{
		GameDir:     viper.GetString("game-dir"),
		Username:    viper.GetString("username"),
		Token:       viper.GetString("token"),
		DryRun:      viper.GetBool("dry-run"),
		Downgrade:   viper.GetBool("downgrade"),
		Restart:     viper.GetBool("restart"),
		ServiceName: viper.GetString("service-name"),
	}
	if err := cfg.Validate(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	return cfg
}

// loadModList loads the manifest or exits.
func loadModList(cfg *core.Config) *core.ModList {
	list, err := core.LoadModList(cfg.ManifestPath)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	return list
}

// syncRelease wraps core.SyncRelease with the whole-run credential failure
// handling: a wrong content type means the token is bad, so no point trying
// any further mods.
func syncRelease(cfg *core.Config, name string, releases []core.Release, selected core.Release) (bool, error) {
	changed, err := cfg.SyncRelease(name, releases, selected)
	if err != nil && errors.Is(err, core.ErrNotArchive) {
		fmt.Println(err)
		os.Exit(1)
	}
	return changed, err
}

// fetchReleases wraps the portal fetch with per-mod error reporting. A nil,
// false return means the mod should be skipped (warned, not fatal).
func fetchReleases(client *portal.Client, name string) ([]core.Release, bool) {
	logrus.Debugf("fetching mod %s from the portal", name)
	releases, err := client.FetchMod(name)
	if err != nil {
		if errors.Is(err, portal.ErrNotFound) {
			logrus.Warnf("mod %q not found on the portal; check your mod-list.json", name)
		} else {
			logrus.Warnf("failed to fetch mod %q: %v", name, err)
		}
		return nil, false
	}
	if len(releases) == 0 {
		logrus.Warnf("mod %q does not seem to have any release, skipping", name)
		return nil, false
	}
	return releases, true
}

// pickName lets the user choose between close matches for a mod name that is
// not in the manifest. Returns false when there is nothing to offer or the
// user cancels; in non-interactive mode the candidates are only printed.
func pickName(name string, known []string) (string, bool) {
	suggestions := core.SuggestNames(name, known, 5)
	if len(suggestions) == 0 {
		return "", false
	}

	if viper.GetBool("non-interactive") {
		fmt.Printf("Mod %q is not in the mod list; did you mean one of these?\n", name)
		for _, suggestion := range suggestions {
			fmt.Printf("    %s\n", suggestion)
		}
		return "", false
	}

	fmt.Printf("Mod %q is not in the mod list.\n", name)
	menu := wmenu.NewMenu("Did you mean one of these? Choose a number:")
	menu.Option("Cancel", nil, true, nil)
	for _, suggestion := range suggestions {
		menu.Option(suggestion, suggestion, false, nil)
	}

	var picked string
	menu.Action(func(menuRes []wmenu.Opt) error {
		if len(menuRes) != 1 || menuRes[0].Value == nil {
			return errors.New("selection cancelled")
		}
		chosen, ok := menuRes[0].Value.(string)
		if !ok {
			return errors.New("error converting interface from wmenu")
		}
		picked = chosen
		return nil
	})
	if err := menu.Run(); err != nil {
		return "", false
	}
	return picked, picked != ""
}

// finishRun handles the end-of-run restart bookkeeping shared by every
// mutating command.
func finishRun(cfg *core.Config) {
	if !cfg.RestartNeeded() {
		return
	}
	fmt.Println("The mod configuration changed; Factorio needs a restart to apply the changes.")

	if cfg.DryRun {
		if cfg.Restart {
			fmt.Println("Dry run: would have restarted the service automatically")
		} else {
			fmt.Println("Dry run: would NOT have restarted automatically")
		}
		return
	}

	if cfg.Restart {
		fmt.Printf("Restarting service %s\n", cfg.ServiceName)
		if err := core.RestartService(cfg.ServiceName); err != nil {
			logrus.Warnf("%v", err)
		}
	} else {
		fmt.Println("Automatic restart is disabled; please restart Factorio yourself.")
	}
}
