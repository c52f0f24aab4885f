package cmd

import (
	"fmt"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "factoman",
	Short: "A command line tool for managing mods on a Factorio server",
}

// Execute starts the root command for factoman
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// Add adds a new command as a subcommand to factoman
func Add(newCommand *cobra.Command) {
	rootCmd.AddCommand(newCommand)
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringP("game-dir", "p", "", "Path to the Factorio installation folder")
	_ = viper.BindPFlag("game-dir", rootCmd.PersistentFlags().Lookup("game-dir"))

	rootCmd.PersistentFlags().StringP("username", "u", "", "Factorio username, from player-data.json")
	_ = viper.BindPFlag("username", rootCmd.PersistentFlags().Lookup("username"))

	rootCmd.PersistentFlags().StringP("token", "t", "", "Factorio token, from player-data.json")
	_ = viper.BindPFlag("token", rootCmd.PersistentFlags().Lookup("token"))

	rootCmd.PersistentFlags().BoolP("dry-run", "d", false, "Don't write, delete or download anything, just log what would happen")
	_ = viper.BindPFlag("dry-run", rootCmd.PersistentFlags().Lookup("dry-run"))

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Print URLs and stuff as they happen")
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	rootCmd.PersistentFlags().Bool("downgrade", false, "If no release matches the game version, fall back to the newest release for an older one")
	_ = viper.BindPFlag("downgrade", rootCmd.PersistentFlags().Lookup("downgrade"))

	rootCmd.PersistentFlags().Bool("restart", false, "Restart the game service if any mods changed (requires --service-name)")
	_ = viper.BindPFlag("restart", rootCmd.PersistentFlags().Lookup("restart"))

	rootCmd.PersistentFlags().String("service-name", "", "The systemd service the game runs under")
	_ = viper.BindPFlag("service-name", rootCmd.PersistentFlags().Lookup("service-name"))

	rootCmd.PersistentFlags().BoolP("yes", "y", false, "Accept all prompts (non-interactive mode)")
	_ = viper.BindPFlag("non-interactive", rootCmd.PersistentFlags().Lookup("yes"))

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.factoman.toml)")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		// Search config in home directory with name ".factoman" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigName(".factoman")
	}

	viper.SetEnvPrefix("factoman")
	viper.AutomaticEnv() // read in environment variables that match

	if viper.GetBool("verbose") {
		logrus.SetLevel(logrus.DebugLevel)
	}

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		logrus.Debugf("using config file %s", viper.ConfigFileUsed())
	}
}
