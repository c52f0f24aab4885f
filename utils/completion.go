package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// completionCmd represents the completion command
var completionCmd = &cobra.Command{
	Use:   "completion [bash/zsh]",
	Short: "Installs bash/zsh completion commands",
	Long: `Installs bash/zsh completion commands.
Please note that the completions may be incomplete or broken, see https://github.com/spf13/cobra`,
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"bash", "zsh"},
	Run: func(cmd *cobra.Command, args []string) {
		if viper.GetBool("utils.completion.source") {
			var err error
			if args[0] == "bash" {
				err = cmd.Root().GenBashCompletion(os.Stdout)
			} else {
				err = cmd.Root().GenZshCompletion(os.Stdout)
			}
			if err != nil {
				fmt.Printf("Error generating completion file: %s\n", err)
				os.Exit(1)
			}
			return
		}

		if args[0] == "bash" {
			file, err := getConfigPath("completion.sh")
			if err != nil {
				fmt.Printf("Error saving completion file: %s\n", err)
				os.Exit(1)
			}
			err = cmd.Root().GenBashCompletionFile(file)
			if err != nil {
				fmt.Printf("Error saving completion file: %s\n", err)
				os.Exit(1)
			}

			home := os.Getenv("HOME")
			if home == "" {
				fmt.Println("Failed to get $HOME location")
				os.Exit(1)
			}
			bashrc := filepath.Join(home, ".bashrc")

			command := ". " + file
			// Check for existing text in bashrc
			data, err := os.ReadFile(bashrc)
			if err == nil && strings.Contains(string(data), command) {
				fmt.Println("Completions already installed!")
				return
			}
			f, err := os.OpenFile(bashrc, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
			if err != nil {
				fmt.Printf("Failed to open bashrc: %s\n", err)
				os.Exit(1)
			}
			if _, err = f.WriteString("\n" + command + "\n"); err != nil {
				fmt.Printf("Failed to write to bashrc: %s\n", err)
				_ = f.Close()
				os.Exit(1)
			}
			if err = f.Close(); err != nil {
				fmt.Printf("Failed to write to bashrc: %s\n", err)
				os.Exit(1)
			}
			fmt.Println("Completions installed! Restart your shell to load them.")
		} else if args[0] == "zsh" {
			file, err := getConfigPath("completion.zsh")
			if err != nil {
				fmt.Printf("Error saving completion file: %s\n", err)
				os.Exit(1)
			}
			err = cmd.Root().GenZshCompletionFile(file)
			if err != nil {
				fmt.Printf("Error saving completion file: %s\n", err)
				os.Exit(1)
			}

			fmt.Println("Completions saved to " + file)
			fmt.Println("You need to put this file in your $fpath manually!")
		}
	},
}

func getConfigPath(fileName string) (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	dir = filepath.Join(dir, "factoman")
	err = os.MkdirAll(dir, os.ModePerm)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, fileName), nil
}

func init() {
	utilsCmd.AddCommand(completionCmd)

	completionCmd.Flags().Bool("source", false, "Output the source of the commands to be installed, rather than installing them")
	_ = viper.BindPFlag("utils.completion.source", completionCmd.Flags().Lookup("source"))
}
