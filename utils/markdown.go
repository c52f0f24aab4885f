package utils

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
	"github.com/spf13/viper"
)

// markdownCmd represents the markdown command
var markdownCmd = &cobra.Command{
	Use:     "markdown",
	Short:   "Write markdown reference pages for every factoman command",
	Aliases: []string{"md"},
	Args:    cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		outDir := viper.GetString("utils.markdown.dir")
		if err := os.MkdirAll(outDir, os.ModePerm); err != nil {
			fmt.Printf("Error creating output directory: %s\n", err)
			os.Exit(1)
		}
		if err := doc.GenMarkdownTree(cmd.Root(), outDir); err != nil {
			fmt.Printf("Error writing markdown pages: %s\n", err)
			os.Exit(1)
		}
		fmt.Printf("Markdown reference written to %s\n", outDir)
	},
}

func init() {
	utilsCmd.AddCommand(markdownCmd)

	markdownCmd.Flags().String("dir", ".", "The directory to write the reference pages into")
	_ = viper.BindPFlag("utils.markdown.dir", markdownCmd.Flags().Lookup("dir"))
}
