// ABOUTME: Load command that finds the closest stored image for a text query.
// ABOUTME: Writes the matched image back to the system clipboard.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var loadCmd = &cobra.Command{
	Use:   "load <query>",
	Short: "Load the best-matching image onto the clipboard",
	Long: `Embed the query, find the nearest stored image by description, and
copy that image to the clipboard.`,
	Args: cobra.ExactArgs(1),
	RunE: runLoad,
}

func init() {
	rootCmd.AddCommand(loadCmd)
}

func runLoad(cmd *cobra.Command, args []string) error {
	pipe, err := newPipeline()
	if err != nil {
		return err
	}

	result, err := pipe.Load(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	fmt.Println(infoStyle.Render("Description: " + result.Description))
	fmt.Println(successStyle.Render("Copied image to clipboard from " + result.Path))
	return nil
}
