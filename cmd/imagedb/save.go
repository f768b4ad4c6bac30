// ABOUTME: Save command that indexes the current clipboard image.
// ABOUTME: Accepts an optional context argument passed to the vision model.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var saveCmd = &cobra.Command{
	Use:   "save [context]",
	Short: "Save the clipboard image to the database",
	Long: `Read a PNG image from the clipboard, describe it with the vision model,
and store it with an embedding of the description. An optional context
argument is passed along to the vision model as a hint.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSave,
}

func init() {
	rootCmd.AddCommand(saveCmd)
}

func runSave(cmd *cobra.Command, args []string) error {
	extra := ""
	if len(args) == 1 {
		extra = args[0]
	}

	pipe, err := newPipeline()
	if err != nil {
		return err
	}

	result, err := pipe.Save(cmd.Context(), extra)
	if err != nil {
		return err
	}

	if result.Duplicate {
		fmt.Println(warnStyle.Render("Image already saved at " + result.Path))
		return nil
	}

	fmt.Println(infoStyle.Render("Description: " + result.Description))
	fmt.Println(successStyle.Render("Saved image to " + result.Path))
	return nil
}
