// ABOUTME: Interactive init command that runs the bubbletea setup wizard.
// ABOUTME: Collects the OpenRouter API key and vision model and writes the config file.
package main

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/imagedb/imagedb/internal/config"
	"github.com/imagedb/imagedb/internal/tui"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Set up imagedb configuration",
	Long:  "Interactively configure the OpenRouter API key and vision model.",
	RunE:  runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	existing, err := config.Load()
	if err != nil {
		if !errors.Is(err, config.ErrNotInitialized) {
			return err
		}
		existing = &config.Config{}
	}

	model := tui.NewSetupModel(existing.APIKey, existing.VisionModel)
	program := tea.NewProgram(model)

	result, err := program.Run()
	if err != nil {
		return fmt.Errorf("running setup wizard: %w", err)
	}

	final, ok := result.(tui.SetupModel)
	if !ok {
		return fmt.Errorf("unexpected model type from setup wizard")
	}
	if !final.ShouldSave() {
		fmt.Println("Setup cancelled.")
		return nil
	}

	apiKey, visionModel := final.Result()
	cfg := &config.Config{APIKey: apiKey, VisionModel: visionModel}
	if err := cfg.Save(); err != nil {
		return err
	}

	path, err := config.Path()
	if err != nil {
		return err
	}
	fmt.Println(successStyle.Render("Config saved to " + path))
	return nil
}
