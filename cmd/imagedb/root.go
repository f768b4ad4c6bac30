// ABOUTME: Root Cobra command and shared pipeline wiring for imagedb.
// ABOUTME: Loads config in a pre-run hook and styles CLI output with lipgloss.
package main

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/imagedb/imagedb/internal/clipboard"
	"github.com/imagedb/imagedb/internal/config"
	"github.com/imagedb/imagedb/internal/openrouter"
	"github.com/imagedb/imagedb/internal/pipeline"
	"github.com/imagedb/imagedb/internal/store"
)

var globalConfig *config.Config

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
)

var rootCmd = &cobra.Command{
	Use:   "imagedb",
	Short: "Clipboard-to-database image indexer",
	Long: `Save clipboard images into a local, semantically searchable database.

save describes the clipboard image with a vision model, embeds the
description, and stores both; load finds the closest stored image for a
text query and puts it back on the clipboard.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		switch cmd.Name() {
		case "help", "version", "init", "completion":
			return nil
		}

		cfg, err := config.Load()
		if err != nil {
			return err
		}
		globalConfig = cfg
		return nil
	},
}

// newPipeline wires the clipboard, OpenRouter client, and store together.
// The clipboard backend is probed here, at command time, not at startup.
func newPipeline() (*pipeline.Pipeline, error) {
	clip, err := clipboard.Detect()
	if err != nil {
		return nil, err
	}

	dataDir, err := config.DataDir()
	if err != nil {
		return nil, err
	}
	st, err := store.Open(dataDir)
	if err != nil {
		return nil, err
	}

	client := openrouter.NewClient(globalConfig.APIKey, globalConfig.VisionModel)

	return &pipeline.Pipeline{
		Clipboard: clip,
		Describer: client,
		Embedder:  client,
		Store:     st,
	}, nil
}
