// ABOUTME: Config command for viewing and updating settings non-interactively.
// ABOUTME: Redacts the API key when printing the current configuration.
package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/imagedb/imagedb/internal/config"
)

var (
	configShow        bool
	configAPIKey      string
	configVisionModel string
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or update configuration",
	RunE:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&configShow, "show", false, "print the current configuration")
	configCmd.Flags().StringVar(&configAPIKey, "api-key", "", "set the OpenRouter API key")
	configCmd.Flags().StringVar(&configVisionModel, "vision-model", "", "set the vision model")
	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, args []string) error {
	changed := false
	if configAPIKey != "" {
		globalConfig.APIKey = configAPIKey
		changed = true
	}
	if configVisionModel != "" {
		globalConfig.VisionModel = configVisionModel
		changed = true
	}

	path, err := config.Path()
	if err != nil {
		return err
	}

	if changed {
		if err := globalConfig.Save(); err != nil {
			return err
		}
		fmt.Println(successStyle.Render("Updated config at " + path))
		return nil
	}

	fmt.Println(infoStyle.Render("Config file: " + path))
	fmt.Println("api_key:      " + redactKey(globalConfig.APIKey))
	fmt.Println("vision_model: " + globalConfig.VisionModel)
	return nil
}

// redactKey keeps enough of the key to recognize it without exposing it.
func redactKey(key string) string {
	if len(key) <= 8 {
		return strings.Repeat("*", len(key))
	}
	return key[:4] + strings.Repeat("*", len(key)-8) + key[len(key)-4:]
}
