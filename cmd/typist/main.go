// Command typist generates practice prompts and scrambled keyboard layouts.
package main

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/hojdars/typist/config"
)

const CreatedBy = "typist 0.1"

func main() {
	var configPath string
	var cfg *config.Config

	root := &cobra.Command{
		Use:   "typist",
		Short: "Typing practice helpers: prompts, line wrapping and layouts",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			var err error
			cfg, err = config.LoadOrDefault(configPath)
			if err != nil {
				log.Fatalf("cannot load config, err=%s", err)
			}
		},
	}
	root.PersistentFlags().StringVar(&configPath, "config", config.ConfigPath(), "Path of the TOML config file")

	settings := func() *config.Config { return cfg }
	root.AddCommand(
		newPromptCommand(settings),
		newWrapCommand(settings),
		newLayoutCommand(settings),
		newEncodeCommand(settings),
		newWordsCommand(settings),
		newConfigCommand(func() string { return configPath }),
	)

	if err := root.Execute(); err != nil {
		log.Fatalf("typist failed, err=%s", err)
	}
}
