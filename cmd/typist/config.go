package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/hojdars/typist/config"
	"github.com/hojdars/typist/wordbank"
)

func newConfigCommand(path func() string) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the typist config file",
	}
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default settings to the config path",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			if err := initConfig(path(), force); err != nil {
				log.Fatalf("cannot write config, err=%s", err)
			}
			log.Printf("wrote config file=%s", path())
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing config file")
	cmd.AddCommand(initCmd)
	return cmd
}

func initConfig(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("config already exists, file=%s", path)
	} else if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return config.Default().Write(file)
}

func newWordsCommand(settings func() *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "words",
		Short: "Inspect the configured word bank",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "export [file]",
		Short: "Write the word bank one word per line",
		Args:  cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			words, err := settings().Words()
			if err != nil {
				log.Fatalf("cannot load word bank, err=%s", err)
			}

			writer := cmd.OutOrStdout()
			if len(args) == 1 {
				file, err := os.Create(args[0])
				if err != nil {
					log.Fatalf("cannot open file for writing, file=%s, err=%s", args[0], err)
				}
				defer file.Close()
				writer = file
			}

			if err := exportWords(writer, words); err != nil {
				log.Fatalf("cannot export word bank, err=%s", err)
			}
		},
	})
	return cmd
}

func exportWords(writer io.Writer, words []string) error {
	if err := wordbank.Save(writer, words); err != nil {
		return err
	}
	log.Printf("exported word bank, words=%s", humanize.Comma(int64(len(words))))
	return nil
}
