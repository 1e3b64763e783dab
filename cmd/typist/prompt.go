package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/hojdars/typist/config"
	"github.com/hojdars/typist/lines"
	"github.com/hojdars/typist/prompt"
)

func newPromptCommand(settings func() *config.Config) *cobra.Command {
	var words, width int

	cmd := &cobra.Command{
		Use:   "prompt",
		Short: "Print a random practice prompt",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			cfg := settings()
			if !cmd.Flags().Changed("words") {
				words = cfg.WordCount
			}
			if !cmd.Flags().Changed("width") {
				width = cfg.MaxChars
			}

			bank, err := cfg.Words()
			if err != nil {
				log.Fatalf("cannot load word bank, err=%s", err)
			}

			text := prompt.Generate(bank, words)
			log.Printf("generated prompt, words=%s, chars=%s, bank size=%s",
				humanize.Comma(int64(words)), humanize.Comma(int64(len([]rune(text)))), humanize.Comma(int64(len(bank))))

			if err := writeLines(cmd.OutOrStdout(), text, width); err != nil {
				log.Fatalf("cannot write prompt, err=%s", err)
			}
		},
	}
	cmd.Flags().IntVar(&words, "words", prompt.DefaultWordCount, "Number of words in the prompt")
	cmd.Flags().IntVar(&width, "width", config.DefaultMaxChars, "Maximum characters per line")
	return cmd
}

func newWrapCommand(settings func() *config.Config) *cobra.Command {
	var width int
	var showStarts bool

	cmd := &cobra.Command{
		Use:   "wrap [file]",
		Short: "Wrap a text file (or stdin) into display lines",
		Args:  cobra.MaximumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			if !cmd.Flags().Changed("width") {
				width = settings().MaxChars
			}

			input := io.Reader(os.Stdin)
			if len(args) == 1 {
				file, err := os.Open(args[0])
				if err != nil {
					log.Fatalf("cannot open file, file=%s, err=%s", args[0], err)
				}
				defer file.Close()
				input = file
			}

			data, err := io.ReadAll(input)
			if err != nil {
				log.Fatalf("cannot read input, err=%s", err)
			}
			log.Printf("wrapping input, size=%s, width=%d", humanize.Bytes(uint64(len(data))), width)

			if showStarts {
				err = writeStarts(cmd.OutOrStdout(), string(data), width)
			} else {
				err = writeLines(cmd.OutOrStdout(), string(data), width)
			}
			if err != nil {
				log.Fatalf("cannot write lines, err=%s", err)
			}
		},
	}
	cmd.Flags().IntVar(&width, "width", config.DefaultMaxChars, "Maximum characters per line")
	cmd.Flags().BoolVar(&showStarts, "starts", false, "Print line start offsets instead of the lines")
	return cmd
}

func writeLines(writer io.Writer, text string, width int) error {
	for _, line := range lines.Split(text, width) {
		if _, err := fmt.Fprintln(writer, line); err != nil {
			return err
		}
	}
	return nil
}

func writeStarts(writer io.Writer, text string, width int) error {
	for i, start := range lines.BuildLineStarts(text, width) {
		if _, err := fmt.Fprintf(writer, "%s line starts at %d\n", humanize.Ordinal(i+1), start); err != nil {
			return err
		}
	}
	return nil
}
