package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/hojdars/typist/config"
	"github.com/hojdars/typist/decode"
	"github.com/hojdars/typist/layout"
	"github.com/hojdars/typist/types"
)

func newLayoutCommand(settings func() *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Create, inspect and check keyboard layouts",
	}
	cmd.AddCommand(newLayoutNewCommand(settings), newLayoutShowCommand(), newLayoutCheckCommand(settings))
	return cmd
}

func newLayoutNewCommand(settings func() *config.Config) *cobra.Command {
	var kind, name, output string
	var shift int

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Generate a layout (identity, random or caesar)",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			cfg := settings()
			if !cmd.Flags().Changed("shift") {
				shift = cfg.CaesarShift
			}
			alphabet, err := cfg.Keys()
			if err != nil {
				log.Fatalf("%s", err)
			}

			mapping, err := generate(alphabet, kind, shift)
			if err != nil {
				log.Fatalf("cannot generate layout, err=%s", err)
			}
			if name == "" {
				name = kind
			}

			file, err := decode.NewLayoutFile(name, CreatedBy, alphabet, mapping, time.Now())
			if err != nil {
				log.Fatalf("cannot describe layout, err=%s", err)
			}
			log.Printf("generated layout, name=%s, kind=%s, code=%s", file.Name, kind, file.Code)

			if output == "" {
				fmt.Fprintln(cmd.OutOrStdout(), file.Code)
				return
			}

			out, err := os.Create(output)
			if err != nil {
				log.Fatalf("cannot open file for writing, file=%s, err=%s", output, err)
			}
			defer out.Close()
			if err := decode.EncodeLayoutFile(out, file); err != nil {
				log.Fatalf("cannot write layout file, file=%s, err=%s", output, err)
			}
			log.Printf("wrote layout file=%s, fingerprint=%s", output, hex.EncodeToString(file.Fingerprint[:]))
		},
	}
	cmd.Flags().StringVar(&kind, "kind", "random", "Layout kind: identity, random or caesar")
	cmd.Flags().IntVar(&shift, "shift", layout.DefaultShift, "Rotation for caesar layouts")
	cmd.Flags().StringVar(&name, "name", "", "Layout name stored in the file")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write a layout file instead of printing the code")
	return cmd
}

func generate(alphabet types.Alphabet, kind string, shift int) (types.Mapping, error) {
	switch kind {
	case "identity":
		return layout.Identity(alphabet), nil
	case "random":
		return layout.Random(alphabet), nil
	case "caesar":
		return layout.CaesarShift(alphabet, shift), nil
	default:
		return nil, fmt.Errorf("unknown layout kind, kind=%s", kind)
	}
}

func newLayoutShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <file>",
		Short: "Print the contents of a layout file",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			file, err := readLayoutFile(args[0])
			if err != nil {
				log.Fatalf("%s", err)
			}
			describe(cmd.OutOrStdout(), file)
		},
	}
}

func newLayoutCheckCommand(settings func() *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "check <code>",
		Short: "Check that a layout code is a permutation of the alphabet",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			alphabet, err := settings().Keys()
			if err != nil {
				log.Fatalf("%s", err)
			}
			if err := layout.ValidateCode(alphabet, args[0]); err != nil {
				log.Fatalf("invalid layout code, code=%s, err=%s", args[0], err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "valid")
		},
	}
}

func newEncodeCommand(settings func() *config.Config) *cobra.Command {
	var code, layoutPath string
	var reverse bool

	cmd := &cobra.Command{
		Use:   "encode [text...]",
		Short: "Show text as it appears on a remapped keyboard",
		Run: func(cmd *cobra.Command, args []string) {
			var alphabet types.Alphabet
			if layoutPath != "" {
				file, err := readLayoutFile(layoutPath)
				if err != nil {
					log.Fatalf("%s", err)
				}
				alphabet, code = file.Alphabet, file.Code
			} else {
				keys, err := settings().Keys()
				if err != nil {
					log.Fatalf("%s", err)
				}
				alphabet = keys
			}
			if err := layout.ValidateCode(alphabet, code); err != nil {
				log.Fatalf("invalid layout code, code=%s, err=%s", code, err)
			}

			text := strings.Join(args, " ")
			if len(args) == 0 {
				data, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					log.Fatalf("cannot read input, err=%s", err)
				}
				text = strings.TrimRight(string(data), "\n")
			}

			mapping := layout.MappingFromCode(alphabet, code)
			if reverse {
				fmt.Fprintln(cmd.OutOrStdout(), layout.DecodeFromDisplay(text, mapping))
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), layout.EncodeForDisplay(text, mapping))
			}
		},
	}
	cmd.Flags().StringVar(&code, "code", "", "Layout code")
	cmd.Flags().StringVar(&layoutPath, "layout", "", "Layout file, instead of --code")
	cmd.Flags().BoolVar(&reverse, "reverse", false, "Decode displayed text back to the original")
	cmd.MarkFlagsMutuallyExclusive("code", "layout")
	cmd.MarkFlagsOneRequired("code", "layout")
	return cmd
}

func readLayoutFile(path string) (types.LayoutFile, error) {
	in, err := os.Open(path)
	if err != nil {
		return types.LayoutFile{}, fmt.Errorf("cannot open layout file, file=%s, err=%w", path, err)
	}
	defer in.Close()

	file, err := decode.DecodeLayoutFile(in)
	if err != nil {
		return types.LayoutFile{}, fmt.Errorf("cannot decode layout file, file=%s, err=%w", path, err)
	}
	return file, nil
}

func describe(writer io.Writer, file types.LayoutFile) {
	fmt.Fprintf(writer, "name:        %s\n", file.Name)
	fmt.Fprintf(writer, "alphabet:    %s\n", file.Alphabet)
	fmt.Fprintf(writer, "code:        %s\n", file.Code)
	fmt.Fprintf(writer, "fingerprint: %s\n", hex.EncodeToString(file.Fingerprint[:]))
	if file.CreatedBy != "" {
		fmt.Fprintf(writer, "created by:  %s\n", file.CreatedBy)
	}
	if !file.CreationDate.IsZero() {
		fmt.Fprintf(writer, "created:     %s (%s)\n", file.CreationDate.Format(time.RFC3339), humanize.Time(file.CreationDate))
	}
}
