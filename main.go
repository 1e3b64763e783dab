package main

import (
	"encoding/hex"
	"log"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/hojdars/typist/decode"
	"github.com/hojdars/typist/layout"
)

const pangram = "the quick brown fox jumps over the lazy dog"

func main() {
	if len(os.Args) != 2 {
		log.Fatalf("invalid number of arguments, expected 2, got %v", len(os.Args))
	}

	filename := os.Args[1]

	info, err := os.Stat(filename)
	if err != nil {
		log.Fatalf("file does not exist, file=%s", filename)
	}

	log.Printf("started on file=%s, size=%s", filename, humanize.Bytes(uint64(info.Size())))

	file, err := os.Open(filename)
	if err != nil {
		log.Fatalf("cannot open file, err=%s", err)
	}
	defer file.Close()

	layoutFile, err := decode.DecodeLayoutFile(file)
	if err != nil {
		log.Fatalf("encountered an error during layout file decoding, err=%s", err)
	}

	log.Printf("name=%s, created by=%s, created=%s", layoutFile.Name, layoutFile.CreatedBy, humanize.Time(layoutFile.CreationDate))
	log.Printf("alphabet=%s, code=%s, fingerprint=%s", layoutFile.Alphabet, layoutFile.Code, hex.EncodeToString(layoutFile.Fingerprint[:]))

	mapping := layout.MappingFromCode(layoutFile.Alphabet, layoutFile.Code)
	log.Printf("sample=%q, displayed=%q", pangram, layout.EncodeForDisplay(pangram, mapping))
}
