// Package decode reads and writes bencoded layout files.
package decode

import (
	"bytes"
	"crypto/sha1"
	"fmt"
	"io"
	"time"

	"github.com/hojdars/typist/layout"
	"github.com/hojdars/typist/types"
	"github.com/jackpal/bencode-go"
)

type bencodedLayout struct {
	Alphabet     string `bencode:"alphabet"`
	Code         string `bencode:"code"`
	CreatedBy    string `bencode:"created by"`
	CreationDate int    `bencode:"creation date"`
	Name         string `bencode:"name"`
}

// fingerprintInfo is the part of a layout file that identifies the layout.
// Fields are kept in bencode key order.
type fingerprintInfo struct {
	Alphabet string `bencode:"alphabet"`
	Code     string `bencode:"code"`
}

func DecodeLayoutFile(file io.Reader) (types.LayoutFile, error) {
	raw := bencodedLayout{}
	err := bencode.Unmarshal(file, &raw)
	if err != nil {
		return types.LayoutFile{}, fmt.Errorf("decoding the bencode failed, err=%w", err)
	}

	alphabet, err := types.NewAlphabet(raw.Alphabet)
	if err != nil {
		return types.LayoutFile{}, fmt.Errorf("layout file has a bad alphabet, name=%s, err=%w", raw.Name, err)
	}

	if err := layout.ValidateCode(alphabet, raw.Code); err != nil {
		return types.LayoutFile{}, fmt.Errorf("layout file has a bad code, name=%s, err=%w", raw.Name, err)
	}

	fingerprint, err := Fingerprint(alphabet, raw.Code)
	if err != nil {
		return types.LayoutFile{}, fmt.Errorf("cannot compute fingerprint, err=%w", err)
	}

	result := types.LayoutFile{
		Name:        raw.Name,
		Alphabet:    alphabet,
		Code:        raw.Code,
		CreatedBy:   raw.CreatedBy,
		Fingerprint: fingerprint,
	}
	if raw.CreationDate != 0 {
		result.CreationDate = time.Unix(int64(raw.CreationDate), 0).UTC()
	}

	return result, nil
}

func EncodeLayoutFile(writer io.Writer, file types.LayoutFile) error {
	if err := layout.ValidateCode(file.Alphabet, file.Code); err != nil {
		return fmt.Errorf("refusing to write an invalid layout, name=%s, err=%w", file.Name, err)
	}

	raw := bencodedLayout{
		Alphabet:  file.Alphabet.String(),
		Code:      file.Code,
		CreatedBy: file.CreatedBy,
		Name:      file.Name,
	}
	if !file.CreationDate.IsZero() {
		raw.CreationDate = int(file.CreationDate.Unix())
	}

	err := bencode.Marshal(writer, raw)
	if err != nil {
		return fmt.Errorf("could not bencode layout file, name=%s, err=%w", file.Name, err)
	}
	return nil
}

// NewLayoutFile describes mapping as a layout file. The mapping must be a
// permutation of alphabet.
func NewLayoutFile(name, createdBy string, alphabet types.Alphabet, mapping types.Mapping, created time.Time) (types.LayoutFile, error) {
	code := layout.CodeFromMapping(alphabet, mapping)
	if err := layout.ValidateCode(alphabet, code); err != nil {
		return types.LayoutFile{}, fmt.Errorf("NewLayoutFile: mapping is not a permutation, name=%s, err=%w", name, err)
	}

	fingerprint, err := Fingerprint(alphabet, code)
	if err != nil {
		return types.LayoutFile{}, err
	}

	return types.LayoutFile{
		Name:         name,
		Alphabet:     alphabet,
		Code:         code,
		CreatedBy:    createdBy,
		CreationDate: created.Truncate(time.Second).UTC(),
		Fingerprint:  fingerprint,
	}, nil
}

// Fingerprint is the SHA-1 of the bencoded alphabet and code. Two files
// holding the same layout share it no matter their name or date.
func Fingerprint(alphabet types.Alphabet, code string) ([20]byte, error) {
	var buffer bytes.Buffer
	err := bencode.Marshal(&buffer, fingerprintInfo{Alphabet: alphabet.String(), Code: code})
	if err != nil {
		return [20]byte{}, fmt.Errorf("could not bencode fingerprint info, err=%w", err)
	}
	return sha1.Sum(buffer.Bytes()), nil
}
