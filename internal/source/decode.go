package source

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
)

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// ErrUnknownEncoding is returned when an encoding label has no IANA mapping.
var ErrUnknownEncoding = errors.New("unknown encoding")

// decodeInput turns raw file bytes into UTF-8 content.
// A UTF-8 BOM is dropped; UTF-16 input is recognised by its BOM.
func decodeInput(raw []byte) ([]byte, FileFlags, error) {
	switch {
	case bytes.HasPrefix(raw, bomUTF8):
		return raw[len(bomUTF8):], FileHadBOM, nil
	case bytes.HasPrefix(raw, bomUTF16LE), bytes.HasPrefix(raw, bomUTF16BE):
		dec := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewDecoder()
		out, err := dec.Bytes(raw)
		if err != nil {
			return nil, 0, fmt.Errorf("decode utf-16: %w", err)
		}
		return out, FileHadBOM | FileTranscoded, nil
	default:
		return raw, 0, nil
	}
}

// LookupEncoding resolves an IANA encoding label (as written in an
// `xquery version "3.0" encoding "..."` declaration).
func LookupEncoding(label string) (encoding.Encoding, error) {
	label = strings.TrimSpace(label)
	enc, err := ianaindex.IANA.Encoding(label)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEncoding, label)
	}
	if enc == nil {
		return nil, fmt.Errorf("%w: %q is not supported", ErrUnknownEncoding, label)
	}
	return enc, nil
}

// IsUnicodeLabel reports whether label names UTF-8 or a UTF-16 variant,
// which need no re-decoding once the file has been loaded.
func IsUnicodeLabel(label string) bool {
	switch strings.ToUpper(strings.TrimSpace(label)) {
	case "UTF-8", "UTF8", "UTF-16", "UTF-16LE", "UTF-16BE":
		return true
	}
	return false
}

// DecodeNamed transcodes raw bytes from the named encoding to UTF-8.
func DecodeNamed(label string, raw []byte) ([]byte, error) {
	if IsUnicodeLabel(label) {
		out, _, err := decodeInput(raw)
		return out, err
	}
	enc, err := LookupEncoding(label)
	if err != nil {
		return nil, err
	}
	out, err := enc.NewDecoder().Bytes(raw)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", label, err)
	}
	return out, nil
}
