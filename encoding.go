package fsx

import (
	"fmt"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// EncodingByName resolves a text encoding by its IANA name ("utf-8",
// "utf-16le", "iso-8859-1", "windows-1252", ...). Lookup is
// case-insensitive and tolerant of the usual aliases ("latin1", "us-ascii").
//
// An unknown name fails with [ErrInvalidArgument].
func EncodingByName(name string) (encoding.Encoding, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: encoding name must not be empty", ErrInvalidArgument)
	}

	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil || enc == nil {
		// ianaindex returns (nil, nil) for names it knows but has no
		// implementation for; both cases are unusable here.
		return nil, fmt.Errorf("%w: unknown encoding %q", ErrInvalidArgument, name)
	}

	return enc, nil
}

// decodeTransformer returns the transformer that converts the raw byte
// stream of a file into UTF-8 text.
//
// With a nil encoding the stream is treated as UTF-8, but a leading
// UTF-8/UTF-16 byte order mark overrides that choice and is stripped.
// With an explicit encoding the stream is decoded exactly as requested.
func decodeTransformer(enc encoding.Encoding) transform.Transformer {
	if enc == nil {
		return unicode.BOMOverride(unicode.UTF8.NewDecoder())
	}

	return enc.NewDecoder()
}
