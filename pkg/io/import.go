package io

import (
	"encoding/json"
	"io"
	"os"

	apperrors "github.com/chartkit/legend/pkg/errors"
	"github.com/chartkit/legend/pkg/legend"
)

type entriesDocument struct {
	Entries []legend.Entry `json:"entries"`
}

// ReadEntries decodes an entries document from r.
//
// The input must be a JSON object with an "entries" array; see the package
// documentation for the field reference. A document without an "entries"
// key is rejected, but an explicitly empty array is a valid zero-size
// legend.
//
// ReadEntries does not close r.
func ReadEntries(r io.Reader) ([]legend.Entry, error) {
	var doc entriesDocument
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInvalidEntries, err, "decode entries")
	}
	if doc.Entries == nil {
		return nil, apperrors.New(apperrors.ErrCodeInvalidEntries, "document has no \"entries\" array")
	}
	return doc.Entries, nil
}

// ReadEntriesFile reads an entries document from a JSON file at path.
func ReadEntriesFile(path string) ([]legend.Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeFileNotFound, err, "open %s", path)
	}
	defer f.Close()
	return ReadEntries(f)
}
