package main

import (
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-yaml"

	"github.com/dacapoday/diffset/btree"
	"github.com/dacapoday/diffset/iterator"
	"github.com/dacapoday/diffset/store"
)

// document is the input file: a base sequence and the diff to apply to it.
type document struct {
	Base    []int64 `yaml:"base" validate:"unique"`
	Added   []int64 `yaml:"added" validate:"unique"`
	Removed []int64 `yaml:"removed" validate:"unique"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

func decodeDocument(r io.Reader) (*document, error) {
	var doc document
	if err := yaml.NewDecoder(r, yaml.Strict()).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return &doc, nil
		}
		return nil, fmt.Errorf("decode: %w", err)
	}
	if err := validate.Struct(&doc); err != nil {
		return nil, fmt.Errorf("validate: %w", err)
	}
	return &doc, nil
}

type row struct {
	id    int64
	added bool
}

// apply commits the base into a store and overlays the diff on a scan of it,
// so base ids come out ascending and without duplicates.
// limit <= 0 means no limit.
func apply(doc *document, limit int) (rows []row, err error) {
	var s store.Store
	defer s.Close()
	if err = s.Load(slices.Values(doc.Base)); err != nil {
		return
	}

	added := btree.NewIDSet(doc.Added...)
	removed := btree.NewIDSet(doc.Removed...)

	diff := iterator.AugmentResource(s.Scan(), added, removed)
	defer func() {
		if cerr := diff.Close(); err == nil {
			err = cerr
		}
	}()

	for (limit <= 0 || len(rows) < limit) && diff.Next() {
		rows = append(rows, row{diff.Value(), diff.FromAdded()})
	}
	err = diff.Error()
	return
}
