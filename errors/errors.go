// Package errors provides error handling for id3.
//
// It re-exports github.com/cockroachdb/errors and declares the sentinel
// errors that classify every failure of tree induction and classification:
//
//	if errors.Is(err, errors.ErrClassification) {
//	    // the query holds a value never seen during training
//	}
//
// Wrap the sentinels with Wrapf to add the offending attribute, value or
// row while keeping them identifiable with Is.
package errors

import (
	crdb "github.com/cockroachdb/errors"
)

// Creation and wrapping
var (
	New          = crdb.New
	Newf         = crdb.Newf
	Wrap         = crdb.Wrap
	Wrapf        = crdb.Wrapf
	WithStack    = crdb.WithStack
	WithMessagef = crdb.WithMessagef
	Mark         = crdb.Mark
)

// User-facing details
var (
	WithHint     = crdb.WithHint
	WithHintf    = crdb.WithHintf
	WithDetailf  = crdb.WithDetailf
	FlattenHints = crdb.FlattenHints
)

// Inspection
var (
	Is    = crdb.Is
	IsAny = crdb.IsAny
	As    = crdb.As
)

var (
	// ErrInvalidInput indicates a malformed table or query: empty table,
	// rows of inconsistent length, missing fields, query of the wrong length.
	ErrInvalidInput = New("invalid input")

	// ErrConfiguration indicates an attribute list that cannot be used:
	// duplicate attribute names, or a list that does not match the tree.
	ErrConfiguration = New("configuration error")

	// ErrClassification indicates a query value for which the tree holds
	// no branch.
	ErrClassification = New("classification error")
)

// Kind returns the sentinel error classifying err, or nil if err does not
// wrap any of them.
func Kind(err error) error {
	for _, sentinel := range []error{ErrInvalidInput, ErrConfiguration, ErrClassification} {
		if Is(err, sentinel) {
			return sentinel
		}
	}
	return nil
}
