package enalib

import (
	"fmt"
	"strings"
)

// LookupError The portal API couldn't be reached or answered with a
// non-success status. Nothing was copied.
type LookupError struct {
	Accession string
	Err       error
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("failed to look up accession %s: %s", e.Accession, e.Err.Error())
}

// Cause supports github.com/pkg/errors.
func (e *LookupError) Cause() error { return e.Err }

func (e *LookupError) Unwrap() error { return e.Err }

// NotFoundError The portal API answered but had no files registered for the
// accession.
type NotFoundError struct {
	Accession string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("no files registered for accession %s", e.Accession)
}

// IOError The destination directory couldn't be created.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("couldn't create destination directory %s: %s", e.Path, e.Err.Error())
}

// Cause supports github.com/pkg/errors.
func (e *IOError) Cause() error { return e.Err }

func (e *IOError) Unwrap() error { return e.Err }

// TransferError One or more files of an accession failed to copy. Failed
// lists the remote paths the transfer client reported failure for, in the
// order they were attempted.
type TransferError struct {
	Accession string
	Failed    []string
}

func (e *TransferError) Error() string {
	return fmt.Sprintf("failed to copy %d file(s) for accession %s: %s",
		len(e.Failed), e.Accession, strings.Join(e.Failed, ", "))
}
