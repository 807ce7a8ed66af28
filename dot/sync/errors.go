// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package sync

import (
	"errors"
)

var (
	errNilVerifier    = errors.New("cannot have nil Verifier")
	errNilBlockImport = errors.New("cannot have nil BlockImport")

	// ErrIncompleteHeader is returned when an incoming block has no header.
	ErrIncompleteHeader = errors.New("import of a block with incomplete header")

	// ErrVerificationFailed is returned when a block fails verification.
	ErrVerificationFailed = errors.New("block verification failed")

	// ErrBadBlock is returned when the block is known to be bad.
	ErrBadBlock = errors.New("block is known to be bad")

	// ErrUnknownParent is returned when the parent of the block is unknown.
	ErrUnknownParent = errors.New("block has an unknown parent")

	// ErrMissingState is returned when the state needed to import the
	// block is not available.
	ErrMissingState = errors.New("block state is missing")

	// ErrCancelled is the outcome of every block following an earlier
	// failed block within the same batch. It is assigned by the queue,
	// never by a collaborator.
	ErrCancelled = errors.New("import was cancelled")

	// ErrOutdatedJustification must be returned (or wrapped) by
	// JustificationImport implementations when the justification targets
	// an already finalised block, so the queue can classify the outcome.
	ErrOutdatedJustification = errors.New("justification is outdated")
)
