package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/crypto/blake2b"
)

// ErrEmptySequence is returned by validateSeq for sequences that are
// empty after normalization.
var ErrEmptySequence = errors.New("empty sequence")

// InvalidCharError reports the first out-of-alphabet character found by
// strict validation. Position is 1-based.
type InvalidCharError struct {
	Char     byte
	Position int
}

func (e *InvalidCharError) Error() string {
	return fmt.Sprintf("invalid character %q at position %d", string(e.Char), e.Position)
}

// normalizeSeq strips all whitespace and uppercases the rest. It is
// idempotent and never fails; every sequence used elsewhere in this
// program has been through it.
func normalizeSeq(raw string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return unicode.ToUpper(r)
	}, raw)
}

// validateSeq rejects sequences the strict single-record workflow must
// not accept. The batch counting pass never calls this: there, windows
// containing unknown characters are silently skipped instead.
func validateSeq(seq string) error {
	if len(seq) == 0 {
		return ErrEmptySequence
	}
	for i := 0; i < len(seq); i++ {
		if aaNum[seq[i]] < 0 {
			return &InvalidCharError{Char: seq[i], Position: i + 1}
		}
	}
	return nil
}

// seqDigest returns the hex blake2b-256 digest of a normalized
// sequence, usable as a stable join/dedup key downstream.
func seqDigest(seq string) string {
	sum := blake2b.Sum256([]byte(seq))
	return hex.EncodeToString(sum[:])
}
