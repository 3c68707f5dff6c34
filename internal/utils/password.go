// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// bcrypt ignores everything past this many bytes of input.
const maxPasswordBytes = 72

// legacyDigestLength is the length of a hex-encoded unsalted SHA-256 digest.
const legacyDigestLength = sha256.Size * 2

var (
	// ErrPasswordMismatch is returned by [PasswordHasher.Compare] when the
	// plaintext does not match the stored digest.
	ErrPasswordMismatch = errors.New("password does not match digest")
	// ErrPasswordTooLong is returned by [PasswordHasher.Hash] for inputs
	// longer than 72 bytes.
	ErrPasswordTooLong = errors.New("password is longer than 72 bytes")
)

// PasswordHasher produces and verifies salted bcrypt password digests.
//
// Digests in the legacy format (64 lowercase hex characters of an unsalted
// SHA-256) are still accepted by Compare, so directories populated by
// earlier deployments keep working. New digests are always bcrypt.
type PasswordHasher struct {
	cost int
}

// NewPasswordHasher returns a hasher with the given bcrypt cost.
// A zero cost selects bcrypt.DefaultCost.
func NewPasswordHasher(cost int) *PasswordHasher {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}

	return &PasswordHasher{cost: cost}
}

// Hash returns a salted digest of plaintext. Equal inputs yield different
// digests.
func (h *PasswordHasher) Hash(plaintext string) (string, error) {
	if len(plaintext) > maxPasswordBytes {
		return "", ErrPasswordTooLong
	}

	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(digest), nil
}

// Compare verifies plaintext against digest in constant time.
// Returns [ErrPasswordMismatch] when they do not match.
func (h *PasswordHasher) Compare(digest, plaintext string) error {
	if isLegacyDigest(digest) {
		sum := sha256.Sum256([]byte(plaintext))
		if subtle.ConstantTimeCompare([]byte(hex.EncodeToString(sum[:])), []byte(digest)) != 1 {
			return ErrPasswordMismatch
		}
		return nil
	}

	err := bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext))
	switch {
	case err == nil:
		return nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return ErrPasswordMismatch
	default:
		return fmt.Errorf("error comparing password digest: %w", err)
	}
}

func isLegacyDigest(digest string) bool {
	if len(digest) != legacyDigestLength {
		return false
	}
	for _, c := range digest {
		if (c < '0' || c > '9') && (c < 'a' || c > 'f') {
			return false
		}
	}

	return true
}
