package platforms

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
)

type VerifyStatus string

const (
	Verified   VerifyStatus = "verified"
	Unverified VerifyStatus = "unverified"
	Pending    VerifyStatus = "pending"
)

var ErrUnknownPlatform = errors.New("unknown platform")

// Verifier checks that a handle on a platform belongs to the caller, by
// looking for the issued code in the account's bio or a recent post.
// Production implementations talk to the platform APIs; nothing else in the
// system may assume verification always succeeds.
type Verifier interface {
	Verify(platform, handle, code string) (VerifyStatus, error)
}

// GenerateCode returns the short token a creator is asked to place in
// their bio before requesting verification.
func GenerateCode() string {
	b := make([]byte, 4)
	rand.Read(b)
	return "agora-" + hex.EncodeToString(b)
}

// SandboxVerifier reports every known-platform handle as verified without
// any network call. Dev/test only.
type SandboxVerifier struct{}

func (SandboxVerifier) Verify(platform, handle, code string) (VerifyStatus, error) {
	if !IsValid(platform) {
		return Unverified, ErrUnknownPlatform
	}
	if handle == "" || code == "" {
		return Unverified, nil
	}
	return Verified, nil
}
