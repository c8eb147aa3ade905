package fingerprinter

import (
	"crypto/sha256"
	"encoding/hex"

	e "expwall/internal/core/domain/errors"
	"expwall/internal/core/domain/fingerprint"
)

const fingerprintLength = 16

// SHA256 derives a short salted digest from a viewer address. The digest is
// deterministic so the same address always maps to the same fingerprint,
// and the raw address is never stored.
type SHA256 struct {
	salt string
}

func NewSHA256(salt string) *SHA256 {
	if salt == "" {
		panic(e.NewInvalidStateError("salt must not be empty"))
	}
	return &SHA256{salt: salt}
}

func (f *SHA256) Fingerprint(address string) fingerprint.Fingerprint {
	if address == "" {
		return fingerprint.Unknown
	}
	sum := sha256.Sum256([]byte(address + f.salt))
	return fingerprint.Fingerprint(hex.EncodeToString(sum[:])[:fingerprintLength])
}
