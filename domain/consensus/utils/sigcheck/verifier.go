// Package sigcheck defines the signature-verification capability the
// consensus core consumes (spec.md §6): the core never implements a
// signature scheme itself, only a verify(data, sig, pubkey) shape, and
// a sanity guard on signature length.
package sigcheck

import (
	"github.com/kaspanet/ghostdag-core/domain/consensus/ruleerrors"
)

// SignatureLength is the only structural fact about signatures the
// core checks locally; full verification is delegated to Verifier.
const SignatureLength = 64

// Verifier verifies a signature over data against a public key. The
// core depends only on this interface; concrete cryptography lives
// outside the core (here, in DefaultVerifier).
type Verifier interface {
	Verify(data []byte, signature []byte, publicKey []byte) error
}

// CheckSignatureLength is the local sanity guard spec.md §6 calls for:
// it rejects malformed signatures before they ever reach a Verifier.
func CheckSignatureLength(signature []byte) error {
	if len(signature) != SignatureLength {
		return ruleerrors.New(ruleerrors.KindInvalidSignature,
			"signature length %d does not match the required %d bytes", len(signature), SignatureLength)
	}
	return nil
}
