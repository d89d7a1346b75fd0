package sigcheck

import (
	"github.com/kaspanet/go-secp256k1"

	"github.com/kaspanet/ghostdag-core/domain/consensus/ruleerrors"
)

// DefaultVerifier verifies Schnorr signatures over secp256k1, the
// scheme the teacher's txscript package signs with via
// key.SchnorrSign (domain/txscript/sign.go). It is the concrete
// Verifier this package provides; nothing else in the module
// constructs or calls it.
type DefaultVerifier struct{}

// Verify reports whether signature is a valid Schnorr signature by
// publicKey over data's 32-byte transaction signature hash.
func (DefaultVerifier) Verify(data []byte, signature []byte, publicKey []byte) error {
	if err := CheckSignatureLength(signature); err != nil {
		return err
	}
	if len(data) != secp256k1.HashSize {
		return ruleerrors.New(ruleerrors.KindInvalidSignature,
			"signature hash must be %d bytes, got %d", secp256k1.HashSize, len(data))
	}

	var sigBytes [SignatureLength]byte
	copy(sigBytes[:], signature)
	sig, err := secp256k1.DeserializeSchnorrSignature(&sigBytes)
	if err != nil {
		return ruleerrors.Wrap(ruleerrors.KindInvalidSignature, err, "failed to parse schnorr signature")
	}

	pubKey, err := secp256k1.DeserializeSchnorrPubKey(publicKey)
	if err != nil {
		return ruleerrors.Wrap(ruleerrors.KindInvalidSignature, err, "failed to parse schnorr public key")
	}

	var hash secp256k1.Hash
	copy(hash[:], data)

	valid, err := pubKey.SchnorrVerify(&hash, sig)
	if err != nil {
		return ruleerrors.Wrap(ruleerrors.KindInvalidSignature, err, "schnorr verification failed")
	}
	if !valid {
		return ruleerrors.New(ruleerrors.KindInvalidSignature, "schnorr signature does not verify against public key")
	}
	return nil
}

var _ Verifier = DefaultVerifier{}
