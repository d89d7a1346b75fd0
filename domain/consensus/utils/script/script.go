// Package script implements the structural scriptPublicKey predicates
// the transaction validator needs (spec.md §4.4): recognizing standard
// pay-to-pubkey-hash, pay-to-script-hash and pay-to-pubkey patterns,
// the same three classes the teacher's txscript.PayToAddrScript builds
// (domain/txscript/standard.go), generalized into a read-only
// classifier instead of a full script-execution VM (a VM is out of
// scope per spec.md's Non-goals).
package script

import (
	"bytes"
	"crypto/sha256"

	"golang.org/x/crypto/ripemd160"
)

// Opcodes used by the three standard templates this package recognizes.
const (
	opDup         = 0x76
	opHash160     = 0xa9
	opEqualVerify = 0x88
	opCheckSig    = 0xac
	opEqual       = 0x87
	opData32      = 0x20
)

// Class identifies a recognized scriptPublicKey template.
type Class int

// Recognized script classes.
const (
	NonStandard Class = iota
	PubKeyHash
	ScriptHash
	PubKey
)

func (c Class) String() string {
	switch c {
	case PubKeyHash:
		return "pubkeyhash"
	case ScriptHash:
		return "scripthash"
	case PubKey:
		return "pubkey"
	default:
		return "nonstandard"
	}
}

// Hash160 returns RIPEMD160(SHA256(data)), the digest standard address
// scripts embed (matches util.Hash160 in the teacher's util package).
func Hash160(data []byte) []byte {
	sum := sha256.Sum256(data)
	h := ripemd160.New()
	h.Write(sum[:])
	return h.Sum(nil)
}

// PayToPubKeyHashScript builds OP_DUP OP_HASH160 <pubKeyHash> OP_EQUALVERIFY OP_CHECKSIG.
func PayToPubKeyHashScript(pubKeyHash []byte) []byte {
	script := make([]byte, 0, 5+len(pubKeyHash))
	script = append(script, opDup, opHash160, byte(len(pubKeyHash)))
	script = append(script, pubKeyHash...)
	script = append(script, opEqualVerify, opCheckSig)
	return script
}

// PayToScriptHashScript builds OP_HASH160 <scriptHash> OP_EQUAL.
func PayToScriptHashScript(scriptHash []byte) []byte {
	script := make([]byte, 0, 3+len(scriptHash))
	script = append(script, opHash160, byte(len(scriptHash)))
	script = append(script, scriptHash...)
	script = append(script, opEqual)
	return script
}

// PayToPubKeyScript builds <32-byte pubKey> OP_CHECKSIG, the format
// kaspa's 32-byte Schnorr public keys use in place of the classic
// 33/65-byte ECDSA pay-to-pubkey template.
func PayToPubKeyScript(pubKey []byte) []byte {
	script := make([]byte, 0, 2+len(pubKey))
	script = append(script, opData32)
	script = append(script, pubKey...)
	script = append(script, opCheckSig)
	return script
}

// ExtractClass classifies scriptPubKey against the three standard
// templates, falling back to NonStandard for anything else.
func ExtractClass(scriptPubKey []byte) Class {
	switch {
	case len(scriptPubKey) == 23 &&
		scriptPubKey[0] == opHash160 && scriptPubKey[1] == byte(ripemd160.Size) &&
		scriptPubKey[22] == opEqual:
		return ScriptHash

	case len(scriptPubKey) == 26 &&
		scriptPubKey[0] == opDup && scriptPubKey[1] == opHash160 &&
		scriptPubKey[2] == byte(ripemd160.Size) &&
		scriptPubKey[23] == opEqualVerify && scriptPubKey[24] == opCheckSig:
		return PubKeyHash

	case len(scriptPubKey) == 34 &&
		scriptPubKey[0] == opData32 && scriptPubKey[33] == opCheckSig:
		return PubKey

	default:
		return NonStandard
	}
}

// ExtractPubKeyHash returns the embedded hash for PubKeyHash/ScriptHash
// scripts, or nil for anything else.
func ExtractPubKeyHash(scriptPubKey []byte) []byte {
	switch ExtractClass(scriptPubKey) {
	case PubKeyHash:
		return scriptPubKey[3:23]
	case ScriptHash:
		return scriptPubKey[2:22]
	default:
		return nil
	}
}

// MatchesPubKeyHash reports whether scriptPubKey is a PubKeyHash script
// paying to Hash160(pubKey).
func MatchesPubKeyHash(scriptPubKey []byte, pubKey []byte) bool {
	hash := ExtractPubKeyHash(scriptPubKey)
	if hash == nil {
		return false
	}
	return bytes.Equal(hash, Hash160(pubKey))
}
