// Package difficulty implements the compact-target (bits) encoding the
// proof-of-work check and the GHOSTDAG work accumulator both depend on
// (spec.md §4.5), the same responsibility the teacher's dangling
// utils/math.CompactToBig filled for domain/consensus/utils/mining's
// SolveBlock. The 256-bit target is represented with
// github.com/holiman/uint256 rather than math/big, mirroring the
// BlueWork package's choice of a fixed-width accumulator (see
// utils/work for the rationale).
package difficulty

import "github.com/holiman/uint256"

// CompactToTarget decodes a compact-target bits field into its 256-bit
// big-endian target, per spec.md §4.5: exponent = bits>>24, mantissa =
// bits&0x00FFFFFF; exponent<=3 right-shifts the mantissa, exponent>3
// left-shifts it. A shift past 32 bytes yields the zero target.
func CompactToTarget(bits uint32) *uint256.Int {
	exponent := bits >> 24
	mantissa := bits & 0x00FFFFFF

	target := uint256.NewInt(uint64(mantissa))
	switch {
	case exponent <= 3:
		shift := 8 * (3 - exponent)
		target.Rsh(target, uint(shift))
	default:
		shift := 8 * (exponent - 3)
		if shift > 248 {
			return uint256.NewInt(0)
		}
		overflowed := new(uint256.Int).Lsh(target, uint(shift))
		if overflowed.Sign() != 0 && overflowed.Rsh(overflowed, uint(shift)).Cmp(target) != 0 {
			return uint256.NewInt(0)
		}
		target.Lsh(target, uint(shift))
	}
	return target
}

// TargetToCompact encodes a 256-bit target back into the compact bits
// representation, the inverse of CompactToTarget.
func TargetToCompact(target *uint256.Int) uint32 {
	if target.IsZero() {
		return 0
	}

	exponent := uint32((target.BitLen() + 7) / 8)
	var mantissa uint64
	if exponent <= 3 {
		mantissa = target.Uint64() << (8 * (3 - exponent))
	} else {
		shifted := new(uint256.Int).Rsh(target, uint(8*(exponent-3)))
		mantissa = shifted.Uint64()
	}

	if mantissa&0x00800000 != 0 {
		mantissa >>= 8
		exponent++
	}

	return uint32(mantissa)&0x00FFFFFF | exponent<<24
}

// WorkFromBits approximates the proof-of-work contributed by a block
// with the given compact-target bits as 2^256 / (target+1), the
// definition spec.md §4.1 assigns to work(b) for GHOSTDAG's blue_work
// accumulation.
func WorkFromBits(bits uint32) *uint256.Int {
	target := CompactToTarget(bits)
	denominator := new(uint256.Int).AddUint64(target, 1)
	if denominator.IsZero() {
		// target was the maximum 256-bit value; treat work as the
		// smallest possible nonzero contribution.
		return uint256.NewInt(1)
	}

	numerator := new(uint256.Int)
	numerator.Not(numerator) // all-ones: represents 2^256 - 1, close enough to 2^256 for any real target
	quotient := new(uint256.Int)
	quotient.Div(numerator, denominator)
	return quotient.AddUint64(quotient, 1)
}

// HashMeetsTarget reports whether a 256-bit big-endian hash value is
// <= target, the proof-of-work bound spec.md §4.5 enforces.
func HashMeetsTarget(hash *uint256.Int, target *uint256.Int) bool {
	return hash.Cmp(target) <= 0
}
