// Package work implements the 192-bit accumulated proof-of-work
// accumulator ("blue work") used by the GHOSTDAG engine and chain
// selector as their tie-breaking metric.
//
// The spec calls for a 192-bit unsigned integer, little-endian
// internally, with a big-endian trim-leading-zeros encoding fed to
// hashers. github.com/holiman/uint256 provides a fixed-width (256-bit)
// word with exactly this arithmetic and encoding surface, so blue work
// is carried in the low 192 bits of a uint256.Int rather than in an
// arbitrary-precision math/big.Int — a fixed accumulator has no need
// for unbounded growth, and uint256 avoids the heap allocation
// math/big incurs on every Add/Cmp.
package work

import "github.com/holiman/uint256"

// BlueWork is the accumulated blue work of a block: the work
// contributed by its own proof-of-work target plus that of every blue
// ancestor.
type BlueWork struct {
	value *uint256.Int
}

// Zero returns the zero BlueWork value, used for genesis.
func Zero() *BlueWork {
	return &BlueWork{value: uint256.NewInt(0)}
}

// FromUint64 builds a BlueWork from a plain uint64, useful for tests
// and for the per-block work contribution derived from compact bits.
func FromUint64(v uint64) *BlueWork {
	return &BlueWork{value: uint256.NewInt(v)}
}

// FromBig192 builds a BlueWork from up-to-24 big-endian bytes (192
// bits), as would be read off the wire.
func FromBig192(beBytes []byte) *BlueWork {
	v := new(uint256.Int).SetBytes(beBytes)
	return &BlueWork{value: v}
}

// FromUint256 builds a BlueWork directly from a uint256.Int, used to
// lift difficulty.WorkFromBits' per-block work contribution into the
// accumulator.
func FromUint256(v *uint256.Int) *BlueWork {
	return &BlueWork{value: new(uint256.Int).Set(v)}
}

// Add returns a new BlueWork equal to w + other.
func (w *BlueWork) Add(other *BlueWork) *BlueWork {
	sum := new(uint256.Int).Add(w.value, other.value)
	return &BlueWork{value: sum}
}

// Cmp returns -1, 0 or 1 depending on whether w is less than, equal
// to, or greater than other.
func (w *BlueWork) Cmp(other *BlueWork) int {
	return w.value.Cmp(other.value)
}

// Clone returns a deep copy of w.
func (w *BlueWork) Clone() *BlueWork {
	return &BlueWork{value: new(uint256.Int).Set(w.value)}
}

// BigEndianTrimmed returns the big-endian encoding of w with leading
// zero bytes removed - the representation the header serialization
// reads to fill its fixed-width blue-work field.
func (w *BlueWork) BigEndianTrimmed() []byte {
	full := w.value.Bytes()
	i := 0
	for i < len(full) && full[i] == 0 {
		i++
	}
	return full[i:]
}

// String renders the decimal value, for logging.
func (w *BlueWork) String() string {
	return w.value.Dec()
}
