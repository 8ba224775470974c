// Package bignum provides the exact arbitrary-precision integer (Z) and
// rational (Q) number kernel the rest of the engine is built on.
package bignum

import (
	"hash/fnv"
	"math/big"

	"github.com/remyoudompheng/bigfft"
	"modernc.org/mathutil"
)

// bigfftThreshold is the operand bit length above which we hand Z.Mul off
// to bigfft's FFT multiply instead of math/big's built-in Karatsuba path.
// Partition-function and prodmake coefficients at large truncations are
// the callers that actually cross this threshold.
const bigfftThreshold = 1 << 14

// Z is an arbitrary-precision signed integer.
type Z struct {
	v *big.Int
}

// ZFromInt64 builds a Z from a machine integer.
func ZFromInt64(n int64) Z { return Z{big.NewInt(n)} }

// ZFromBigInt adopts a *big.Int. The caller must not mutate b afterwards.
func ZFromBigInt(b *big.Int) Z { return Z{new(big.Int).Set(b)} }

// ZFromString parses a base-10 integer literal.
func ZFromString(s string) (Z, bool) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return Z{}, false
	}
	return Z{v}, true
}

var zZero = Z{big.NewInt(0)}
var zOne = Z{big.NewInt(1)}

// ZZero is the additive identity.
func ZZero() Z { return zZero }

// ZOne is the multiplicative identity.
func ZOne() Z { return zOne }

func (a Z) ensure() *big.Int {
	if a.v == nil {
		return big.NewInt(0)
	}
	return a.v
}

// BigInt exposes the underlying value for callers that need to interop
// with math/big directly (e.g. rendering).
func (a Z) BigInt() *big.Int { return new(big.Int).Set(a.ensure()) }

func (a Z) Add(b Z) Z { return Z{new(big.Int).Add(a.ensure(), b.ensure())} }
func (a Z) Sub(b Z) Z { return Z{new(big.Int).Sub(a.ensure(), b.ensure())} }
func (a Z) Neg() Z    { return Z{new(big.Int).Neg(a.ensure())} }
func (a Z) Abs() Z    { return Z{new(big.Int).Abs(a.ensure())} }

// Mul multiplies two arbitrary-precision integers, routing through
// bigfft's FFT multiply once both operands are large enough that the
// quadratic/Karatsuba crossover in math/big stops being competitive.
func (a Z) Mul(b Z) Z {
	av, bv := a.ensure(), b.ensure()
	if av.BitLen() > bigfftThreshold && bv.BitLen() > bigfftThreshold {
		return Z{bigfft.Mul(av, bv)}
	}
	return Z{new(big.Int).Mul(av, bv)}
}

// DivMod performs Euclidean division: a = q*b + r with 0 <= r < |b|.
// Fails (ok=false) on division by zero.
func (a Z) DivMod(b Z) (q, r Z, ok bool) {
	if b.Sign() == 0 {
		return Z{}, Z{}, false
	}
	qq, rr := new(big.Int).QuoRem(a.ensure(), b.ensure(), new(big.Int))
	// QuoRem truncates toward zero; normalize to Euclidean (r >= 0).
	if rr.Sign() < 0 {
		if b.Sign() > 0 {
			rr.Add(rr, b.ensure())
			qq.Sub(qq, big.NewInt(1))
		} else {
			rr.Sub(rr, b.ensure())
			qq.Add(qq, big.NewInt(1))
		}
	}
	return Z{qq}, Z{rr}, true
}

// Pow raises a to a non-negative integer power.
func (a Z) Pow(exp uint64) Z {
	return Z{new(big.Int).Exp(a.ensure(), new(big.Int).SetUint64(exp), nil)}
}

// Gcd returns the non-negative greatest common divisor of a and b.
func (a Z) Gcd(b Z) Z {
	return Z{new(big.Int).GCD(nil, nil, new(big.Int).Abs(a.ensure()), new(big.Int).Abs(b.ensure()))}
}

func (a Z) Sign() int      { return a.ensure().Sign() }
func (a Z) Cmp(b Z) int    { return a.ensure().Cmp(b.ensure()) }
func (a Z) IsZero() bool   { return a.Sign() == 0 }
func (a Z) IsOne() bool    { return a.Cmp(zOne) == 0 }
func (a Z) String() string { return a.ensure().String() }

// Int64 returns the value truncated to an int64 plus whether it fit
// exactly. Per §9's open-question resolution, nothing in the engine may
// narrow an arbitrary-precision result silently — callers that need a
// machine integer (e.g. a loop bound already known to be small) must
// check ok.
func (a Z) Int64() (v int64, ok bool) {
	if !a.ensure().IsInt64() {
		return 0, false
	}
	return a.ensure().Int64(), true
}

// ISqrt returns the integer square root (floor) of a non-negative Z,
// using modernc.org/mathutil's fast path for values that fit a uint64 and
// falling back to big.Int.Sqrt beyond that.
func (a Z) ISqrt() Z {
	v := a.ensure()
	if v.Sign() < 0 {
		return zZero
	}
	if v.IsUint64() {
		return Z{new(big.Int).SetUint64(mathutil.ISqrt(v.Uint64()))}
	}
	return Z{new(big.Int).Sqrt(v)}
}

// Hash is the canonical structural hash: sign folded into the digest plus
// the big-endian digit vector, so equal values always hash identically
// regardless of which arithmetic path produced them.
func (a Z) Hash() uint64 {
	h := fnv.New64a()
	v := a.ensure()
	var signByte byte
	switch v.Sign() {
	case -1:
		signByte = 0xFF
	case 0:
		signByte = 0x00
	default:
		signByte = 0x01
	}
	h.Write([]byte{signByte})
	h.Write(v.Bytes())
	return h.Sum64()
}
