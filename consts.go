package num

import (
	"math/big"
)

const (
	maxUint64 = 1<<64 - 1

	intSize = 32 << (^uint(0) >> 63)

	// digits used by Text; index is the digit value.
	digits = "0123456789abcdef"
)

// Maximum number of significant digits read by the parser, one per supported
// base. Anything to the left of these is discarded.
//
//	2**128 = 0x100000000000000000000000000000000
//	2**128 = 340282366920938463463374607431768211456
//	2**128 = 0o4000000000000000000000000000000000000000000
const (
	maxDigitsHex = 32
	maxDigitsDec = 39
	maxDigitsOct = 43
	maxDigitsBin = 128
)

var (
	MaxU128 = U128{hi: maxUint64, lo: maxUint64}

	zeroU128 U128
	oneU128  = U128{lo: 1}

	big0 = new(big.Int).SetInt64(0)
	big1 = new(big.Int).SetInt64(1)

	maxBigUint64  = new(big.Int).SetUint64(maxUint64)
	maxBigU128, _ = new(big.Int).SetString("340282366920938463463374607431768211455", 10)

	// wrapBigU128 is 1 << 128, used to simulate over/underflow:
	wrapBigU128, _ = new(big.Int).SetString("340282366920938463463374607431768211456", 10)
)
