package num512

import (
	"math/big"
)

const (
	wordCount = 8
	wordBits  = 64
	totalBits = wordCount * wordBits

	maxUint64 = 1<<64 - 1
	maxInt64  = 1<<63 - 1

	signBit  = 0x8000000000000000
	signMask = 0x7FFFFFFFFFFFFFFF

	intSize = 32 << (^uint(0) >> 63)
)

// Named values. These are never written by this package; callers must treat
// them as read-only.
var (
	ZeroU512 U512
	OneU512  = U512{w: words{1}}
	MaxU512  = U512{w: words{maxUint64, maxUint64, maxUint64, maxUint64, maxUint64, maxUint64, maxUint64, maxUint64}}

	ZeroI512 I512
	OneI512  = I512{w: words{1}}
	MaxI512  = I512{w: words{maxUint64, maxUint64, maxUint64, maxUint64, maxUint64, maxUint64, maxUint64, signMask}}
	MinI512  = I512{w: words{0, 0, 0, 0, 0, 0, 0, signBit}}
)

var (
	// minI512AsAbsU512 is the magnitude of MinI512, 1 << 511.
	minI512AsAbsU512 = U512{w: words{0, 0, 0, 0, 0, 0, 0, signBit}}
	maxI512AsU512    = U512{w: MaxI512.w}

	big0 = new(big.Int).SetInt64(0)
	big1 = new(big.Int).SetInt64(1)

	maxBigUint64 = new(big.Int).SetUint64(maxUint64)

	// maxBigU512 is (1 << 512) - 1, used to fold two's complement bit
	// patterns into negative big.Ints.
	maxBigU512 = new(big.Int).Sub(new(big.Int).Lsh(big1, totalBits), big1)

	// wrapBigU512 is 1 << 512, used to simulate over/underflow:
	wrapBigU512 = new(big.Int).Lsh(big1, totalBits)

	maxBigI512 = new(big.Int).Sub(new(big.Int).Lsh(big1, totalBits-1), big1)
	minBigI512 = new(big.Int).Neg(new(big.Int).Lsh(big1, totalBits-1))
)
