//go:build !num_portable
// +build !num_portable

package num

const mulStrategy = "intrinsic"

func mul64to128(u, v uint64) (hi, lo uint64) {
	return mul64Intrinsic(u, v)
}
