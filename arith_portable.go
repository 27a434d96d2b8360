//go:build num_portable
// +build num_portable

package num

// Build with '-tags num_portable' to avoid depending on the compiler
// lowering bits.Mul64 to a native instruction.

const mulStrategy = "halves"

func mul64to128(u, v uint64) (hi, lo uint64) {
	return mul64Halves(u, v)
}
