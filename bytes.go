package num

import (
	"encoding/binary"

	"github.com/go-faster/city"
)

// Size is the number of bytes written by PutBytes.
const Size = 16

// PutBytes writes u into b as 16 big-endian bytes, upper limb first. It
// panics if len(b) < 16.
func (u U128) PutBytes(b []byte) {
	_ = b[:Size] // bounds check hint to compiler; see golang.org/issue/14808
	binary.BigEndian.PutUint64(b[0:8], u.hi)
	binary.BigEndian.PutUint64(b[8:16], u.lo)
}

// AppendBytes appends the 16 byte big-endian form of u to dst.
func (u U128) AppendBytes(dst []byte) []byte {
	var b [Size]byte
	u.PutBytes(b[:])
	return append(dst, b[:]...)
}

// Bytes returns the 16 byte big-endian form of u.
func (u U128) Bytes() (b [Size]byte) {
	u.PutBytes(b[:])
	return b
}

// U128FromBytes reads a U128 written by PutBytes. It panics if len(b) < 16.
func U128FromBytes(b []byte) U128 {
	_ = b[:Size]
	return U128{
		hi: binary.BigEndian.Uint64(b[0:8]),
		lo: binary.BigEndian.Uint64(b[8:16]),
	}
}

func (u U128) MarshalBinary() ([]byte, error) {
	return u.AppendBytes(make([]byte, 0, Size)), nil
}

func (u *U128) UnmarshalBinary(data []byte) error {
	if len(data) != Size {
		return Error.New("u128 binary length %d, expected %d", len(data), Size)
	}
	*u = U128FromBytes(data)
	return nil
}

// Hash64 returns a CityHash64 of both limbs. Equal values always hash
// equally, however they were produced.
func (u U128) Hash64() uint64 {
	b := u.Bytes()
	return city.Hash64(b[:])
}
