package scalar

import (
	"encoding/binary"
	"errors"

	fasthex "github.com/tmthrgd/go-hex"
)

// BufferSize is the wire size of a scalar field element.
const BufferSize = 32

// NumLimbs is the limb count of the wire representation.
const NumLimbs = BufferSize / 8

// Buffer is the wire form of a scalar field element crossing the call
// boundary: four unsigned 64-bit little-endian limbs, no padding.
// Byte-identical to the 256-bit little-endian integer it denotes.
//
//nolint:recvcheck
type Buffer [BufferSize]byte

var ZeroBuffer Buffer

func (b *Buffer) Slice() []byte {
	return (*b)[:]
}

// Limbs returns the buffer as little-endian 64-bit limbs, least
// significant limb first.
func (b *Buffer) Limbs() (limbs [NumLimbs]uint64) {
	for i := range limbs {
		limbs[i] = binary.LittleEndian.Uint64((*b)[i*8:])
	}
	return limbs
}

func BufferFromLimbs(limbs [NumLimbs]uint64) (b Buffer) {
	for i, limb := range limbs {
		binary.LittleEndian.PutUint64(b[i*8:], limb)
	}
	return b
}

func BufferFromString(s string) (Buffer, error) {
	var b Buffer
	buf, err := fasthex.DecodeString(s)
	if err != nil {
		return b, err
	}
	if len(buf) != BufferSize {
		return b, errors.New("wrong size")
	}
	copy(b[:], buf)
	return b, nil
}

func MustBufferFromString(s string) Buffer {
	if b, err := BufferFromString(s); err != nil {
		panic(err)
	} else {
		return b
	}
}

func (b *Buffer) String() string {
	return fasthex.EncodeToString(b.Slice())
}

func (b *Buffer) UnmarshalJSON(buf []byte) error {
	if len(buf) == 0 || len(buf) == 2 {
		return nil
	}

	if len(buf) != BufferSize*2+2 {
		return errors.New("wrong buffer size")
	}

	if _, err := fasthex.Decode(b[:], buf[1:len(buf)-1]); err != nil {
		return err
	} else {
		return nil
	}
}

func (b Buffer) MarshalJSON() ([]byte, error) {
	var buf [BufferSize*2 + 2]byte
	buf[0] = '"'
	buf[BufferSize*2+1] = '"'
	fasthex.Encode(buf[1:], b[:])
	return buf[:], nil
}
