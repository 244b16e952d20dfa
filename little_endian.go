package byteorder

import "math"

// LittleEndian is the little-endian implementation of ByteOrder: byte 0 of
// the buffer holds the least significant byte of the value.
var LittleEndian littleEndian

type littleEndian struct{}

func (littleEndian) Uint16(b []byte) uint16 {
	_ = b[1] // early bounds check

	return uint16(b[0]) | uint16(b[1])<<8
}

func (littleEndian) Uint32(b []byte) uint32 {
	_ = b[3] // early bounds check

	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
}

func (littleEndian) Uint64(b []byte) uint64 {
	_ = b[7] // early bounds check

	return uint64(b[0]) | uint64(b[1])<<8 | uint64(b[2])<<16 | uint64(b[3])<<24 |
		uint64(b[4])<<32 | uint64(b[5])<<40 | uint64(b[6])<<48 | uint64(b[7])<<56
}

func (littleEndian) PutUint16(b []byte, v uint16) {
	_ = b[1] // early bounds check
	b[0] = byte(v)
	b[1] = byte(v >> 8)
}

func (littleEndian) PutUint32(b []byte, v uint32) {
	_ = b[3] // early bounds check
	b[0] = byte(v)
	b[1] = byte(v >> 8)
	b[2] = byte(v >> 16)
	b[3] = byte(v >> 24)
}

func (littleEndian) PutUint64(b []byte, v uint64) {
	_ = b[7] // early bounds check
	b[0] = byte(v)
	b[1] = byte(v >> 8)
	b[2] = byte(v >> 16)
	b[3] = byte(v >> 24)
	b[4] = byte(v >> 32)
	b[5] = byte(v >> 40)
	b[6] = byte(v >> 48)
	b[7] = byte(v >> 56)
}

func (e littleEndian) Int16(b []byte) int16 { return int16(e.Uint16(b)) }
func (e littleEndian) Int32(b []byte) int32 { return int32(e.Uint32(b)) }
func (e littleEndian) Int64(b []byte) int64 { return int64(e.Uint64(b)) }

func (e littleEndian) PutInt16(b []byte, v int16) { e.PutUint16(b, uint16(v)) }
func (e littleEndian) PutInt32(b []byte, v int32) { e.PutUint32(b, uint32(v)) }
func (e littleEndian) PutInt64(b []byte, v int64) { e.PutUint64(b, uint64(v)) }

// Uint decodes the len(b)-byte little-endian unsigned integer held in b.
// len(b) must be in [1, 8].
func (littleEndian) Uint(b []byte) uint64 {
	checkWidth(len(b))

	var x uint64
	for i, c := range b {
		x |= uint64(c) << (8 * uint(i))
	}

	return x
}

// PutUint stores the low len(b)*8 bits of v into b, least significant byte
// first. len(b) must be in [1, 8].
func (littleEndian) PutUint(b []byte, v uint64) {
	checkWidth(len(b))

	for i := range b {
		b[i] = byte(v)
		v >>= 8
	}
}

// Int decodes the len(b)-byte little-endian two's complement integer held
// in b, sign-extending to 64 bits. len(b) must be in [1, 8].
func (e littleEndian) Int(b []byte) int64 {
	return signExtend(e.Uint(b), len(b))
}

// PutInt stores the low len(b)*8 bits of v into b, least significant byte
// first. len(b) must be in [1, 8].
func (e littleEndian) PutInt(b []byte, v int64) {
	e.PutUint(b, uint64(v))
}

func (e littleEndian) Float32(b []byte) float32 { return math.Float32frombits(e.Uint32(b)) }
func (e littleEndian) Float64(b []byte) float64 { return math.Float64frombits(e.Uint64(b)) }

func (e littleEndian) PutFloat32(b []byte, v float32) { e.PutUint32(b, math.Float32bits(v)) }
func (e littleEndian) PutFloat64(b []byte, v float64) { e.PutUint64(b, math.Float64bits(v)) }

func (littleEndian) AppendUint16(b []byte, v uint16) []byte {
	return append(b, byte(v), byte(v>>8))
}

func (littleEndian) AppendUint32(b []byte, v uint32) []byte {
	return append(b, byte(v), byte(v>>8), byte(v>>16), byte(v>>24))
}

func (littleEndian) AppendUint64(b []byte, v uint64) []byte {
	return append(b,
		byte(v), byte(v>>8), byte(v>>16), byte(v>>24),
		byte(v>>32), byte(v>>40), byte(v>>48), byte(v>>56),
	)
}

func (littleEndian) String() string { return "LittleEndian" }
