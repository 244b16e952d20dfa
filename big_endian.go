package byteorder

import "math"

// BigEndian is the big-endian implementation of ByteOrder: byte 0 of the
// buffer holds the most significant byte of the value.
var BigEndian bigEndian

type bigEndian struct{}

func (bigEndian) Uint16(b []byte) uint16 {
	_ = b[1] // early bounds check

	return uint16(b[1]) | uint16(b[0])<<8
}

func (bigEndian) Uint32(b []byte) uint32 {
	_ = b[3] // early bounds check

	return uint32(b[3]) | uint32(b[2])<<8 | uint32(b[1])<<16 | uint32(b[0])<<24
}

func (bigEndian) Uint64(b []byte) uint64 {
	_ = b[7] // early bounds check

	return uint64(b[7]) | uint64(b[6])<<8 | uint64(b[5])<<16 | uint64(b[4])<<24 |
		uint64(b[3])<<32 | uint64(b[2])<<40 | uint64(b[1])<<48 | uint64(b[0])<<56
}

func (bigEndian) PutUint16(b []byte, v uint16) {
	_ = b[1] // early bounds check
	b[0] = byte(v >> 8)
	b[1] = byte(v)
}

func (bigEndian) PutUint32(b []byte, v uint32) {
	_ = b[3] // early bounds check
	b[0] = byte(v >> 24)
	b[1] = byte(v >> 16)
	b[2] = byte(v >> 8)
	b[3] = byte(v)
}

func (bigEndian) PutUint64(b []byte, v uint64) {
	_ = b[7] // early bounds check
	b[0] = byte(v >> 56)
	b[1] = byte(v >> 48)
	b[2] = byte(v >> 40)
	b[3] = byte(v >> 32)
	b[4] = byte(v >> 24)
	b[5] = byte(v >> 16)
	b[6] = byte(v >> 8)
	b[7] = byte(v)
}

func (e bigEndian) Int16(b []byte) int16 { return int16(e.Uint16(b)) }
func (e bigEndian) Int32(b []byte) int32 { return int32(e.Uint32(b)) }
func (e bigEndian) Int64(b []byte) int64 { return int64(e.Uint64(b)) }

func (e bigEndian) PutInt16(b []byte, v int16) { e.PutUint16(b, uint16(v)) }
func (e bigEndian) PutInt32(b []byte, v int32) { e.PutUint32(b, uint32(v)) }
func (e bigEndian) PutInt64(b []byte, v int64) { e.PutUint64(b, uint64(v)) }

// Uint decodes the len(b)-byte big-endian unsigned integer held in b.
// len(b) must be in [1, 8].
func (bigEndian) Uint(b []byte) uint64 {
	checkWidth(len(b))

	var x uint64
	for _, c := range b {
		x = x<<8 | uint64(c)
	}

	return x
}

// PutUint stores the low len(b)*8 bits of v into b, most significant byte
// first. len(b) must be in [1, 8].
func (bigEndian) PutUint(b []byte, v uint64) {
	checkWidth(len(b))

	for i := len(b) - 1; i >= 0; i-- {
		b[i] = byte(v)
		v >>= 8
	}
}

// Int decodes the len(b)-byte big-endian two's complement integer held in b,
// sign-extending to 64 bits. len(b) must be in [1, 8].
func (e bigEndian) Int(b []byte) int64 {
	return signExtend(e.Uint(b), len(b))
}

// PutInt stores the low len(b)*8 bits of v into b, most significant byte
// first. len(b) must be in [1, 8].
func (e bigEndian) PutInt(b []byte, v int64) {
	e.PutUint(b, uint64(v))
}

func (e bigEndian) Float32(b []byte) float32 { return math.Float32frombits(e.Uint32(b)) }
func (e bigEndian) Float64(b []byte) float64 { return math.Float64frombits(e.Uint64(b)) }

func (e bigEndian) PutFloat32(b []byte, v float32) { e.PutUint32(b, math.Float32bits(v)) }
func (e bigEndian) PutFloat64(b []byte, v float64) { e.PutUint64(b, math.Float64bits(v)) }

func (bigEndian) AppendUint16(b []byte, v uint16) []byte {
	return append(b, byte(v>>8), byte(v))
}

func (bigEndian) AppendUint32(b []byte, v uint32) []byte {
	return append(b, byte(v>>24), byte(v>>16), byte(v>>8), byte(v))
}

func (bigEndian) AppendUint64(b []byte, v uint64) []byte {
	return append(b,
		byte(v>>56), byte(v>>48), byte(v>>40), byte(v>>32),
		byte(v>>24), byte(v>>16), byte(v>>8), byte(v),
	)
}

func (bigEndian) String() string { return "BigEndian" }
