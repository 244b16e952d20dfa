package stream

import (
	"io"

	"github.com/arloliu/byteorder"
)

// ReadUint8 reads one byte from r.
//
// A single byte has no byte order; the function is included for
// completeness of the width set.
func ReadUint8(r io.Reader) (uint8, error) {
	var b [1]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, err
	}

	return b[0], nil
}

// ReadInt8 reads one byte from r and reinterprets it as a signed 8-bit
// integer.
func ReadInt8(r io.Reader) (int8, error) {
	v, err := ReadUint8(r)

	return int8(v), err
}

// ReadUint16 reads an unsigned 16-bit integer from r in the given byte
// order.
func ReadUint16(r io.Reader, order byteorder.ByteOrder) (uint16, error) {
	var b [2]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, err
	}

	return order.Uint16(b[:]), nil
}

// ReadInt16 reads a signed 16-bit integer from r in the given byte order.
func ReadInt16(r io.Reader, order byteorder.ByteOrder) (int16, error) {
	v, err := ReadUint16(r, order)

	return int16(v), err
}

// ReadUint32 reads an unsigned 32-bit integer from r in the given byte
// order.
func ReadUint32(r io.Reader, order byteorder.ByteOrder) (uint32, error) {
	var b [4]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, err
	}

	return order.Uint32(b[:]), nil
}

// ReadInt32 reads a signed 32-bit integer from r in the given byte order.
func ReadInt32(r io.Reader, order byteorder.ByteOrder) (int32, error) {
	v, err := ReadUint32(r, order)

	return int32(v), err
}

// ReadUint64 reads an unsigned 64-bit integer from r in the given byte
// order.
func ReadUint64(r io.Reader, order byteorder.ByteOrder) (uint64, error) {
	var b [8]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, err
	}

	return order.Uint64(b[:]), nil
}

// ReadInt64 reads a signed 64-bit integer from r in the given byte order.
func ReadInt64(r io.Reader, order byteorder.ByteOrder) (int64, error) {
	v, err := ReadUint64(r, order)

	return int64(v), err
}

// ReadUint reads an unsigned nbytes-wide integer from r in the given byte
// order. nbytes must be in [1, 8]; out-of-range values panic before the
// reader is touched.
func ReadUint(r io.Reader, order byteorder.ByteOrder, nbytes int) (uint64, error) {
	checkByteCount(nbytes)

	var b [8]byte
	if _, err := io.ReadFull(r, b[:nbytes]); err != nil {
		return 0, err
	}

	return order.Uint(b[:nbytes]), nil
}

// ReadInt reads a signed nbytes-wide integer from r in the given byte
// order, sign-extended to 64 bits. nbytes must be in [1, 8]; out-of-range
// values panic before the reader is touched.
func ReadInt(r io.Reader, order byteorder.ByteOrder, nbytes int) (int64, error) {
	checkByteCount(nbytes)

	var b [8]byte
	if _, err := io.ReadFull(r, b[:nbytes]); err != nil {
		return 0, err
	}

	return order.Int(b[:nbytes]), nil
}

// ReadFloat32 reads an IEEE 754 single-precision float from r in the given
// byte order. The bit pattern is preserved exactly, including NaN payloads.
func ReadFloat32(r io.Reader, order byteorder.ByteOrder) (float32, error) {
	var b [4]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, err
	}

	return order.Float32(b[:]), nil
}

// ReadFloat64 reads an IEEE 754 double-precision float from r in the given
// byte order. The bit pattern is preserved exactly, including NaN payloads.
func ReadFloat64(r io.Reader, order byteorder.ByteOrder) (float64, error) {
	var b [8]byte
	if _, err := io.ReadFull(r, b[:]); err != nil {
		return 0, err
	}

	return order.Float64(b[:]), nil
}

// ReadFloat64Into fills dst completely with double-precision floats read
// from r in the given byte order.
//
// On error, dst may hold some already-decoded leading values; the caller
// should treat the whole destination as invalid.
func ReadFloat64Into(r io.Reader, order byteorder.ByteOrder, dst []float64) error {
	var b [8]byte
	for i := range dst {
		if _, err := io.ReadFull(r, b[:]); err != nil {
			return err
		}
		dst[i] = order.Float64(b[:])
	}

	return nil
}

func checkByteCount(nbytes int) {
	if nbytes < 1 || nbytes > 8 {
		panic("stream: byte count out of range [1,8]")
	}
}
