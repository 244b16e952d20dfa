package stream

import (
	"io"

	"github.com/arloliu/byteorder"
)

// WriteUint8 writes one byte to w.
//
// A single byte has no byte order; the function is included for
// completeness of the width set.
func WriteUint8(w io.Writer, v uint8) error {
	b := [1]byte{v}

	return writeFull(w, b[:])
}

// WriteInt8 writes the two's complement byte of v to w.
func WriteInt8(w io.Writer, v int8) error {
	return WriteUint8(w, uint8(v))
}

// WriteUint16 writes an unsigned 16-bit integer to w in the given byte
// order.
func WriteUint16(w io.Writer, order byteorder.ByteOrder, v uint16) error {
	var b [2]byte
	order.PutUint16(b[:], v)

	return writeFull(w, b[:])
}

// WriteInt16 writes a signed 16-bit integer to w in the given byte order.
func WriteInt16(w io.Writer, order byteorder.ByteOrder, v int16) error {
	return WriteUint16(w, order, uint16(v))
}

// WriteUint32 writes an unsigned 32-bit integer to w in the given byte
// order.
func WriteUint32(w io.Writer, order byteorder.ByteOrder, v uint32) error {
	var b [4]byte
	order.PutUint32(b[:], v)

	return writeFull(w, b[:])
}

// WriteInt32 writes a signed 32-bit integer to w in the given byte order.
func WriteInt32(w io.Writer, order byteorder.ByteOrder, v int32) error {
	return WriteUint32(w, order, uint32(v))
}

// WriteUint64 writes an unsigned 64-bit integer to w in the given byte
// order.
func WriteUint64(w io.Writer, order byteorder.ByteOrder, v uint64) error {
	var b [8]byte
	order.PutUint64(b[:], v)

	return writeFull(w, b[:])
}

// WriteInt64 writes a signed 64-bit integer to w in the given byte order.
func WriteInt64(w io.Writer, order byteorder.ByteOrder, v int64) error {
	return WriteUint64(w, order, uint64(v))
}

// WriteUint writes the low nbytes*8 bits of v to w in the given byte order.
// nbytes must be in [1, 8]; out-of-range values panic before the writer is
// touched.
func WriteUint(w io.Writer, order byteorder.ByteOrder, v uint64, nbytes int) error {
	checkByteCount(nbytes)

	var b [8]byte
	order.PutUint(b[:nbytes], v)

	return writeFull(w, b[:nbytes])
}

// WriteInt writes the low nbytes*8 bits of v to w in the given byte order.
// A value within the declared width round-trips through ReadInt to the
// equal negative or positive int64. nbytes must be in [1, 8]; out-of-range
// values panic before the writer is touched.
func WriteInt(w io.Writer, order byteorder.ByteOrder, v int64, nbytes int) error {
	return WriteUint(w, order, uint64(v), nbytes)
}

// WriteFloat32 writes an IEEE 754 single-precision float to w in the given
// byte order. The bit pattern is transmitted exactly, including NaN
// payloads.
func WriteFloat32(w io.Writer, order byteorder.ByteOrder, v float32) error {
	var b [4]byte
	order.PutFloat32(b[:], v)

	return writeFull(w, b[:])
}

// WriteFloat64 writes an IEEE 754 double-precision float to w in the given
// byte order. The bit pattern is transmitted exactly, including NaN
// payloads.
func WriteFloat64(w io.Writer, order byteorder.ByteOrder, v float64) error {
	var b [8]byte
	order.PutFloat64(b[:], v)

	return writeFull(w, b[:])
}

// WriteFloat64Slice writes all values to w in the given byte order as one
// contiguous buffer handed to a single Write call.
//
// Unlike the fixed-width functions this allocates a buffer proportional to
// len(values); it trades one allocation for one syscall-sized write, which
// is the better deal for bulk float payloads.
func WriteFloat64Slice(w io.Writer, order byteorder.ByteOrder, values []float64) error {
	if len(values) == 0 {
		return nil
	}

	buf := make([]byte, len(values)*8)
	for i, v := range values {
		order.PutFloat64(buf[i*8:i*8+8], v)
	}

	return writeFull(w, buf)
}

// writeFull writes all of buf to w, reporting a short write without an
// error as io.ErrShortWrite.
func writeFull(w io.Writer, buf []byte) error {
	n, err := w.Write(buf)
	if err != nil {
		return err
	}
	if n < len(buf) {
		return io.ErrShortWrite
	}

	return nil
}
