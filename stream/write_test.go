package stream

import (
	"bytes"
	"errors"
	"io"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/byteorder"
)

// errWriter fails every Write with a fixed error.
type errWriter struct{ err error }

func (w errWriter) Write(p []byte) (int, error) { return 0, w.err }

// shortWriter accepts one byte less than requested without reporting an
// error.
type shortWriter struct{}

func (shortWriter) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}

	return len(p) - 1, nil
}

func TestWriteUint16BigEndianVector(t *testing.T) {
	require := require.New(t)

	var wtr bytes.Buffer
	require.NoError(WriteUint16(&wtr, byteorder.BigEndian, 517))
	require.NoError(WriteUint16(&wtr, byteorder.BigEndian, 768))
	require.Equal([]byte{2, 5, 3, 0}, wtr.Bytes())
}

func TestWriteUint8AndInt8(t *testing.T) {
	require := require.New(t)

	var wtr bytes.Buffer
	require.NoError(WriteUint8(&wtr, 42))
	require.NoError(WriteInt8(&wtr, -1))
	require.Equal([]byte{0x2A, 0xFF}, wtr.Bytes())
}

func TestWriteReadRoundTrip(t *testing.T) {
	for _, order := range orders {
		t.Run(order.String(), func(t *testing.T) {
			require := require.New(t)

			var wtr bytes.Buffer
			require.NoError(WriteUint16(&wtr, order, 0xBEEF))
			require.NoError(WriteInt16(&wtr, order, -2))
			require.NoError(WriteUint32(&wtr, order, 0xDEADBEEF))
			require.NoError(WriteInt32(&wtr, order, -3))
			require.NoError(WriteUint64(&wtr, order, 0x0102030405060708))
			require.NoError(WriteInt64(&wtr, order, -4))
			require.NoError(WriteUint(&wtr, order, 0xABCDEF, 3))
			require.NoError(WriteInt(&wtr, order, -70000, 3))
			require.NoError(WriteFloat32(&wtr, order, 1.5))
			require.NoError(WriteFloat64(&wtr, order, -math.Pi))

			rdr := bytes.NewReader(wtr.Bytes())

			u16, err := ReadUint16(rdr, order)
			require.NoError(err)
			require.Equal(uint16(0xBEEF), u16)

			i16, err := ReadInt16(rdr, order)
			require.NoError(err)
			require.Equal(int16(-2), i16)

			u32, err := ReadUint32(rdr, order)
			require.NoError(err)
			require.Equal(uint32(0xDEADBEEF), u32)

			i32, err := ReadInt32(rdr, order)
			require.NoError(err)
			require.Equal(int32(-3), i32)

			u64, err := ReadUint64(rdr, order)
			require.NoError(err)
			require.Equal(uint64(0x0102030405060708), u64)

			i64, err := ReadInt64(rdr, order)
			require.NoError(err)
			require.Equal(int64(-4), i64)

			u, err := ReadUint(rdr, order, 3)
			require.NoError(err)
			require.Equal(uint64(0xABCDEF), u)

			i, err := ReadInt(rdr, order, 3)
			require.NoError(err)
			require.Equal(int64(-70000), i)

			f32, err := ReadFloat32(rdr, order)
			require.NoError(err)
			require.Equal(float32(1.5), f32)

			f64, err := ReadFloat64(rdr, order)
			require.NoError(err)
			require.Equal(-math.Pi, f64)

			// Everything written was consumed.
			require.Zero(rdr.Len())
		})
	}
}

func TestWriteVariableWidthLayout(t *testing.T) {
	require := require.New(t)

	var wtr bytes.Buffer
	require.NoError(WriteUint(&wtr, byteorder.BigEndian, 0x010203, 3))
	require.Equal([]byte{0x01, 0x02, 0x03}, wtr.Bytes())

	wtr.Reset()
	require.NoError(WriteUint(&wtr, byteorder.LittleEndian, 0x010203, 3))
	require.Equal([]byte{0x03, 0x02, 0x01}, wtr.Bytes())
}

func TestWriteFloatBitPattern(t *testing.T) {
	require := require.New(t)

	// NaN payloads must survive the write verbatim.
	const nanBits = uint64(0x7FF8DEADBEEF0001)

	var wtr bytes.Buffer
	require.NoError(WriteFloat64(&wtr, byteorder.BigEndian, math.Float64frombits(nanBits)))
	require.Equal(nanBits, byteorder.BigEndian.Uint64(wtr.Bytes()))
}

func TestWriteErrorPropagation(t *testing.T) {
	require := require.New(t)

	boom := errors.New("stream sink failed")

	require.ErrorIs(WriteUint8(errWriter{boom}, 1), boom)
	require.ErrorIs(WriteUint16(errWriter{boom}, byteorder.BigEndian, 1), boom)
	require.ErrorIs(WriteUint64(errWriter{boom}, byteorder.LittleEndian, 1), boom)
	require.ErrorIs(WriteUint(errWriter{boom}, byteorder.BigEndian, 1, 3), boom)
	require.ErrorIs(WriteFloat64(errWriter{boom}, byteorder.BigEndian, 1), boom)
}

func TestWriteShortWrite(t *testing.T) {
	require := require.New(t)

	require.ErrorIs(WriteUint32(shortWriter{}, byteorder.BigEndian, 1), io.ErrShortWrite)
	require.ErrorIs(WriteFloat64Slice(shortWriter{}, byteorder.BigEndian, []float64{1}), io.ErrShortWrite)
}

func TestWriteFloat64Slice(t *testing.T) {
	for _, order := range orders {
		t.Run(order.String(), func(t *testing.T) {
			require := require.New(t)

			values := []float64{0, 1.5, -math.Pi, math.Inf(-1), math.SmallestNonzeroFloat64}

			var wtr bytes.Buffer
			require.NoError(WriteFloat64Slice(&wtr, order, values))
			require.Equal(len(values)*8, wtr.Len())

			dst := make([]float64, len(values))
			require.NoError(ReadFloat64Into(bytes.NewReader(wtr.Bytes()), order, dst))
			require.Equal(values, dst)

			// Empty slice writes nothing and touches no sink.
			require.NoError(WriteFloat64Slice(errWriter{errors.New("unused")}, order, nil))
		})
	}
}

func TestWriteByteCountPanics(t *testing.T) {
	require := require.New(t)

	var wtr bytes.Buffer
	require.Panics(func() { _ = WriteUint(&wtr, byteorder.BigEndian, 0, 0) })
	require.Panics(func() { _ = WriteUint(&wtr, byteorder.BigEndian, 0, 9) })
	require.Panics(func() { _ = WriteInt(&wtr, byteorder.LittleEndian, 0, -1) })
	require.Zero(wtr.Len(), "the sink must not be touched on a byte count violation")
}
