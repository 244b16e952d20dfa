package byteorder

// ByteOrder converts between numeric values and their byte representations
// in a fixed endianness.
//
// It is a superset of the standard library's encoding/binary.ByteOrder and
// binary.AppendByteOrder method sets, extended with signed, float, and
// variable-width operations. The two implementations are BigEndian and
// LittleEndian; both are stateless and safe for concurrent use.
//
// Every fixed-width operation requires a slice of at least the matching
// width and panics otherwise. The variable-width operations (Uint, PutUint,
// Int, PutInt) derive the width from len(b), which must be in [1, 8].
type ByteOrder interface {
	// Fixed-width unsigned integers.
	Uint16(b []byte) uint16
	Uint32(b []byte) uint32
	Uint64(b []byte) uint64
	PutUint16(b []byte, v uint16)
	PutUint32(b []byte, v uint32)
	PutUint64(b []byte, v uint64)

	// Fixed-width signed integers. These are bit-casts of the unsigned
	// operations of the same width; the two's complement pattern is
	// reinterpreted, never numerically converted.
	Int16(b []byte) int16
	Int32(b []byte) int32
	Int64(b []byte) int64
	PutInt16(b []byte, v int16)
	PutInt32(b []byte, v int32)
	PutInt64(b []byte, v int64)

	// Variable-width integers occupying len(b) bytes, 1 to 8. PutUint and
	// PutInt store the low len(b)*8 bits of the value; Int sign-extends
	// from bit len(b)*8-1 so narrow negative values decode to the equal
	// negative int64.
	Uint(b []byte) uint64
	PutUint(b []byte, v uint64)
	Int(b []byte) int64
	PutInt(b []byte, v int64)

	// IEEE 754 floats, moved through the same-width unsigned integer path
	// as a bit pattern. NaN payloads, signed zero, and infinities survive
	// a round trip exactly.
	Float32(b []byte) float32
	Float64(b []byte) float64
	PutFloat32(b []byte, v float32)
	PutFloat64(b []byte, v float64)

	// Append variants mirroring encoding/binary.AppendByteOrder.
	AppendUint16(b []byte, v uint16) []byte
	AppendUint32(b []byte, v uint32) []byte
	AppendUint64(b []byte, v uint64) []byte

	String() string
}

// Interface compliance checks for both variants.
var (
	_ ByteOrder = BigEndian
	_ ByteOrder = LittleEndian
)

// checkWidth validates the byte count of a variable-width operation.
// Out-of-range widths are programming errors, not recoverable conditions.
func checkWidth(nbytes int) {
	if nbytes < 1 || nbytes > 8 {
		panic("byteorder: byte count out of range [1,8]")
	}
}

// signExtend widens the low nbytes*8 bits of x to a full int64, replicating
// the sign bit at position nbytes*8-1 into every higher bit.
func signExtend(x uint64, nbytes int) int64 {
	shift := uint(64 - nbytes*8)

	return int64(x<<shift) >> shift
}
