// Package byteorder provides encoding and decoding of fixed-width numeric
// values to and from their big-endian and little-endian byte representations.
//
// The package centers on the ByteOrder interface, implemented by the two
// stateless variants BigEndian and LittleEndian. Each variant offers a
// symmetric read/write operation pair for every supported width: unsigned
// and signed 16/32/64-bit integers, IEEE 754 single and double precision
// floats, and variable-width integers occupying 1 to 8 bytes.
//
// # Basic Usage
//
// Pick the byte order at the call site and operate on byte slices directly:
//
//	buf := make([]byte, 2)
//	byteorder.BigEndian.PutUint16(buf, 517) // buf == []byte{0x02, 0x05}
//	v := byteorder.BigEndian.Uint16(buf)    // v == 517
//
// Variable-width operations derive the width from the slice length, and the
// signed variants sign-extend so that negative values of the declared width
// decode to the mathematically equal 64-bit value:
//
//	v := byteorder.BigEndian.Int([]byte{0xFF}) // v == -1, not 255
//
// Float operations move the IEEE 754 bit pattern through the matching
// unsigned integer path, so NaN payloads, signed zero, and infinities are
// preserved exactly.
//
// For reading and writing values against io.Reader and io.Writer streams,
// see the stream subpackage.
//
// # Error Handling
//
// All operations are total functions given correctly sized input. Passing a
// slice shorter than the required width, or a variable-width slice outside
// 1-8 bytes, is a programming error and panics; no operation returns an
// error value.
//
// # Thread Safety
//
// BigEndian and LittleEndian are immutable zero-size values; every operation
// is stateless and safe for concurrent use.
package byteorder
