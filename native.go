package byteorder

import "unsafe"

// Native returns the ByteOrder matching the host's memory byte order.
//
// This probes how the host lays out a known integer in memory; it does not
// inspect encoded data. Use it when exchanging buffers with code that reads
// raw memory, such as mmap'd structures or cgo.
func Native() ByteOrder {
	// 0x0100 is 256. A little-endian host stores the LSB (0x00) first,
	// a big-endian host stores the MSB (0x01) first.
	var i uint16 = 0x0100

	b := (*[2]byte)(unsafe.Pointer(&i))
	if b[0] == 0x01 {
		return BigEndian
	}

	return LittleEndian
}

// IsNativeLittleEndian reports whether the host stores integers
// least-significant byte first.
func IsNativeLittleEndian() bool {
	return Native() == ByteOrder(LittleEndian)
}

// IsNativeBigEndian reports whether the host stores integers
// most-significant byte first.
func IsNativeBigEndian() bool {
	return Native() == ByteOrder(BigEndian)
}
