// Package stream reads and writes fixed-width numeric values against
// io.Reader and io.Writer byte streams.
//
// Each function is a thin wrapper: it fills (or produces) a small
// stack-allocated buffer of the exact width and delegates the byte order
// transformation to a byteorder.ByteOrder chosen by the caller at the call
// site:
//
//	import (
//	    "bytes"
//
//	    "github.com/arloliu/byteorder"
//	    "github.com/arloliu/byteorder/stream"
//	)
//
//	rdr := bytes.NewReader([]byte{2, 5, 3, 0})
//	v, _ := stream.ReadUint16(rdr, byteorder.BigEndian) // v == 517
//	v, _ = stream.ReadUint16(rdr, byteorder.BigEndian)  // v == 768
//
// Read functions tolerate short reads: the buffer is filled with
// io.ReadFull, which keeps requesting bytes until the buffer is complete or
// the reader fails. A read never yields a value decoded from a partially
// filled buffer; the reader's error is returned instead (io.ErrUnexpectedEOF
// when the stream ends mid-value). Write functions hand the whole encoded
// buffer to a single Write call and surface short writes as
// io.ErrShortWrite.
//
// The 8-bit functions take no ByteOrder since a single byte has no
// endianness.
package stream
