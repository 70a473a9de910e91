// Package endian provides byte order utilities for the dictionary blob
// format.
//
// It combines the ByteOrder and AppendByteOrder interfaces from
// encoding/binary into a single EndianEngine interface so header fields can
// be read in place and appended to growing buffers through one value.
//
// Dictionary headers default to little-endian; the flag byte records which
// order a blob was written with, and the decoder selects the matching engine
// from it.
//
// # Thread Safety
//
// The returned engines are the stateless binary.LittleEndian and
// binary.BigEndian values and are safe for concurrent use.
package endian

import (
	"encoding/binary"
	"unsafe"
)

// EndianEngine combines read/write and append byte order operations.
// It is satisfied by binary.LittleEndian and binary.BigEndian.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine, the default for
// dictionary blobs.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// Native returns the host's byte order, probed through a fixed integer.
func Native() EndianEngine {
	var i uint16 = 0x0100

	// For little-endian hosts the LSB (0x00) sits at the lowest address.
	b := (*[2]byte)(unsafe.Pointer(&i))
	if b[0] == 0x01 {
		return binary.BigEndian
	}

	return binary.LittleEndian
}

// IsNativeLittleEndian reports whether the host is little-endian.
func IsNativeLittleEndian() bool {
	return Native() == EndianEngine(binary.LittleEndian)
}
