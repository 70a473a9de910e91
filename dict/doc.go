// Package dict serializes ordered sets of text values into self-describing
// dictionary blobs, the storage companion to the tinytext value type for the
// symbol-table and interned-identifier workloads it targets.
//
// # Blob Layout
//
// A blob is header, body, checksum:
//
//	bytes 0-1   magic number 0xEB7E (always little-endian)
//	byte  2     format version (currently 1)
//	byte  3     compression type (compress.TypeNone/Zstd/S2/LZ4)
//	byte  4     option bits (bit 0: numeric fields are big-endian)
//	bytes 5-7   reserved, zero
//	bytes 8-11  entry count, uint32
//	bytes 12-15 uncompressed payload size in bytes, uint32
//	...         body: the payload, compressed by the selected codec
//	last 8      xxHash64 of the uncompressed payload
//
// The payload is each entry's uvarint byte length followed by its raw UTF-8
// bytes, in insertion order. Varints carry no endianness; the option bit
// governs only the fixed-width header and checksum fields.
//
// # Usage
//
//	enc, _ := dict.NewEncoder(dict.WithCompression(compress.TypeZstd))
//	enc.Add(tinytext.MustFromString("http.request.count"))
//	enc.Add(tinytext.MustFromString("http.request.duration"))
//	blob, err := enc.Finish()
//
//	dec, err := dict.NewDecoder(blob)
//	for i, v := range dec.All() {
//	    fmt.Println(i, v)
//	}
//
// Decoding is a fully checked path: the header, checksum and every entry's
// UTF-8 are validated up front, and each decoded value owns its bytes, so a
// decoded Text never pins the blob in memory.
package dict
