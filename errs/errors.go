// Package errs defines the sentinel errors shared across tinytext packages.
//
// Callers should test for these with errors.Is; packages wrap them with
// fmt.Errorf("...: %w", err) to add context.
package errs

import "errors"

// Text value errors.
var (
	// ErrInvalidUTF8 indicates a byte sequence that is not well-formed UTF-8
	// (malformed, overlong, surrogate-containing, or above U+10FFFF).
	ErrInvalidUTF8 = errors.New("invalid UTF-8 sequence")

	// ErrTruncatedData indicates a serialized form that ends before its
	// declared length.
	ErrTruncatedData = errors.New("truncated data")

	// ErrTrailingBytes indicates extra bytes after a complete serialized value.
	ErrTrailingBytes = errors.New("trailing bytes after value")
)

// Dictionary blob errors.
var (
	// ErrInvalidHeaderSize indicates a dictionary blob shorter than its
	// fixed-size header plus checksum.
	ErrInvalidHeaderSize = errors.New("invalid dictionary header size")

	// ErrInvalidMagic indicates a dictionary blob whose magic number does not match.
	ErrInvalidMagic = errors.New("invalid dictionary magic number")

	// ErrInvalidVersion indicates a dictionary format version this library
	// does not understand.
	ErrInvalidVersion = errors.New("unsupported dictionary version")

	// ErrInvalidCompression indicates an unknown compression flag byte.
	ErrInvalidCompression = errors.New("invalid compression type")

	// ErrChecksumMismatch indicates a payload whose stored xxHash64 checksum
	// does not match its content.
	ErrChecksumMismatch = errors.New("payload checksum mismatch")

	// ErrPayloadTooLarge indicates a payload or entry count that exceeds the
	// 32-bit fields of the dictionary header.
	ErrPayloadTooLarge = errors.New("payload exceeds format limits")

	// ErrEncoderFinished indicates use of an encoder after Finish was called.
	ErrEncoderFinished = errors.New("encoder already finished")
)
