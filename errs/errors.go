// Package errs defines sentinel errors shared across vpack packages.
//
// The core packed.Vector codec is total and never returns an error;
// these sentinels belong to the buffer blob layer, where malformed or
// corrupted input is possible.
package errs

import "errors"

var (
	// ErrInvalidHeaderSize indicates the input is shorter than a vertex buffer header.
	ErrInvalidHeaderSize = errors.New("invalid vertex buffer header size")

	// ErrInvalidMagic indicates the input does not start with the vertex buffer magic number.
	ErrInvalidMagic = errors.New("invalid vertex buffer magic number")

	// ErrUnsupportedVersion indicates the blob was written by an unknown format version.
	ErrUnsupportedVersion = errors.New("unsupported vertex buffer format version")

	// ErrInvalidCompressionType indicates the header declares an unknown compression type.
	ErrInvalidCompressionType = errors.New("invalid compression type")

	// ErrInvalidEndianFlag indicates the header endianness flag is neither little nor big.
	ErrInvalidEndianFlag = errors.New("invalid endianness flag")

	// ErrChecksumMismatch indicates the payload checksum does not match the header.
	ErrChecksumMismatch = errors.New("payload checksum mismatch")

	// ErrTruncatedPayload indicates the decompressed payload is shorter than the
	// header's vector count requires.
	ErrTruncatedPayload = errors.New("truncated vertex buffer payload")
)
