// Package buffer provides a compact blob format for streams of packed
// 2-10-10-10 vertex attributes.
//
// A blob is a fixed 20-byte header followed by the payload: one 32-bit
// packed word per vector, written in the configured byte order and
// optionally compressed. The header records the byte order, compression
// type, vector count and an xxHash64 checksum of the uncompressed
// payload, so a reader can validate a blob before handing the words to
// a graphics API.
//
// # Writing
//
//	writer, err := buffer.NewWriter(
//	    buffer.WithCompression(format.CompressionZstd),
//	)
//	if err != nil {
//	    return err
//	}
//
//	for _, n := range normals {
//	    writer.AppendVec4(n.X, n.Y, n.Z, 1.0)
//	}
//
//	blob, err := writer.Finish()
//
// # Reading
//
//	reader, err := buffer.NewReader(blob)
//	if err != nil {
//	    return err
//	}
//
//	for v := range reader.All() {
//	    _ = v.X()
//	}
//
// The payload bytes of an uncompressed little-endian blob are exactly
// the memory layout the GL_UNSIGNED_INT_2_10_10_10_REV vertex format
// expects, so they can be uploaded without further conversion. The
// package itself never performs I/O or touches a GPU; it only produces
// and consumes bytes.
package buffer
