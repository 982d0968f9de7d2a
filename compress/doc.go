// Package compress provides the compression codecs used by vpack vertex
// buffer blobs.
//
// Packed 2-10-10-10 attribute streams compress well: meshes tend to have
// long runs of similar normals or colors, so neighboring packed words
// share most of their bytes. The buffer package compresses the payload
// (never the header) with one of:
//
//   - NoOpCompressor - pass-through, for hot paths and already-dense data
//   - ZstdCompressor - best ratio, for asset storage and transfer
//   - S2Compressor - fast with a moderate ratio
//   - LZ4Compressor - fastest decompression, for load-time critical assets
//
// By default the Zstd codec uses the pure-Go klauspost/compress
// implementation. Builds with the "cgozstd" tag switch to valyala/gozstd,
// which wraps the reference C library and trades build complexity for
// throughput.
//
// All codecs are safe for concurrent use.
package compress
