package compress

// ZstdCompressor compresses vertex payloads with Zstandard.
//
// Best compression ratio of the built-in codecs, suited for asset
// pipelines where blobs are written once and shipped or archived:
//   - Packed attribute streams for on-disk mesh bundles
//   - Network transfer of vertex data to clients
//
// The implementation is selected at build time: pure-Go
// klauspost/compress by default, valyala/gozstd (cgo) with the
// "cgozstd" build tag.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
