// Package compress provides the compression codecs for serialized
// declaration archives.
//
// The codecs are shaped around how the archive package uses them rather
// than as general-purpose byte compressors:
//
//   - Both directions are append-style, so the archive writer can stack
//     the compressed body behind the envelope bytes it has already
//     produced without an intermediate copy.
//   - Decompression takes the decompressed size as an argument. The
//     archive envelope records the raw container size next to the codec
//     byte, so decoders allocate the output exactly once — block formats
//     without a stored length (LZ4) need no grow-and-retry loop.
//
// A container body is dominated by fixed-stride node records and a
// NUL-separated string heap, both highly repetitive, so even the fast
// codecs reclaim most of the redundancy. Four codecs are registered:
//
//   - None: no compression; the container stays byte-identical to the
//     raw wire format and carries no envelope
//   - Zstd: best ratio for write-once archives (cgo libzstd when
//     available, pure Go otherwise)
//   - S2: balanced ratio and speed for archives exchanged between tools
//   - LZ4: fastest load path for archives read far more than written
package compress
