// Package su reads and writes Seismic Unix trace records.
//
// An SU stream is a sequence of traces, each a 240-byte SEG-Y trace header
// followed by ns IEEE float32 samples, with no file-level header. Byte order
// is that of the producing host; little-endian is the default here and
// big-endian (SEG-Y order) is available through [WithByteOrder].
//
// Only the header fields this module sets are named in [Header]; all other
// header bytes are written as zero and ignored on read.
package su
