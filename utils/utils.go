package utils

import "os"

///////////////////////////////////////////////////////////////////////////////
// Bit Math — Power-of-2 Checks & Logarithms
///////////////////////////////////////////////////////////////////////////////

// IsPow2 reports whether v is a non-zero power of two.
//
//go:nosplit
//go:inline
func IsPow2(v uint64) bool {
	return v != 0 && v&(v-1) == 0
}

// FloorLog2 returns ⌊log2(v)⌋ for v > 0, and 0 for v == 0.
// Table and line sizes are validated as powers of 2 up front, so for every
// caller in this module the floor is exact.
//
//go:nosplit
//go:inline
func FloorLog2(v uint64) uint {
	var n uint
	for v > 1 {
		v >>= 1
		n++
	}
	return n
}

///////////////////////////////////////////////////////////////////////////////
// Hash & Mixers — For Dedupe Indexing
///////////////////////////////////////////////////////////////////////////////

// Mix64 applies a Murmur3-style avalanche to a 64-bit value.
// Used to randomize index mapping inside the dedupe ring.
//
//go:nosplit
//go:inline
func Mix64(x uint64) uint64 {
	x ^= x >> 33
	x *= 0xff51afd7ed558ccd
	x ^= x >> 33
	x *= 0xc4ceb9fe1a85ec53
	x ^= x >> 33
	return x
}

///////////////////////////////////////////////////////////////////////////////
// Fast Hex Decoder — No Allocation, Early Exit on Malformed Input
///////////////////////////////////////////////////////////////////////////////

// ParseHexU64 parses a 64-bit uint from a (0x-optional) ASCII hex string.
// Stops at first non-nibble. Returns the parsed value and how many bytes
// were consumed (prefix included), so callers can reject empty payloads.
//
//go:nosplit
//go:inline
func ParseHexU64(b []byte) (uint64, int) {
	j := 0
	if len(b) >= 2 && b[0] == '0' && (b[1]|0x20) == 'x' {
		j = 2
	}
	var u uint64
	end := j + 16 // max 16 nibbles = 64 bits, prefix not counted
	for ; j < len(b) && j < end; j++ {
		c := b[j] | 0x20
		if c < '0' || c > 'f' || (c > '9' && c < 'a') {
			break
		}
		v := uint64(c - '0')
		if c > '9' {
			v -= 39 // 'a' → 10
		}
		u = (u << 4) | v
	}
	return u, j
}

///////////////////////////////////////////////////////////////////////////////
// Cold-Path Printing — Direct, Alloc-Light
///////////////////////////////////////////////////////////////////////////////

// Itoa converts an int to decimal ASCII without fmt.
// Cold paths only (diagnostics, run summaries).
func Itoa(v int) string {
	if v == 0 {
		return "0"
	}
	neg := v < 0
	if neg {
		v = -v
	}
	var buf [20]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = byte('0' + v%10)
		v /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

// Utoa64Hex renders v as 0x-prefixed lowercase hex.
func Utoa64Hex(v uint64) string {
	if v == 0 {
		return "0x0"
	}
	var buf [18]byte
	i := len(buf)
	for v > 0 {
		i--
		buf[i] = "0123456789abcdef"[v&0xf]
		v >>= 4
	}
	i -= 2
	buf[i], buf[i+1] = '0', 'x'
	return string(buf[i:])
}

// PrintWarning writes msg straight to stderr. One syscall, no formatting.
// ⚠️ Never invoke in hot loops — diagnostics only.
func PrintWarning(msg string) {
	os.Stderr.WriteString(msg)
}
