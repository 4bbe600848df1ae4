package platform

import (
	"bytes"
	"strconv"
	"strings"
	"unicode/utf16"
)

const (
	kib = 1024

	// hostNameMax is the buffer size handed to gethostname on POSIX systems.
	hostNameMax = 256
)

func toKiB(n uint64) uint64 { return n / kib }

// decodeHostName truncates raw at the first NUL (or hostNameMax bytes) and
// decodes it as UTF-8, replacing invalid sequences with U+FFFD.
func decodeHostName(op string, raw []byte) (string, error) {
	if len(raw) > hostNameMax {
		raw = raw[:hostNameMax]
	}
	if i := bytes.IndexByte(raw, 0); i >= 0 {
		raw = raw[:i]
	}
	if len(raw) == 0 {
		return "", genericError(op, "empty host name")
	}
	return strings.ToValidUTF8(string(raw), "\uFFFD"), nil
}

// decodeUTF16 decodes a wide-character buffer up to the first NUL.
// Unpaired surrogates are rejected rather than replaced.
func decodeUTF16(op string, w []uint16) (string, error) {
	for i, c := range w {
		if c == 0 {
			w = w[:i]
			break
		}
	}
	if len(w) == 0 {
		return "", genericError(op, "empty UTF-16 string")
	}
	for i := 0; i < len(w); i++ {
		c := rune(w[i])
		if !utf16.IsSurrogate(c) {
			continue
		}
		if c < 0xDC00 && i+1 < len(w) && w[i+1] >= 0xDC00 && w[i+1] <= 0xDFFF {
			i++
			continue
		}
		return "", genericError(op, "invalid UTF-16 at index "+strconv.Itoa(i))
	}
	return string(utf16.Decode(w)), nil
}

// formatRelease normalizes a kernel release string to "major.minor.build"
// using its leading numeric dotted prefix: "6.8.0-45-generic" -> "6.8.0",
// "14.1-RELEASE" -> "14.1.0". Missing fields are 0, extra fields are dropped.
func formatRelease(op, raw string) (string, error) {
	fields := [3]uint64{}
	n := 0
	rest := strings.TrimSpace(raw)
	for n < len(fields) {
		end := 0
		for end < len(rest) && rest[end] >= '0' && rest[end] <= '9' {
			end++
		}
		if end == 0 {
			break
		}
		v, err := strconv.ParseUint(rest[:end], 10, 32)
		if err != nil {
			return "", genericError(op, "unparseable release "+strconv.Quote(raw))
		}
		fields[n] = v
		n++
		rest = rest[end:]
		if !strings.HasPrefix(rest, ".") {
			break
		}
		rest = rest[1:]
	}
	if n == 0 {
		return "", genericError(op, "unparseable release "+strconv.Quote(raw))
	}
	return joinRelease(fields[0], fields[1], fields[2]), nil
}

func joinRelease(major, minor, build uint64) string {
	return strconv.FormatUint(major, 10) + "." +
		strconv.FormatUint(minor, 10) + "." +
		strconv.FormatUint(build, 10)
}
