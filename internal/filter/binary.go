package filter

import "bytes"

// sniffLen is how much of the data IsBinary inspects, matching GNU grep.
const sniffLen = 8192

// IsBinary checks if data appears to be binary by scanning for NUL bytes
// in the first 8KB.
func IsBinary(data []byte) bool {
	limit := sniffLen
	if len(data) < limit {
		limit = len(data)
	}
	return bytes.IndexByte(data[:limit], 0) >= 0
}
