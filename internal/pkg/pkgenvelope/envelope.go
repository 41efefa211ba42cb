package pkgenvelope

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Envelope is the invocation payload: the uploaded filename and its raw bytes.
type Envelope struct {
	Filename  string  `json:"filename"`
	FileBytes ByteSeq `json:"file_bytes"`
}

// ByteSeq is a byte slice encoded in JSON as an array of integers.
type ByteSeq []byte

// MarshalJSON encodes b as [n0,n1,...]. A nil slice encodes as [].
func (b ByteSeq) MarshalJSON() ([]byte, error) {
	out := make([]byte, 0, 2+len(b)*4)
	out = append(out, '[')
	for i, v := range b {
		if i > 0 {
			out = append(out, ',')
		}
		out = strconv.AppendUint(out, uint64(v), 10)
	}
	out = append(out, ']')

	return out, nil
}

// UnmarshalJSON decodes an array of integers in the range 0..255.
func (b *ByteSeq) UnmarshalJSON(data []byte) error {
	var values []int
	if err := json.Unmarshal(data, &values); err != nil {
		return fmt.Errorf("file_bytes: %w", err)
	}

	if values == nil {
		*b = nil
		return nil
	}

	out := make([]byte, len(values))
	for i, v := range values {
		if v < 0 || v > 255 {
			return fmt.Errorf("file_bytes[%d]: value %d out of byte range", i, v)
		}
		out[i] = byte(v)
	}
	*b = out

	return nil
}
