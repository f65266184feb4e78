// compressed.go - xz-compressed database snapshots
package sqlitefile

import (
	"bytes"
	"fmt"
	"io"

	"github.com/ulikunitz/xz"
)

var xzMagic = []byte{0xfd, '7', 'z', 'X', 'Z', 0x00}

// IsCompressed reports whether head starts with the xz stream magic.
func IsCompressed(head []byte) bool {
	return bytes.HasPrefix(head, xzMagic)
}

// decompress inflates a whole xz stream into memory so pages can be read
// at arbitrary offsets.
func decompress(r io.Reader) (*bytes.Reader, error) {
	xr, err := xz.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("open xz stream: %w", err)
	}
	data, err := io.ReadAll(xr)
	if err != nil {
		return nil, fmt.Errorf("decompress: %w", err)
	}
	return bytes.NewReader(data), nil
}
