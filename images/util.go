package images

import (
	"crypto/md5"
	"encoding/binary"
	"fmt"
)

// Checksum generates a deterministic checksum of the colored label map, e.g. to
// verify that two colorings of the same labels are identical. Dimensions are part
// of the digest, so a 2x3 and a 3x2 image with equal bytes hash differently.
//
// Returns:
// - A hex-encoded MD5 checksum string.
// - error if the image fails Validate.
//
// Example:
//
// ```go
//
//	sum, err := img.Checksum()
//	if err != nil {
//	    return err
//	}
//	fmt.Printf("Labels checksum: %s\n", sum)
//
// ```
func (c *ColorImage) Checksum() (string, error) {
	if err := c.Validate(); err != nil {
		return "", err
	}

	var dims [16]byte
	binary.BigEndian.PutUint64(dims[:8], uint64(c.Width))
	binary.BigEndian.PutUint64(dims[8:], uint64(c.Height))

	hash := md5.New()
	hash.Write(dims[:])
	hash.Write(c.Data)
	return fmt.Sprintf("%x", hash.Sum(nil)), nil
}
