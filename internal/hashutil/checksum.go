package hashutil

import (
	"bytes"
	"crypto/sha256"
	"fmt"
	"io"

	"github.com/arthur-debert/legacychain/pkg/errors"
	"github.com/arthur-debert/legacychain/pkg/types"
)

// Prefix tags the digests produced by this package
const Prefix = "sha256:"

// Checksum calculates the SHA256 checksum of everything read from r
func Checksum(r io.Reader) (string, error) {
	hash := sha256.New()
	if _, err := io.Copy(hash, r); err != nil {
		return "", err
	}
	return fmt.Sprintf("%s%x", Prefix, hash.Sum(nil)), nil
}

// FileChecksum calculates the checksum of a will document read through fsys
func FileChecksum(fsys types.FS, path string) (string, error) {
	data, err := fsys.ReadFile(path)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrFileAccess, "cannot read will document %s", path).
			WithDetail("path", path)
	}
	return Checksum(bytes.NewReader(data))
}
