package datastore

import (
	"crypto/sha256"
	"encoding/hex"
	stderrors "errors"
	"io/fs"
	"path/filepath"

	"github.com/arthur-debert/legacychain/pkg/errors"
	"github.com/arthur-debert/legacychain/pkg/logging"
	"github.com/arthur-debert/legacychain/pkg/types"
	"github.com/rs/zerolog"
)

const tmpSuffix = ".tmp"

type filesystemStore struct {
	fs     types.FS
	dir    string
	codec  Codec
	logger zerolog.Logger
}

// NewFilesystem creates a Store that keeps one document per owner under dir,
// encoded with codec. The directory is created on first write.
func NewFilesystem(fsys types.FS, dir string, codec Codec) Store {
	if codec == nil {
		codec = TOML()
	}
	return &filesystemStore{
		fs:     fsys,
		dir:    dir,
		codec:  codec,
		logger: logging.GetLogger("datastore"),
	}
}

// RecordPath returns the file a record for owner is stored in. The name is
// the SHA256 of the owner, so any identity of any length maps to a safe
// fixed-length file name. Get checks the owner stored inside the document.
func RecordPath(dir string, owner types.Identity, codec Codec) string {
	sum := sha256.Sum256([]byte(owner))
	return filepath.Join(dir, hex.EncodeToString(sum[:])+codec.Extension())
}

func (s *filesystemStore) path(owner types.Identity) string {
	return RecordPath(s.dir, owner, s.codec)
}

func (s *filesystemStore) Get(owner types.Identity) (*types.WillRecord, error) {
	path := s.path(owner)

	data, err := s.fs.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			s.logger.Trace().Str("owner", owner.String()).Msg("No record on disk")
			return nil, nil
		}
		return nil, errors.Wrapf(err, errors.ErrStoreRead, "failed to read will record for %s", owner).
			WithDetail("path", path)
	}

	var doc document
	if err := s.codec.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrapf(err, errors.ErrStoreCorrupt, "failed to decode will record for %s", owner).
			WithDetail("path", path).
			WithDetail("format", s.codec.Name())
	}
	docOwner, rec, err := doc.decode()
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrStoreCorrupt, "failed to decode will record for %s", owner).
			WithDetail("path", path)
	}
	if docOwner != owner {
		return nil, errors.Newf(errors.ErrStoreCorrupt, "record at %s belongs to %q, not %q", path, docOwner, owner).
			WithDetail("path", path)
	}

	return &rec, nil
}

// Set writes the record to a temporary file and renames it over the
// previous one, so readers see either the old or the new record.
func (s *filesystemStore) Set(owner types.Identity, record types.WillRecord) error {
	path := s.path(owner)

	data, err := s.codec.Marshal(newDocument(owner, record))
	if err != nil {
		return errors.Wrapf(err, errors.ErrStoreWrite, "failed to encode will record for %s", owner).
			WithDetail("format", s.codec.Name())
	}

	if err := s.fs.MkdirAll(s.dir, 0755); err != nil {
		return errors.Wrapf(err, errors.ErrStoreWrite, "failed to create store directory %s", s.dir)
	}

	tmp := path + tmpSuffix
	if err := s.fs.WriteFile(tmp, data, 0644); err != nil {
		_ = s.fs.Remove(tmp)
		return errors.Wrapf(err, errors.ErrStoreWrite, "failed to write will record for %s", owner).
			WithDetail("path", tmp)
	}
	if err := s.fs.Rename(tmp, path); err != nil {
		_ = s.fs.Remove(tmp)
		return errors.Wrapf(err, errors.ErrStoreWrite, "failed to replace will record for %s", owner).
			WithDetail("path", path)
	}

	s.logger.Debug().
		Str("owner", owner.String()).
		Str("path", path).
		Bool("executed", record.Executed).
		Msg("Will record written")
	return nil
}
