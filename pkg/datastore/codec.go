package datastore

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/arthur-debert/legacychain/pkg/errors"
	"github.com/arthur-debert/legacychain/pkg/types"
	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Codec names accepted by CodecByName
const (
	CodecTOML = "toml"
	CodecYAML = "yaml"
	CodecJSON = "json"
)

// encodingHex marks documents whose text fields are hex encoded. Identities
// are opaque byte strings, and not every codec writes invalid UTF-8 back
// unchanged, so such documents are stored in this form.
const encodingHex = "hex"

// document is the on-disk shape of a will record. The owner is written
// alongside the record so a file is self-describing.
type document struct {
	Owner         types.Identity   `json:"owner" toml:"owner" yaml:"owner"`
	ContentHash   string           `json:"content_hash" toml:"content_hash" yaml:"content_hash"`
	Beneficiaries []types.Identity `json:"beneficiaries" toml:"beneficiaries" yaml:"beneficiaries"`
	Executed      bool             `json:"executed" toml:"executed" yaml:"executed"`
	Encoding      string           `json:"encoding,omitempty" toml:"encoding,omitempty" yaml:"encoding,omitempty"`
}

func validUTF8(owner types.Identity, rec types.WillRecord) bool {
	if !utf8.ValidString(string(owner)) || !utf8.ValidString(rec.ContentHash) {
		return false
	}
	for _, b := range rec.Beneficiaries {
		if !utf8.ValidString(string(b)) {
			return false
		}
	}
	return true
}

func newDocument(owner types.Identity, rec types.WillRecord) document {
	rec = rec.Clone()
	doc := document{
		Owner:         owner,
		ContentHash:   rec.ContentHash,
		Beneficiaries: rec.Beneficiaries,
		Executed:      rec.Executed,
	}
	if validUTF8(owner, rec) {
		return doc
	}

	doc.Encoding = encodingHex
	doc.Owner = types.Identity(hex.EncodeToString([]byte(owner)))
	doc.ContentHash = hex.EncodeToString([]byte(rec.ContentHash))
	for i, b := range rec.Beneficiaries {
		doc.Beneficiaries[i] = types.Identity(hex.EncodeToString([]byte(b)))
	}
	return doc
}

func unhex(s string) (string, error) {
	raw, err := hex.DecodeString(s)
	return string(raw), err
}

// decode returns the owner and record a document holds
func (d document) decode() (types.Identity, types.WillRecord, error) {
	beneficiaries := make([]types.Identity, 0, len(d.Beneficiaries))
	rec := types.WillRecord{ContentHash: d.ContentHash, Executed: d.Executed}

	switch d.Encoding {
	case "":
		rec.Beneficiaries = append(beneficiaries, d.Beneficiaries...)
		return d.Owner, rec, nil
	case encodingHex:
	default:
		return "", types.WillRecord{}, fmt.Errorf("unknown encoding %q", d.Encoding)
	}

	owner, err := unhex(string(d.Owner))
	if err != nil {
		return "", types.WillRecord{}, fmt.Errorf("owner: %w", err)
	}
	if rec.ContentHash, err = unhex(d.ContentHash); err != nil {
		return "", types.WillRecord{}, fmt.Errorf("content_hash: %w", err)
	}
	for _, b := range d.Beneficiaries {
		id, err := unhex(string(b))
		if err != nil {
			return "", types.WillRecord{}, fmt.Errorf("beneficiaries: %w", err)
		}
		beneficiaries = append(beneficiaries, types.Identity(id))
	}
	rec.Beneficiaries = beneficiaries
	return types.Identity(owner), rec, nil
}

// Codec encodes will documents for the file-backed store
type Codec interface {
	Name() string
	Extension() string
	Marshal(v interface{}) ([]byte, error)
	Unmarshal(data []byte, v interface{}) error
}

type tomlCodec struct{}

func (tomlCodec) Name() string                               { return CodecTOML }
func (tomlCodec) Extension() string                          { return ".toml" }
func (tomlCodec) Marshal(v interface{}) ([]byte, error)      { return toml.Marshal(v) }
func (tomlCodec) Unmarshal(data []byte, v interface{}) error { return toml.Unmarshal(data, v) }

type yamlCodec struct{}

func (yamlCodec) Name() string                               { return CodecYAML }
func (yamlCodec) Extension() string                          { return ".yaml" }
func (yamlCodec) Marshal(v interface{}) ([]byte, error)      { return yaml.Marshal(v) }
func (yamlCodec) Unmarshal(data []byte, v interface{}) error { return yaml.Unmarshal(data, v) }

type jsonCodec struct{}

func (jsonCodec) Name() string      { return CodecJSON }
func (jsonCodec) Extension() string { return ".json" }

func (jsonCodec) Marshal(v interface{}) ([]byte, error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(b, '\n'), nil
}

func (jsonCodec) Unmarshal(data []byte, v interface{}) error { return json.Unmarshal(data, v) }

// TOML returns the TOML codec, the default on-disk format
func TOML() Codec { return tomlCodec{} }

// YAML returns the YAML codec
func YAML() Codec { return yamlCodec{} }

// JSON returns the JSON codec
func JSON() Codec { return jsonCodec{} }

// CodecByName returns the codec registered under name (case-insensitive)
func CodecByName(name string) (Codec, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case CodecTOML, "":
		return TOML(), nil
	case CodecYAML, "yml":
		return YAML(), nil
	case CodecJSON:
		return JSON(), nil
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown store format: %s", name).
			WithDetail("format", name)
	}
}
