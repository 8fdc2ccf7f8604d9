package config

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

var ErrManifestNotObject = errors.New("manifest is not a JSON object")

// OriginEnv overrides the descriptor's site URL when set.
const OriginEnv = "APP_ORIGIN"

// Load reads a descriptor from a YAML file, loads the web-app manifests it
// references and validates the result.
func Load(path string) (*Descriptor, error) {
	_ = godotenv.Load()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading descriptor %s", path)
	}

	var d Descriptor
	if err := yaml.UnmarshalStrict(data, &d); err != nil {
		return nil, errors.Wrapf(err, "parsing descriptor %s", path)
	}

	d.Dir = filepath.Dir(path)

	if origin := os.Getenv(OriginEnv); origin != "" {
		d.Site = origin
	}

	for i := range d.Integrations {
		pwa := d.Integrations[i].PWA
		if pwa == nil || pwa.ManifestPath == "" {
			continue
		}
		manifest, err := LoadManifest(d.Resolve(pwa.ManifestPath))
		if err != nil {
			return nil, err
		}
		pwa.Manifest = manifest
	}

	if err := d.Validate(); err != nil {
		return nil, err
	}

	return &d, nil
}

// LoadManifest reads a web-app manifest. The content is opaque apart from
// being a JSON object; it is compacted so the bytes compare stably.
func LoadManifest(path string) (json.RawMessage, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading manifest %s", path)
	}

	var probe map[string]json.RawMessage
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, errors.Wrapf(ErrManifestNotObject, "%s: %v", path, err)
	}
	if probe == nil {
		return nil, errors.Wrapf(ErrManifestNotObject, "%s", path)
	}

	var buf bytes.Buffer
	if err := json.Compact(&buf, data); err != nil {
		return nil, errors.Wrapf(err, "compacting manifest %s", path)
	}

	return json.RawMessage(buf.Bytes()), nil
}

// Resolve returns p relative to the descriptor's directory.
func (d *Descriptor) Resolve(p string) string {
	if filepath.IsAbs(p) || d.Dir == "" {
		return filepath.Clean(p)
	}
	return filepath.Join(d.Dir, p)
}
