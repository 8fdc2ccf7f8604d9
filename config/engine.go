package config

import (
	"bytes"
	"encoding/json"

	"github.com/pkg/errors"
)

var ErrUnknownIntegration = errors.New("unknown integration")

// Package names the site engine knows each integration by.
var enginePackages = map[string]string{
	IntegrationStarlight: "@astrojs/starlight",
	IntegrationPWA:       "@vite-pwa/astro",
	IntegrationReact:     "@astrojs/react",
}

// EngineConfig is the descriptor in the shape the external site engine reads.
type EngineConfig struct {
	Site         string              `json:"site"`
	Markdown     Markdown            `json:"markdown"`
	Integrations []EngineIntegration `json:"integrations"`
}

type EngineIntegration struct {
	Name    string          `json:"name"`
	Options json.RawMessage `json:"options,omitempty"`
}

func (d *Descriptor) ToEngine() (*EngineConfig, error) {
	out := &EngineConfig{
		Site:         d.Site,
		Markdown:     d.Markdown,
		Integrations: make([]EngineIntegration, 0, len(d.Integrations)),
	}

	for _, in := range d.Integrations {
		pkg, ok := enginePackages[in.Name]
		if !ok {
			return nil, errors.Wrapf(ErrUnknownIntegration, "%q", in.Name)
		}

		var payload interface{}
		switch {
		case in.Starlight != nil:
			payload = in.Starlight
		case in.PWA != nil:
			payload = in.PWA
		}

		ei := EngineIntegration{Name: pkg}
		if payload != nil {
			options, err := json.Marshal(payload)
			if err != nil {
				return nil, errors.Wrapf(err, "encoding %s options", in.Name)
			}
			ei.Options = options
		}
		out.Integrations = append(out.Integrations, ei)
	}

	return out, nil
}

// FromEngine rebuilds a descriptor from the engine's shape. Dir and manifest
// paths are not part of that shape and stay empty.
func FromEngine(e *EngineConfig) (*Descriptor, error) {
	d := &Descriptor{
		Site:     e.Site,
		Markdown: e.Markdown,
	}

	for _, ei := range e.Integrations {
		name, ok := integrationForPackage(ei.Name)
		if !ok {
			return nil, errors.Wrapf(ErrUnknownIntegration, "%q", ei.Name)
		}

		in := Integration{Name: name}
		switch name {
		case IntegrationStarlight:
			in.Starlight = &DocsTheme{}
			if err := json.Unmarshal(ei.Options, in.Starlight); err != nil {
				return nil, errors.Wrapf(err, "decoding %s options", ei.Name)
			}
		case IntegrationPWA:
			in.PWA = &OfflineCache{}
			if err := json.Unmarshal(ei.Options, in.PWA); err != nil {
				return nil, errors.Wrapf(err, "decoding %s options", ei.Name)
			}
			if len(in.PWA.Manifest) > 0 {
				var buf bytes.Buffer
				if err := json.Compact(&buf, in.PWA.Manifest); err != nil {
					return nil, errors.Wrap(err, "compacting manifest")
				}
				in.PWA.Manifest = buf.Bytes()
			}
		}
		d.Integrations = append(d.Integrations, in)
	}

	return d, nil
}

func (d *Descriptor) MarshalEngineJSON() ([]byte, error) {
	e, err := d.ToEngine()
	if err != nil {
		return nil, err
	}
	return json.MarshalIndent(e, "", "  ")
}

func ParseEngineJSON(data []byte) (*Descriptor, error) {
	var e EngineConfig
	if err := json.Unmarshal(data, &e); err != nil {
		return nil, errors.Wrap(err, "parsing engine config")
	}
	return FromEngine(&e)
}

func integrationForPackage(pkg string) (string, bool) {
	for name, p := range enginePackages {
		if p == pkg {
			return name, true
		}
	}
	return "", false
}
