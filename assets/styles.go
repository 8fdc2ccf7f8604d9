package assets

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/ZacxDev/swampdocs/logging"
	"github.com/evanw/esbuild/pkg/api"
	"github.com/pkg/errors"
)

var engines = []api.Engine{
	{Name: api.EngineChrome, Version: "100"},
	{Name: api.EngineFirefox, Version: "100"},
	{Name: api.EngineSafari, Version: "15"},
	{Name: api.EngineEdge, Version: "100"},
}

// BundleStyles bundles each stylesheet into outDir under a content-hashed
// name and returns the public URLs, under publicPrefix, in entry order.
func BundleStyles(entries []string, outDir, publicPrefix string) ([]string, error) {
	log := logging.WithComponent("assets")

	if err := os.MkdirAll(outDir, os.ModePerm); err != nil {
		return nil, errors.WithStack(err)
	}

	hrefs := make([]string, 0, len(entries))
	for _, entry := range entries {
		result := api.Build(api.BuildOptions{
			EntryPoints:       []string{entry},
			Bundle:            true,
			MinifyWhitespace:  true,
			MinifyIdentifiers: true,
			MinifySyntax:      true,
			Engines:           engines,
			Loader: map[string]api.Loader{
				".png":   api.LoaderFile,
				".svg":   api.LoaderFile,
				".ttf":   api.LoaderFile,
				".woff":  api.LoaderFile,
				".woff2": api.LoaderFile,
			},
			Sourcemap: api.SourceMapExternal,
			Write:     false,
			Outdir:    outDir,
		})

		if len(result.Errors) > 0 {
			msg := result.Errors[0].Text
			if loc := result.Errors[0].Location; loc != nil {
				msg = fmt.Sprintf("%s:%d: %s", loc.File, loc.Line, msg)
			}
			return nil, errors.Errorf("bundling %s: %s", entry, msg)
		}
		for _, w := range result.Warnings {
			log.Warn().Str("entry", entry).Msg(w.Text)
		}

		href, err := writeOutputs(result.OutputFiles, publicPrefix)
		if err != nil {
			return nil, err
		}
		if href == "" {
			return nil, errors.Errorf("bundling %s: no stylesheet emitted", entry)
		}

		log.Debug().Str("entry", entry).Str("href", href).Msg("bundled stylesheet")
		hrefs = append(hrefs, href)
	}

	return hrefs, nil
}

// writeOutputs writes the bundle with its hash in the file name, the source
// map next to it, and any referenced files unchanged.
func writeOutputs(outputs []api.OutputFile, publicPrefix string) (string, error) {
	var (
		stylesheet *api.OutputFile
		sourceMap  *api.OutputFile
	)

	for i := range outputs {
		out := &outputs[i]
		switch {
		case strings.HasSuffix(out.Path, ".css.map"):
			sourceMap = out
		case strings.HasSuffix(out.Path, ".css"):
			stylesheet = out
		default:
			if err := os.WriteFile(out.Path, out.Contents, 0644); err != nil {
				return "", errors.WithStack(err)
			}
		}
	}

	if stylesheet == nil {
		return "", nil
	}

	dir := filepath.Dir(stylesheet.Path)
	base := strings.TrimSuffix(filepath.Base(stylesheet.Path), ".css")
	hash := strings.NewReplacer("/", "", "+", "", "=", "").Replace(stylesheet.Hash)
	name := fmt.Sprintf("%s_%s.css", base, hash)

	contents := stylesheet.Contents
	if sourceMap != nil {
		if err := os.WriteFile(filepath.Join(dir, name+".map"), sourceMap.Contents, 0644); err != nil {
			return "", errors.WithStack(err)
		}
		contents = append(append([]byte{}, contents...), fmt.Sprintf("/*# sourceMappingURL=%s.map */\n", name)...)
	}

	if err := os.WriteFile(filepath.Join(dir, name), contents, 0644); err != nil {
		return "", errors.WithStack(err)
	}

	return path.Join("/", publicPrefix, name), nil
}
