package cmd

import (
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"

	"github.com/ZacxDev/swampdocs/handlers"
	"github.com/ZacxDev/swampdocs/logging"
	"github.com/ZacxDev/swampdocs/precache"
	"github.com/ZacxDev/swampdocs/utils"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build a static version of the site",
	RunE: func(cmd *cobra.Command, args []string) error {
		out, _ := cmd.Flags().GetString("out")

		d, err := loadDescriptor(cmd)
		if err != nil {
			return err
		}

		site, err := handlers.NewSite(d)
		if err != nil {
			return err
		}

		_, err = Build(site, out)
		return err
	},
}

// BuildResult summarises a static build.
type BuildResult struct {
	Pages    []string
	Coverage *precache.Report
}

// Build writes the static site into out: public files, stylesheet bundles,
// every routed page, the web-app manifest and the sitemap.
func Build(site *handlers.Site, out string) (*BuildResult, error) {
	log := logging.WithComponent("build")
	log.Info().Str("out", out).Msg("building static site")

	if err := os.MkdirAll(out, os.ModePerm); err != nil {
		return nil, errors.Wrap(err, "creating output directory")
	}

	if err := copyPublic(site.PublicDir(), out); err != nil {
		return nil, errors.Wrap(err, "copying public files")
	}

	if err := site.BundleStyles(filepath.Join(out, handlers.AssetsPrefix)); err != nil {
		return nil, err
	}

	router, err := handlers.SetupRouter(site)
	if err != nil {
		return nil, err
	}

	server := httptest.NewServer(router)
	defer server.Close()

	result := &BuildResult{}
	err = router.Walk(func(route *mux.Route, router *mux.Router, ancestors []*mux.Route) error {
		path, err := route.GetPathTemplate()
		if err != nil {
			return nil // Skip routes without a path template
		}

		// Sitemap is generated separately, assets are already on disk
		if path == "/sitemap.xml" || strings.HasPrefix(path, "/"+handlers.AssetsPrefix+"/") {
			return nil
		}

		file, err := generateStaticPage(server, out, path)
		if err != nil {
			return errors.Wrapf(err, "generating %s", path)
		}
		log.Debug().Str("file", file).Msg("generated")

		if strings.HasSuffix(path, "/") {
			result.Pages = append(result.Pages, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// The fallback page is also written where static hosts look for it.
	if slug, ok := site.FallbackSlug(); ok {
		fallback := filepath.Join(out, strings.Trim(slug, "/"), "index.html")
		if err := copyFile(fallback, filepath.Join(out, "404.html")); err != nil {
			return nil, errors.Wrap(err, "writing 404.html")
		}
	}

	var routes []string
	for _, page := range site.Pages() {
		routes = append(routes, page.Path)
	}
	if err := utils.GenerateSitemaps(out, site.Descriptor.Site, routes); err != nil {
		return nil, errors.Wrap(err, "generating sitemap")
	}

	if site.Cache != nil {
		report, err := precache.Coverage(out, site.Cache.Workbox.GlobPatterns)
		if err != nil {
			return nil, err
		}
		result.Coverage = report
		log.Info().Int("cached", len(report.Matched)).Int("uncached", len(report.Unmatched)).Msg("cache coverage")
		for _, f := range report.Unmatched {
			log.Debug().Str("file", f).Msg("not cached")
		}
	}

	log.Info().Int("pages", len(result.Pages)).Msg("static site generated")
	return result, nil
}

func generateStaticPage(server *httptest.Server, out, route string) (string, error) {
	resp, err := http.Get(server.URL + route)
	if err != nil {
		return "", errors.WithStack(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", errors.Errorf("unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.WithStack(err)
	}

	filePath := filepath.Join(out, filepath.FromSlash(strings.TrimPrefix(route, "/")))
	if strings.HasSuffix(route, "/") {
		filePath = filepath.Join(filePath, "index.html")
	}

	if err := os.MkdirAll(filepath.Dir(filePath), os.ModePerm); err != nil {
		return "", errors.WithStack(err)
	}

	if err := os.WriteFile(filePath, body, 0644); err != nil {
		return "", errors.WithStack(err)
	}

	return filePath, nil
}

func copyPublic(src, out string) error {
	if _, err := os.Stat(src); os.IsNotExist(err) {
		return nil
	}

	return filepath.Walk(src, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		destPath := filepath.Join(out, rel)
		if err := os.MkdirAll(filepath.Dir(destPath), os.ModePerm); err != nil {
			return err
		}
		return copyFile(path, destPath)
	})
}

func copyFile(src, dst string) error {
	input, err := os.ReadFile(src)
	if err != nil {
		return err
	}

	return os.WriteFile(dst, input, 0644)
}

func init() {
	rootCmd.AddCommand(buildCmd)
	buildCmd.Flags().StringP("out", "o", "dist", "Output directory")
}
