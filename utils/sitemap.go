package utils

import (
	"encoding/xml"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
)

type Sitemap struct {
	XMLName xml.Name `xml:"urlset"`
	Xmlns   string   `xml:"xmlns,attr"`
	Urls    []Url    `xml:"url"`
}

type Url struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

// GenerateSitemaps writes sitemap.xml into outDir.
func GenerateSitemaps(outDir, baseURL string, routes []string) error {
	xmlOutput, err := GenerateSitemapContent(baseURL, routes)
	if err != nil {
		return err
	}

	err = os.WriteFile(filepath.Join(outDir, "sitemap.xml"), []byte(xml.Header+xmlOutput), 0644)
	if err != nil {
		return errors.WithStack(err)
	}

	return nil
}

func GenerateSitemapContent(baseURL string, routes []string) (string, error) {
	baseURL = strings.TrimRight(baseURL, "/")
	sitemap := Sitemap{
		Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9",
	}

	lastMod := time.Now().Format("2006-01-02")
	for _, route := range routes {
		if !strings.HasPrefix(route, "/") {
			route = "/" + route
		}
		sitemap.Urls = append(sitemap.Urls, Url{
			Loc:     baseURL + route,
			LastMod: lastMod,
		})
	}

	xmlOutput, err := xml.MarshalIndent(sitemap, "", "  ")
	if err != nil {
		return "", errors.WithStack(err)
	}

	return string(xmlOutput), nil
}
