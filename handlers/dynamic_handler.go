package handlers

import (
	_ "embed"
	"fmt"
	"html/template"
	"net/http"
	"os"
	"strings"

	"github.com/ZacxDev/swampdocs/logging"
	"github.com/ZacxDev/swampdocs/nav"
	"github.com/ZacxDev/swampdocs/utils"
	"github.com/gobuffalo/plush"
	"github.com/gorilla/mux"
	"github.com/pkg/errors"
)

//go:embed templates/base.plush.html
var baseLayout string

// Slots the layout lets the descriptor replace, with the context key the
// rendered override is stored under. ContentPanel sees the page in yield.
var overrideSlots = []struct {
	slot string
	key  string
}{
	{"Head", "headOverride"},
	{"SocialIcons", "socialIconsOverride"},
	{"ContentPanel", "contentPanelOverride"},
	{"Footer", "footerOverride"},
}

func SetupRouter(site *Site) (*mux.Router, error) {
	router := mux.NewRouter()

	// Pages are served with a trailing slash; redirect the bare form.
	if site.Cache != nil && site.Cache.Experimental.DirectoryAndTrailingSlashHandler {
		router.StrictSlash(true)
	}

	router.NotFoundHandler = Custom404Handler(site)

	if site.AssetsDir != "" {
		prefix := "/" + AssetsPrefix + "/"
		router.PathPrefix(prefix).Handler(http.StripPrefix(prefix, http.FileServer(http.Dir(site.AssetsDir))))
	}

	var routes []string
	for _, page := range site.Pages() {
		router.HandleFunc(page.Path, DynamicHandler(site, page)).Methods("GET")
		routes = append(routes, page.Path)
	}

	if slug, ok := site.FallbackSlug(); ok {
		page := Page{Path: nav.Href(slug), Slug: slug}
		router.HandleFunc(page.Path, DynamicHandler(site, page)).Methods("GET")
	}

	if site.Cache != nil {
		manifest := site.Cache.Manifest
		router.HandleFunc("/manifest.webmanifest", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/manifest+json")
			w.Write(manifest)
		}).Methods("GET")
	}

	sitemap, err := utils.GenerateSitemapContent(site.Descriptor.Site, routes)
	if err != nil {
		return nil, errors.Wrap(err, "generating sitemap")
	}
	router.HandleFunc("/sitemap.xml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/xml")
		w.Write([]byte(sitemap))
	}).Methods("GET")

	return router, nil
}

func DynamicHandler(site *Site, page Page) http.HandlerFunc {
	log := logging.WithComponent("handlers")

	return func(w http.ResponseWriter, r *http.Request) {
		html, err := renderPage(site, page)
		if err != nil {
			log.Error().Err(err).Str("path", page.Path).Msg("rendering page")
			http.Error(w, fmt.Sprintf("Error rendering page: %v", err), http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if _, err := w.Write([]byte(html)); err != nil {
			log.Error().Err(err).Str("path", page.Path).Msg("writing response")
		}
	}
}

func renderPage(site *Site, page Page) (string, error) {
	source, err := site.Content.Resolve(page.Slug)
	if err != nil {
		return "", err
	}

	src, err := os.ReadFile(source)
	if err != nil {
		return "", errors.WithStack(err)
	}

	doc, err := site.Pipeline.Render(src)
	if err != nil {
		return "", errors.Wrapf(err, "rendering %s", source)
	}

	title := doc.Title
	if title == "" {
		title = site.Theme.Title
	}

	sidebar, err := nav.Render(nav.Build(site.Theme, page.Path))
	if err != nil {
		return "", err
	}

	ctx := plush.NewContext()
	ctx.Set("title", title)
	ctx.Set("description", doc.Description)
	ctx.Set("siteTitle", site.Theme.Title)
	ctx.Set("canonical", strings.TrimRight(site.Descriptor.Site, "/")+page.Path)
	ctx.Set("currentPath", page.Path)
	ctx.Set("favicon", publicURL(site.Theme.Favicon))
	ctx.Set("logo", publicURL(site.Theme.Logo.Src))
	ctx.Set("social", site.Theme.Social)
	ctx.Set("styles", site.Styles)
	ctx.Set("hasManifest", site.Cache != nil)
	ctx.Set("sidebar", sidebar)
	ctx.Set("yield", template.HTML(fmt.Sprintf("<h1 id=\"_top\">%s</h1>\n%s", template.HTMLEscapeString(title), doc.HTML)))

	for _, o := range overrideSlots {
		file, ok := site.Theme.Components.Get(o.slot)
		ctx.Set("has"+o.slot, ok)
		ctx.Set(o.key, template.HTML(""))
		if !ok {
			continue
		}

		out, err := renderPlushTemplate(site.Descriptor.Resolve(file), ctx)
		if err != nil {
			return "", errors.Wrapf(err, "rendering %s override", o.slot)
		}
		ctx.Set(o.key, template.HTML(out))
	}

	layout, err := plush.Parse(baseLayout)
	if err != nil {
		return "", errors.Wrap(err, "parsing base layout")
	}

	out, err := layout.Exec(ctx)
	if err != nil {
		return "", errors.Wrap(err, "executing base layout")
	}

	return out, nil
}

func renderPlushTemplate(source string, ctx *plush.Context) (string, error) {
	content, err := os.ReadFile(source)
	if err != nil {
		return "", errors.WithStack(err)
	}

	template, err := plush.Parse(string(content))
	if err != nil {
		return "", err
	}

	return template.Exec(ctx)
}
