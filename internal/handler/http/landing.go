package http

import (
	"bytes"
	"embed"
	"html/template"
	"net/http"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-copper-beam/internal/config"
	"github.com/MKhiriev/go-copper-beam/internal/logger"
	"github.com/mssola/useragent"
)

//go:embed templates/*.html
var templatesFS embed.FS

var pageTemplates = template.Must(template.ParseFS(templatesFS, "templates/*.html"))

const (
	indexTemplate   = "index.html"
	defaultLanding  = "default"
	landingQueryKey = "landing"
	pageCacheMaxAge = "public, max-age=5"
)

// landingTemplates maps the "landing" query value to its template.
var landingTemplates = map[string]string{
	defaultLanding: "landing-default.html",
}

type landingPage struct {
	publicBase  string
	restBase    string
	siteURL     string
	imageURL    string
	analyticsID string
}

type pageView struct {
	PublicBase     string
	RestBase       string
	CanonicalURL   string
	OGTitle        string
	OGDescription  string
	OGURL          string
	OGImage        string
	OGImageWidth   int
	OGImageHeight  int
	OGAuthor       string
	AnalyticsID    string
	UseShadyDOM    bool
	LandingContent template.HTML
}

func newLandingPage(cfg config.App) *landingPage {
	base := strings.TrimRight(cfg.BaseClientURI, "/")
	return &landingPage{
		publicBase:  base + "/s",
		restBase:    base + "/d",
		siteURL:     cfg.BaseClientURI,
		imageURL:    resolveURL(cfg.BaseClientURI, "/s/images/logo700.png"),
		analyticsID: cfg.AnalyticsID,
	}
}

func resolveURL(base, ref string) string {
	b, err := url.Parse(base)
	if err != nil {
		return ref
	}
	r, err := url.Parse(ref)
	if err != nil {
		return base
	}
	return b.ResolveReference(r).String()
}

// landingName returns the known landing template requested by the query,
// falling back to the default one.
func landingName(r *http.Request) string {
	name := strings.TrimSpace(r.URL.Query().Get(landingQueryKey))
	if _, ok := landingTemplates[name]; ok {
		return name
	}
	return defaultLanding
}

// needsShadyDOM reports whether the browser needs the web components
// polyfill forced on.
func needsShadyDOM(userAgent string) bool {
	if strings.Contains(userAgent, "Edge") {
		return true
	}
	browser, _ := useragent.New(userAgent).Browser()
	return browser == "Safari" || browser == "Internet Explorer"
}

func (p *landingPage) render(r *http.Request) ([]byte, error) {
	view := pageView{
		PublicBase:    p.publicBase,
		RestBase:      p.restBase,
		CanonicalURL:  p.siteURL,
		OGTitle:       "CopperBeam",
		OGDescription: "CopperBeam is the world's first hybrid/micropayment paywall consortium",
		OGURL:         p.siteURL,
		OGImage:       p.imageURL,
		OGImageWidth:  700,
		OGImageHeight: 700,
		OGAuthor:      "Channels",
		AnalyticsID:   p.analyticsID,
		UseShadyDOM:   needsShadyDOM(r.UserAgent()),
	}

	var landing bytes.Buffer
	if err := pageTemplates.ExecuteTemplate(&landing, landingTemplates[landingName(r)], view); err != nil {
		return nil, err
	}
	// rendered by html/template above, so already escaped
	view.LandingContent = template.HTML(landing.String())

	var page bytes.Buffer
	if err := pageTemplates.ExecuteTemplate(&page, indexTemplate, view); err != nil {
		return nil, err
	}
	return page.Bytes(), nil
}

func (h *Handler) page(w http.ResponseWriter, r *http.Request) {
	body, err := h.landing.render(r)
	if err != nil {
		logger.FromRequest(r).Error().Err(err).Msg("failed to render landing page")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Cache-Control", pageCacheMaxAge)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}
