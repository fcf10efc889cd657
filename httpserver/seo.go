package httpserver

import "movify/movie"

// Head is the metadata block a page template renders into <head>. Fields
// are always present; an unresolvable value is an empty string, never
// omitted.
type Head struct {
	SEO        SEOMeta
	OG         OpenGraphMeta
	Twitter    TwitterMeta
	SiteName   string
	ThemeColor string
}

type SEOMeta struct {
	Title        string
	Description  string
	Keywords     string
	Author       string
	CanonicalURL string
}

type OpenGraphMeta struct {
	Title       string
	Description string
	Image       string
	URL         string
}

type TwitterMeta struct {
	Title       string
	Description string
	Image       string
}

// Override carries per-page values that beat the page defaults. The set is
// closed: pages cannot inject arbitrary keys into the rendered head.
type Override struct {
	Title        string
	Description  string
	Keywords     string
	Author       string
	CanonicalURL string
	Image        string
	URL          string
}

// PageMeta is the defaults table for one page.
type PageMeta struct {
	Title        string
	Description  string
	Keywords     string
	Author       string
	CanonicalURL string

	OGTitle       string
	OGDescription string
	OGImage       string
	OGURL         string

	TwitterTitle       string
	TwitterDescription string
	TwitterImage       string

	SiteName   string
	ThemeColor string
}

// BuildHead resolves each field as override first, page default second,
// empty string last.
func BuildHead(o Override, d PageMeta) Head {
	return Head{
		SEO: SEOMeta{
			Title:        firstNonEmpty(o.Title, d.Title),
			Description:  firstNonEmpty(o.Description, d.Description),
			Keywords:     firstNonEmpty(o.Keywords, d.Keywords),
			Author:       firstNonEmpty(o.Author, d.Author),
			CanonicalURL: firstNonEmpty(o.CanonicalURL, d.CanonicalURL),
		},
		OG: OpenGraphMeta{
			Title:       firstNonEmpty(o.Title, d.OGTitle),
			Description: firstNonEmpty(o.Description, d.OGDescription),
			Image:       firstNonEmpty(o.Image, d.OGImage),
			URL:         firstNonEmpty(o.URL, d.OGURL),
		},
		Twitter: TwitterMeta{
			Title:       firstNonEmpty(o.Title, d.TwitterTitle),
			Description: firstNonEmpty(o.Description, d.TwitterDescription),
			Image:       firstNonEmpty(o.Image, d.TwitterImage),
		},
		SiteName:   d.SiteName,
		ThemeColor: d.ThemeColor,
	}
}

// MovieOverride maps a record onto the head fields a detail page overrides.
func MovieOverride(m movie.Movie) Override {
	return Override{
		Title:       m.Title,
		Description: m.Description,
		Keywords:    m.Genre,
		Image:       m.ImageURL,
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
