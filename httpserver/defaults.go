package httpserver

// Per-page head defaults. Detail pages override these with record fields.

var sharedDefaults = PageMeta{
	Description:   "Browse, post and manage a movie catalog.",
	Keywords:      "movies, catalog, reviews",
	Author:        "Movify",
	CanonicalURL:  "https://movify.example.com",
	OGTitle:       "Movify",
	OGDescription: "Browse, post and manage a movie catalog.",
	SiteName:      "Movify",
	ThemeColor:    "#0f172a",
}

var (
	homePage  = withTitle("Movify")
	postPage  = withTitle("Post Movie")
	editPage  = withTitle("Edit Movie")
	authPage  = withTitle("Admin Login")
	errorPage = withTitle("Something went wrong")
)

func withTitle(title string) PageMeta {
	meta := sharedDefaults
	meta.Title = title
	return meta
}
