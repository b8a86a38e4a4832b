package sitesearch

// Result is a single search hit as returned by the site.
type Result struct {
	URL   string `json:"url"`
	Title string `json:"title"`
	Type  string `json:"type"`
}

type responseBody struct {
	Results *[]Result `json:"results"`
}
