package cover

import (
	"net/url"
	"strings"
)

// Known image styles; anything else is served as the original file.
var knownStyles = map[string]struct{}{
	"65_x":  {},
	"100_x": {},
	"200_x": {},
	"large": {},
}

// Styler builds cover URLs for image styles below a public files base URL:
// {base}/styles/{style}/public/{path}.
type Styler struct {
	base        string
	placeholder string
}

func NewStyler(baseURL, placeholderURL string) *Styler {
	return &Styler{base: strings.TrimRight(baseURL, "/"), placeholder: placeholderURL}
}

func (s *Styler) URL(path, style string) string {
	path = strings.TrimLeft(strings.TrimSpace(path), "/")
	if path == "" {
		return s.placeholder
	}
	if u, err := url.Parse(path); err == nil && u.IsAbs() {
		return path
	}
	if _, ok := knownStyles[style]; !ok {
		return s.base + "/" + path
	}
	return s.base + "/styles/" + style + "/public/" + path
}
