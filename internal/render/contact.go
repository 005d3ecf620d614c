package render

import (
	"html"
	"strings"
)

// Network describes a profile site whose links are rebuilt from a bare handle.
type Network struct {
	Host       string
	PathPrefix string
	Label      string
}

var (
	LinkedIn = Network{Host: "linkedin.com", PathPrefix: "in/", Label: "LinkedIn"}
	GitHub   = Network{Host: "github.com", Label: "GitHub"}
)

// Handle reduces a profile reference to the bare handle. It accepts the handle
// itself, "@handle", or any URL form of the profile, so Handle(n.URL(h)) == h.
func (n Network) Handle(value string) string {
	s := strings.TrimSpace(value)
	if i := strings.IndexAny(s, "?#"); i >= 0 {
		s = s[:i]
	}

	s = trimPrefixFold(s, "https://")
	s = trimPrefixFold(s, "http://")
	s = trimPrefixFold(s, "www.")
	if rest, ok := cutPrefixFold(s, n.Host+"/"); ok {
		s = trimPrefixFold(rest, n.PathPrefix)
	} else if strings.EqualFold(s, n.Host) {
		return ""
	}

	s = strings.TrimPrefix(strings.TrimLeft(s, "/"), "@")
	if i := strings.Index(s, "/"); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}

// URL is the canonical profile link, or "" when value holds no handle.
func (n Network) URL(value string) string {
	handle := n.Handle(value)
	if handle == "" {
		return ""
	}
	www := ""
	if n.PathPrefix != "" {
		www = "www."
	}
	return "https://" + www + n.Host + "/" + n.PathPrefix + handle
}

// Display is the short form shown as link text, e.g. "github.com/jane".
func (n Network) Display(value string) string {
	handle := n.Handle(value)
	if handle == "" {
		return ""
	}
	return n.Host + "/" + n.PathPrefix + handle
}

func websiteURL(value string) string {
	s := strings.TrimSpace(value)
	if s == "" || strings.Contains(s, "://") {
		return s
	}
	return "https://" + s
}

func websiteDisplay(value string) string {
	s := strings.TrimSpace(value)
	s = trimPrefixFold(s, "https://")
	s = trimPrefixFold(s, "http://")
	s = trimPrefixFold(s, "www.")
	return strings.TrimRight(s, "/")
}

func contactLinks(linkedIn, gitHub, website string) string {
	var links []string
	if url := LinkedIn.URL(linkedIn); url != "" {
		links = append(links, anchor(url, LinkedIn.Display(linkedIn)))
	}
	if url := GitHub.URL(gitHub); url != "" {
		links = append(links, anchor(url, GitHub.Display(gitHub)))
	}
	if url := websiteURL(website); url != "" {
		links = append(links, anchor(url, websiteDisplay(website)))
	}
	if len(links) == 0 {
		return ""
	}
	return " | " + strings.Join(links, " | ")
}

func anchor(href, text string) string {
	return `<a href="` + html.EscapeString(href) + `">` + escape(text) + `</a>`
}

func cutPrefixFold(s, prefix string) (string, bool) {
	if len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix) {
		return s[len(prefix):], true
	}
	return s, false
}

func trimPrefixFold(s, prefix string) string {
	rest, _ := cutPrefixFold(s, prefix)
	return rest
}
