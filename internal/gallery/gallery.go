package gallery

import (
	"encoding/json"
	"fmt"
	"strings"
)

// DefaultBaseURL is where the hosted gallery lives.
const DefaultBaseURL = "http://elm-in-action.com/"

// UntitledTitle is used for photos whose metadata carries no title.
const UntitledTitle = "(untitled)"

// Photo is one entry of the gallery listing. Size is in kilobytes.
type Photo struct {
	URL   string
	Size  int
	Title string
}

// UnmarshalJSON decodes one photo object, defaulting a missing title.
func (p *Photo) UnmarshalJSON(data []byte) error {
	var raw struct {
		URL   string  `json:"url"`
		Size  int     `json:"size"`
		Title *string `json:"title"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	p.URL = raw.URL
	p.Size = raw.Size
	if raw.Title != nil {
		p.Title = *raw.Title
	} else {
		p.Title = UntitledTitle
	}
	return nil
}

// Caption is the label shown on a thumbnail, e.g. "Beach day[240 kb]".
func (p Photo) Caption() string {
	return fmt.Sprintf("%s[%d kb]", p.Title, p.Size)
}

// ThumbURL resolves a photo's relative url against the gallery base.
func ThumbURL(base, rel string) string {
	return normalizeBase(base) + rel
}

// LargeURL resolves the full-resolution variant of a photo.
func LargeURL(base, rel string) string {
	return normalizeBase(base) + "large/" + rel
}

func normalizeBase(base string) string {
	if base == "" {
		return DefaultBaseURL
	}
	if !strings.HasSuffix(base, "/") {
		return base + "/"
	}
	return base
}
