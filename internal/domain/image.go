package domain

import (
	"encoding/json"
	"strings"
)

// dataURIPrefix marks an inline base64 payload ("data:image/png;base64,...").
// Values with this prefix must never reach durable storage.
const dataURIPrefix = "data:"

// ImageRef is a reference to a previously uploaded media asset.
// Persisted images never embed binary data; URL points at the media host.
//
// Historical persisted data stored images as bare URL strings. ImageRef
// accepts both shapes on decode (a JSON string or an object with a "url"
// field) and always re-encodes as an object, so every read path sees one
// canonical shape.
type ImageRef struct {
	ID     string `json:"id,omitempty"`
	URL    string `json:"url,omitempty"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
	Mime   string `json:"mime,omitempty"`
}

// UnmarshalJSON accepts either a bare string URL or an ImageRef object.
// Malformed elements decode to a zero ImageRef rather than failing the
// surrounding document; legacy exports contain the odd junk element and a
// single bad image must not lose the whole collection.
func (r *ImageRef) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*r = ImageRef{URL: s}
		return nil
	}

	type plain ImageRef // drops methods, avoids recursion
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		*r = ImageRef{}
		return nil
	}
	*r = ImageRef(p)
	return nil
}

// IsDataURI reports whether s is an inline base64 payload.
func IsDataURI(s string) bool {
	return strings.HasPrefix(s, dataURIPrefix)
}

// RenderURL resolves an image reference to a renderable URL.
// It accepts the shapes that occur in live and legacy data: a bare string,
// an ImageRef (or pointer), or a decoded-JSON object with a "url" field.
// The second return is false for malformed or id-only references.
func RenderURL(v any) (string, bool) {
	switch img := v.(type) {
	case string:
		if img == "" {
			return "", false
		}
		return img, true
	case ImageRef:
		if img.URL == "" {
			return "", false
		}
		return img.URL, true
	case *ImageRef:
		if img == nil || img.URL == "" {
			return "", false
		}
		return img.URL, true
	case map[string]any:
		url, ok := img["url"].(string)
		if !ok || url == "" {
			return "", false
		}
		return url, true
	}
	return "", false
}
