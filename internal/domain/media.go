package domain

import (
	"encoding/json"
	"fmt"
)

type MediaType string

const (
	MediaTypePhoto       MediaType = "photo"
	MediaTypeVideo       MediaType = "video"
	MediaTypeAnimatedGif MediaType = "animated_gif"
)

// MediaItem is one media descriptor scraped from a timeline. ID is the
// primary key and is stable across re-scrapes of the same asset;
// Timestamp doubles as the version marker: two items with the same ID but
// different Timestamp are different versions of the same entity.
type MediaItem struct {
	ID             string
	Type           MediaType
	URL            string
	ParentURL      string
	VideoURL       string
	DurationMillis int64
	ThumbPath      string
	MediaPath      string
	ContentLength  int64
	HasCache       bool
	Selected       bool
	Timestamp      int64

	// Extra holds fields the catalog does not know about, so imported
	// documents round-trip losslessly.
	Extra map[string]json.RawMessage
}

func (m MediaItem) IsPhoto() bool {
	return m.Type == MediaTypePhoto
}

// DisplayURL resolves the URL the view should load: a cached media path
// wins over the remote source.
func (m MediaItem) DisplayURL() string {
	if m.MediaPath != "" {
		return m.MediaPath
	}
	if m.IsPhoto() {
		return m.URL
	}
	return m.VideoURL
}

var knownFields = map[string]struct{}{
	"id": {}, "type": {}, "url": {}, "parentUrl": {}, "videoUrl": {},
	"durationMillis": {}, "thumbPath": {}, "mediaPath": {}, "contentLength": {},
	"hasCache": {}, "selected": {}, "timestamp": {},
}

func (m *MediaItem) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	take := func(key string, dst any) error {
		v, ok := raw[key]
		if !ok {
			return nil
		}
		if err := json.Unmarshal(v, dst); err != nil {
			return fmt.Errorf("field %q: %w", key, err)
		}
		return nil
	}

	var item MediaItem
	for _, field := range []struct {
		key string
		dst any
	}{
		{"id", &item.ID},
		{"type", &item.Type},
		{"url", &item.URL},
		{"parentUrl", &item.ParentURL},
		{"videoUrl", &item.VideoURL},
		{"durationMillis", &item.DurationMillis},
		{"thumbPath", &item.ThumbPath},
		{"mediaPath", &item.MediaPath},
		{"contentLength", &item.ContentLength},
		{"hasCache", &item.HasCache},
		{"selected", &item.Selected},
		{"timestamp", &item.Timestamp},
	} {
		if err := take(field.key, field.dst); err != nil {
			return err
		}
	}

	for key, v := range raw {
		if _, ok := knownFields[key]; ok {
			continue
		}
		if item.Extra == nil {
			item.Extra = make(map[string]json.RawMessage)
		}
		item.Extra[key] = v
	}

	*m = item
	return nil
}

func (m MediaItem) MarshalJSON() ([]byte, error) {
	out := make(map[string]json.RawMessage, len(m.Extra)+12)
	for key, v := range m.Extra {
		out[key] = v
	}

	put := func(key string, v any) error {
		b, err := json.Marshal(v)
		if err != nil {
			return err
		}
		out[key] = b
		return nil
	}

	_ = put("id", m.ID)
	_ = put("type", m.Type)
	_ = put("url", m.URL)
	_ = put("parentUrl", m.ParentURL)
	if m.VideoURL != "" {
		_ = put("videoUrl", m.VideoURL)
	}
	if m.DurationMillis != 0 {
		_ = put("durationMillis", m.DurationMillis)
	}
	if m.ThumbPath != "" {
		_ = put("thumbPath", m.ThumbPath)
	}
	if m.MediaPath != "" {
		_ = put("mediaPath", m.MediaPath)
	}
	if m.ContentLength != 0 {
		_ = put("contentLength", m.ContentLength)
	}
	if m.HasCache {
		_ = put("hasCache", m.HasCache)
	}
	if m.Selected {
		_ = put("selected", m.Selected)
	}
	if m.Timestamp != 0 {
		_ = put("timestamp", m.Timestamp)
	}

	return json.Marshal(out)
}

// DuplicateSet groups items that refer to the same underlying asset. A set
// is only meaningful while it has at least two members.
type DuplicateSet []MediaItem

// CatalogStats summarizes a snapshot for the view header.
type CatalogStats struct {
	Total  int
	Photos int
}
