package model

import "encoding/json"

// LibraryEntry mirrors one metadata item from the backend's library
// listing. Only the fields the dashboard renders are decoded; everything
// else in the payload is ignored. Field presence is unreliable upstream,
// so every field except the identity key and title is optional and missing
// values degrade to sentinels during projection.
type LibraryEntry struct {
	RatingKey      string          `json:"ratingKey"`
	Title          string          `json:"title"`
	Year           int             `json:"year,omitempty"`
	AudienceRating float64         `json:"audienceRating,omitempty"`
	AddedAt        int64           `json:"addedAt,omitempty"` // unix seconds
	Label          json.RawMessage `json:"Label,omitempty"`   // shape varies, see NormalizeLabels
	Media          []MediaVariant  `json:"Media,omitempty"`
}

// MediaVariant carries the technical info of one media file backing an
// entry. The dashboard only looks at the first variant.
type MediaVariant struct {
	VideoResolution string `json:"videoResolution,omitempty"`
	AudioCodec      string `json:"audioCodec,omitempty"`
}
