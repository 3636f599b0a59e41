package models

// PrivacyStatus of a channel, playlist, playlist item or video.
type PrivacyStatus string

const (
	PrivacyPrivate  PrivacyStatus = "private"
	PrivacyPublic   PrivacyStatus = "public"
	PrivacyUnlisted PrivacyStatus = "unlisted"
)

// LongUploadsStatus is a channel's long uploads eligibility.
type LongUploadsStatus string

const (
	LongUploadsAllowed    LongUploadsStatus = "allowed"
	LongUploadsDisallowed LongUploadsStatus = "disallowed"
	LongUploadsEligible   LongUploadsStatus = "eligible"
)

// PodcastStatus of a playlist.
type PodcastStatus string

const (
	PodcastEnabled     PodcastStatus = "enabled"
	PodcastDisabled    PodcastStatus = "disabled"
	PodcastUnspecified PodcastStatus = "unspecified"
)

type Thumbnail struct {
	URL    string `json:"url"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
}

type Thumbnails struct {
	Default  *Thumbnail `json:"default,omitempty"`
	Medium   *Thumbnail `json:"medium,omitempty"`
	High     *Thumbnail `json:"high,omitempty"`
	Standard *Thumbnail `json:"standard,omitempty"`
	Maxres   *Thumbnail `json:"maxres,omitempty"`
}

// Localized is a title and description in one language.
type Localized struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}
