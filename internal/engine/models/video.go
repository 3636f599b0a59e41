package models

import "github.com/anatolykoptev/go_youtube/internal/engine/params"

var VideoParts = params.NewTagSet(
	"contentDetails", "fileDetails", "id", "liveStreamingDetails", "localizations",
	"paidProductPlacementDetails", "player", "processingDetails", "recordingDetails",
	"snippet", "statistics", "status", "suggestions", "topicDetails",
)

// Chart selects a video chart.
type Chart string

const ChartMostPopular Chart = "mostPopular"

var Charts = params.NewTagSet(string(ChartMostPopular))

func (c Chart) Tag() string { return string(c) }

// MyRating selects videos rated by the authenticated user.
type MyRating string

const (
	RatingLike    MyRating = "like"
	RatingDislike MyRating = "dislike"
)

var MyRatings = params.NewTagSet(string(RatingDislike), string(RatingLike))

func (r MyRating) Tag() string { return string(r) }

var videoSpec = register(&kindSpec{
	kind:  KindVideo,
	parts: VideoParts,
	filters: []fieldSpec{
		{name: "chart", typ: typeEnum, tags: Charts, doc: "Chart to retrieve"},
		{name: "id", typ: typeList, doc: "Video IDs as a list or a comma-separated string"},
		{name: "myRating", typ: typeEnum, tags: MyRatings, doc: "Return videos liked or disliked by the authenticated user"},
	},
	modifiers: []fieldSpec{
		{name: "hl", typ: typeString, doc: "Language code for localized metadata"},
		{name: "maxHeight", typ: typeInt, bounded: true, min: 72, max: 8192, doc: "Maximum height of the embedded player"},
		{name: "maxWidth", typ: typeInt, bounded: true, min: 72, max: 8192, doc: "Maximum width of the embedded player"},
		{name: "onBehalfOfContentOwner", typ: typeString, doc: "Content owner on whose behalf the request is made"},
		{name: "regionCode", typ: typeString, doc: "ISO 3166-1 alpha-2 country code for chart filtering"},
		{name: "videoCategoryId", typ: typeString, doc: "Video category for chart filtering"},
	},
	pageMin: 1,
	pageMax: 50,
	conflicts: []conflict{
		{field: "id", with: "maxResults", reason: "maxResults is not supported with the id filter"},
	},
	sizelessWith: "id",
})

type VideosInput struct {
	Part                   params.StringOrList `json:"part"`
	Chart                  *Chart              `json:"chart,omitempty"`
	ID                     params.StringOrList `json:"id,omitzero"`
	MyRating               *MyRating           `json:"myRating,omitempty"`
	HL                     *string             `json:"hl,omitempty"`
	MaxHeight              *int64              `json:"maxHeight,omitempty"`
	MaxWidth               *int64              `json:"maxWidth,omitempty"`
	OnBehalfOfContentOwner *string             `json:"onBehalfOfContentOwner,omitempty"`
	RegionCode             *string             `json:"regionCode,omitempty"`
	VideoCategoryID        *string             `json:"videoCategoryId,omitempty"`
}

func (in VideosInput) collect(b *builder) {
	if in.Chart != nil {
		b.enum("chart", *in.Chart)
	}
	b.ids("id", in.ID)
	if in.MyRating != nil {
		b.enum("myRating", *in.MyRating)
	}
	b.str("hl", in.HL)
	b.integer("maxHeight", in.MaxHeight)
	b.integer("maxWidth", in.MaxWidth)
	b.str("onBehalfOfContentOwner", in.OnBehalfOfContentOwner)
	b.str("regionCode", in.RegionCode)
	b.str("videoCategoryId", in.VideoCategoryID)
}

func (in VideosInput) Request() (*Request, error) {
	b := newBuilder(videoSpec, in.Part)
	in.collect(b)
	return b.build()
}

type ListVideosInput struct {
	VideosInput
	PageRequest
}

func (in ListVideosInput) Request() (*Request, error) {
	b := newBuilder(videoSpec, in.Part)
	in.collect(b)
	b.page(in.PageRequest)
	return b.build()
}

// Video is a YouTube video resource.
type Video struct {
	Kind                        string                       `json:"kind"`
	Etag                        string                       `json:"etag,omitempty"`
	ID                          string                       `json:"id,omitempty"`
	Snippet                     *VideoSnippet                `json:"snippet,omitempty"`
	ContentDetails              *VideoContentDetails         `json:"contentDetails,omitempty"`
	Status                      *VideoStatus                 `json:"status,omitempty"`
	Statistics                  *VideoStatistics             `json:"statistics,omitempty"`
	PaidProductPlacementDetails *PaidProductPlacementDetails `json:"paidProductPlacementDetails,omitempty"`
	Player                      *Player                      `json:"player,omitempty"`
	TopicDetails                *VideoTopicDetails           `json:"topicDetails,omitempty"`
	RecordingDetails            *RecordingDetails            `json:"recordingDetails,omitempty"`
	FileDetails                 *FileDetails                 `json:"fileDetails,omitempty"`
	ProcessingDetails           *ProcessingDetails           `json:"processingDetails,omitempty"`
	Suggestions                 *Suggestions                 `json:"suggestions,omitempty"`
	LiveStreamingDetails        *LiveStreamingDetails        `json:"liveStreamingDetails,omitempty"`
	Localizations               map[string]Localized         `json:"localizations,omitempty"`
}

type VideoSnippet struct {
	PublishedAt          string      `json:"publishedAt,omitempty"`
	ChannelID            string      `json:"channelId,omitempty"`
	Title                string      `json:"title"`
	Description          string      `json:"description"`
	Thumbnails           *Thumbnails `json:"thumbnails,omitempty"`
	ChannelTitle         string      `json:"channelTitle,omitempty"`
	Tags                 []string    `json:"tags,omitempty"`
	CategoryID           string      `json:"categoryId,omitempty"`
	LiveBroadcastContent string      `json:"liveBroadcastContent,omitempty"`
	DefaultLanguage      string      `json:"defaultLanguage,omitempty"`
	Localized            *Localized  `json:"localized,omitempty"`
	DefaultAudioLanguage string      `json:"defaultAudioLanguage,omitempty"`
}

type RegionRestriction struct {
	Allowed []string `json:"allowed,omitempty"`
	Blocked []string `json:"blocked,omitempty"`
}

type VideoContentDetails struct {
	Duration           string             `json:"duration,omitempty"`
	Dimension          string             `json:"dimension,omitempty"`
	Definition         string             `json:"definition,omitempty"`
	Caption            string             `json:"caption,omitempty"`
	LicensedContent    *bool              `json:"licensedContent,omitempty"`
	RegionRestriction  *RegionRestriction `json:"regionRestriction,omitempty"`
	Projection         string             `json:"projection,omitempty"`
	HasCustomThumbnail *bool              `json:"hasCustomThumbnail,omitempty"`
}

type VideoStatus struct {
	UploadStatus            string        `json:"uploadStatus,omitempty"`
	FailureReason           string        `json:"failureReason,omitempty"`
	RejectionReason         string        `json:"rejectionReason,omitempty"`
	PrivacyStatus           PrivacyStatus `json:"privacyStatus,omitempty"`
	PublishAt               string        `json:"publishAt,omitempty"`
	License                 string        `json:"license,omitempty"`
	Embeddable              *bool         `json:"embeddable,omitempty"`
	PublicStatsViewable     *bool         `json:"publicStatsViewable,omitempty"`
	MadeForKids             *bool         `json:"madeForKids,omitempty"`
	SelfDeclaredMadeForKids *bool         `json:"selfDeclaredMadeForKids,omitempty"`
	ContainsSyntheticMedia  *bool         `json:"containsSyntheticMedia,omitempty"`
}

type VideoStatistics struct {
	ViewCount     string `json:"viewCount,omitempty"`
	LikeCount     string `json:"likeCount,omitempty"`
	DislikeCount  string `json:"dislikeCount,omitempty"`
	FavoriteCount string `json:"favoriteCount,omitempty"`
	CommentCount  string `json:"commentCount,omitempty"`
}

type PaidProductPlacementDetails struct {
	HasPaidProductPlacement *bool `json:"hasPaidProductPlacement,omitempty"`
}

type VideoTopicDetails struct {
	TopicIDs         []string `json:"topicIds,omitempty"`
	RelevantTopicIDs []string `json:"relevantTopicIds,omitempty"`
	TopicCategories  []string `json:"topicCategories,omitempty"`
}

type RecordingDetails struct {
	RecordingDate string `json:"recordingDate,omitempty"`
}

type VideoStream struct {
	WidthPixels  *int64  `json:"widthPixels,omitempty"`
	HeightPixels *int64  `json:"heightPixels,omitempty"`
	FrameRateFps float64 `json:"frameRateFps,omitempty"`
	AspectRatio  float64 `json:"aspectRatio,omitempty"`
	Codec        string  `json:"codec,omitempty"`
	BitrateBps   string  `json:"bitrateBps,omitempty"`
	Rotation     string  `json:"rotation,omitempty"`
	Vendor       string  `json:"vendor,omitempty"`
}

type AudioStream struct {
	ChannelCount *int64 `json:"channelCount,omitempty"`
	Codec        string `json:"codec,omitempty"`
	BitrateBps   string `json:"bitrateBps,omitempty"`
	Vendor       string `json:"vendor,omitempty"`
}

// FileDetails sizes and durations are decimal strings, as the API sends them.
type FileDetails struct {
	FileName     string        `json:"fileName,omitempty"`
	FileSize     string        `json:"fileSize,omitempty"`
	FileType     string        `json:"fileType,omitempty"`
	Container    string        `json:"container,omitempty"`
	VideoStreams []VideoStream `json:"videoStreams,omitempty"`
	AudioStreams []AudioStream `json:"audioStreams,omitempty"`
	DurationMs   string        `json:"durationMs,omitempty"`
	BitrateBps   string        `json:"bitrateBps,omitempty"`
	CreationTime string        `json:"creationTime,omitempty"`
}

type ProcessingProgress struct {
	PartsTotal     string `json:"partsTotal,omitempty"`
	PartsProcessed string `json:"partsProcessed,omitempty"`
	TimeLeftMs     string `json:"timeLeftMs,omitempty"`
}

type ProcessingDetails struct {
	ProcessingStatus              string              `json:"processingStatus,omitempty"`
	ProcessingProgress            *ProcessingProgress `json:"processingProgress,omitempty"`
	ProcessingFailureReason       string              `json:"processingFailureReason,omitempty"`
	FileDetailsAvailability       string              `json:"fileDetailsAvailability,omitempty"`
	ProcessingIssuesAvailability  string              `json:"processingIssuesAvailability,omitempty"`
	TagSuggestionsAvailability    string              `json:"tagSuggestionsAvailability,omitempty"`
	EditorSuggestionsAvailability string              `json:"editorSuggestionsAvailability,omitempty"`
	ThumbnailsAvailability        string              `json:"thumbnailsAvailability,omitempty"`
}

type TagSuggestion struct {
	Tag               string   `json:"tag"`
	CategoryRestricts []string `json:"categoryRestricts,omitempty"`
}

type Suggestions struct {
	ProcessingErrors   []string        `json:"processingErrors,omitempty"`
	ProcessingWarnings []string        `json:"processingWarnings,omitempty"`
	ProcessingHints    []string        `json:"processingHints,omitempty"`
	TagSuggestions     []TagSuggestion `json:"tagSuggestions,omitempty"`
	EditorSuggestions  []string        `json:"editorSuggestions,omitempty"`
}

type LiveStreamingDetails struct {
	ActualStartTime    string `json:"actualStartTime,omitempty"`
	ActualEndTime      string `json:"actualEndTime,omitempty"`
	ScheduledStartTime string `json:"scheduledStartTime,omitempty"`
	ScheduledEndTime   string `json:"scheduledEndTime,omitempty"`
	ConcurrentViewers  string `json:"concurrentViewers,omitempty"`
	ActiveLiveChatID   string `json:"activeLiveChatId,omitempty"`
}
