package models

import "github.com/anatolykoptev/go_youtube/internal/engine/params"

// ChannelParts are the channel sub-documents a request may ask for.
var ChannelParts = params.NewTagSet(
	"auditDetails", "brandingSettings", "contentDetails", "contentOwnerDetails", "id",
	"localizations", "snippet", "statistics", "status", "topicDetails",
)

var channelSpec = register(&kindSpec{
	kind:  KindChannel,
	parts: ChannelParts,
	filters: []fieldSpec{
		{name: "forHandle", typ: typeString, doc: "YouTube handle, with or without the leading @"},
		{name: "forUsername", typ: typeString, doc: "Legacy YouTube username"},
		{name: "id", typ: typeList, doc: "Channel IDs as a list or a comma-separated string"},
		{name: "managedByMe", typ: typeBool, doc: "Return only channels managed by the content owner"},
		{name: "mine", typ: typeBool, doc: "Return only channels owned by the authenticated user"},
	},
	modifiers: []fieldSpec{
		{name: "hl", typ: typeString, doc: "Language code for localized metadata"},
		{name: "onBehalfOfContentOwner", typ: typeString, doc: "Content owner on whose behalf the request is made"},
	},
	pageMin: 0,
	pageMax: 50,
})

// ChannelsInput are the arguments of a full channel listing.
type ChannelsInput struct {
	Part                   params.StringOrList `json:"part"`
	ForHandle              *string             `json:"forHandle,omitempty"`
	ForUsername            *string             `json:"forUsername,omitempty"`
	ID                     params.StringOrList `json:"id,omitzero"`
	ManagedByMe            *bool               `json:"managedByMe,omitempty"`
	Mine                   *bool               `json:"mine,omitempty"`
	HL                     *string             `json:"hl,omitempty"`
	OnBehalfOfContentOwner *string             `json:"onBehalfOfContentOwner,omitempty"`
}

func (in ChannelsInput) collect(b *builder) {
	b.handle("forHandle", in.ForHandle)
	b.str("forUsername", in.ForUsername)
	b.ids("id", in.ID)
	b.boolean("managedByMe", in.ManagedByMe)
	b.boolean("mine", in.Mine)
	b.str("hl", in.HL)
	b.str("onBehalfOfContentOwner", in.OnBehalfOfContentOwner)
}

func (in ChannelsInput) Request() (*Request, error) {
	b := newBuilder(channelSpec, in.Part)
	in.collect(b)
	return b.build()
}

// ListChannelsInput are the arguments of a single channel page.
type ListChannelsInput struct {
	ChannelsInput
	PageRequest
}

func (in ListChannelsInput) Request() (*Request, error) {
	b := newBuilder(channelSpec, in.Part)
	in.collect(b)
	b.page(in.PageRequest)
	return b.build()
}

// Channel is a YouTube channel resource.
type Channel struct {
	Kind                string               `json:"kind"`
	Etag                string               `json:"etag,omitempty"`
	ID                  string               `json:"id,omitempty"`
	Snippet             *ChannelSnippet      `json:"snippet,omitempty"`
	ContentDetails      *ChannelContent      `json:"contentDetails,omitempty"`
	Statistics          *ChannelStatistics   `json:"statistics,omitempty"`
	TopicDetails        *TopicDetails        `json:"topicDetails,omitempty"`
	Status              *ChannelStatus       `json:"status,omitempty"`
	BrandingSettings    *BrandingSettings    `json:"brandingSettings,omitempty"`
	AuditDetails        *AuditDetails        `json:"auditDetails,omitempty"`
	ContentOwnerDetails *ContentOwnerDetails `json:"contentOwnerDetails,omitempty"`
	Localizations       map[string]Localized `json:"localizations,omitempty"`
}

type ChannelSnippet struct {
	Title           string      `json:"title"`
	Description     string      `json:"description"`
	CustomURL       string      `json:"customUrl,omitempty"`
	PublishedAt     string      `json:"publishedAt,omitempty"`
	Thumbnails      *Thumbnails `json:"thumbnails,omitempty"`
	DefaultLanguage string      `json:"defaultLanguage,omitempty"`
	Localized       *Localized  `json:"localized,omitempty"`
	Country         string      `json:"country,omitempty"`
}

type RelatedPlaylists struct {
	Likes   string `json:"likes,omitempty"`
	Uploads string `json:"uploads,omitempty"`
}

type ChannelContent struct {
	RelatedPlaylists *RelatedPlaylists `json:"relatedPlaylists,omitempty"`
}

// ChannelStatistics counters are decimal strings, as the API sends them.
type ChannelStatistics struct {
	ViewCount             string `json:"viewCount,omitempty"`
	SubscriberCount       string `json:"subscriberCount,omitempty"`
	HiddenSubscriberCount *bool  `json:"hiddenSubscriberCount,omitempty"`
	VideoCount            string `json:"videoCount,omitempty"`
}

type TopicDetails struct {
	TopicCategories []string `json:"topicCategories,omitempty"`
}

type ChannelStatus struct {
	PrivacyStatus           PrivacyStatus     `json:"privacyStatus,omitempty"`
	IsLinked                *bool             `json:"isLinked,omitempty"`
	LongUploadsStatus       LongUploadsStatus `json:"longUploadsStatus,omitempty"`
	MadeForKids             *bool             `json:"madeForKids,omitempty"`
	SelfDeclaredMadeForKids *bool             `json:"selfDeclaredMadeForKids,omitempty"`
}

type BrandingChannel struct {
	Title                      string `json:"title,omitempty"`
	Description                string `json:"description,omitempty"`
	Keywords                   string `json:"keywords,omitempty"`
	TrackingAnalyticsAccountID string `json:"trackingAnalyticsAccountId,omitempty"`
	UnsubscribedTrailer        string `json:"unsubscribedTrailer,omitempty"`
	DefaultLanguage            string `json:"defaultLanguage,omitempty"`
	Country                    string `json:"country,omitempty"`
}

type BrandingSettings struct {
	Channel *BrandingChannel `json:"channel,omitempty"`
}

// AuditDetails are visible to multichannel networks only.
type AuditDetails struct {
	OverallGoodStanding             *bool `json:"overallGoodStanding,omitempty"`
	CommunityGuidelinesGoodStanding *bool `json:"communityGuidelinesGoodStanding,omitempty"`
	CopyrightStrikesGoodStanding    *bool `json:"copyrightStrikesGoodStanding,omitempty"`
	ContentIDClaimsGoodStanding     *bool `json:"contentIdClaimsGoodStanding,omitempty"`
}

type ContentOwnerDetails struct {
	ContentOwner string `json:"contentOwner,omitempty"`
	TimeLinked   string `json:"timeLinked,omitempty"`
}
