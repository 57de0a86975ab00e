package entity

// Video is a YouTube search result item
type Video struct {
	ID      VideoID      `json:"id"`
	Snippet VideoSnippet `json:"snippet"`
}

type VideoID struct {
	Kind    string `json:"kind"`
	VideoID string `json:"videoId"`
}

type VideoSnippet struct {
	PublishedAt  string                    `json:"publishedAt"`
	ChannelID    string                    `json:"channelId"`
	ChannelTitle string                    `json:"channelTitle"`
	Title        string                    `json:"title"`
	Description  string                    `json:"description"`
	Thumbnails   map[string]VideoThumbnail `json:"thumbnails"`
}

type VideoThumbnail struct {
	URL    string `json:"url"`
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
}
