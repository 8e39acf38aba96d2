package sections

import (
	"encoding/json"
	"strings"
)

// Video source types
const (
	VideoTypeFile    = "video"
	VideoTypeYouTube = "youtube"
	VideoTypeVimeo   = "vimeo"
)

// Video is one entry of a product video list. Type distinguishes hosted
// files from embedded players.
type Video struct {
	URL  string `json:"url"`
	Alt  string `json:"alt"`
	Type string `json:"type"`
}

func (v Video) Complete() bool {
	return !isBlank(v.URL)
}

// InferVideoType guesses the player type from a pasted URL.
func InferVideoType(url string) string {
	lower := strings.ToLower(url)
	switch {
	case strings.Contains(lower, "youtube") || strings.Contains(lower, "youtu.be"):
		return VideoTypeYouTube
	case strings.Contains(lower, "vimeo"):
		return VideoTypeVimeo
	default:
		return VideoTypeFile
	}
}

// NewVideoFromURL builds a video row from a pasted URL, inferring its type.
func NewVideoFromURL(url, alt string) Video {
	return Video{URL: url, Alt: alt, Type: InferVideoType(url)}
}

// NewVideoFromUpload builds a video row for an uploaded file; the type is
// always a hosted file regardless of the URL shape.
func NewVideoFromUpload(url, alt string) Video {
	return Video{URL: url, Alt: alt, Type: VideoTypeFile}
}

// ParseVideos reads a stored video list, degrading to empty on mismatched
// data. Rows with a missing type get it re-inferred from the URL so old
// payloads load cleanly.
func ParseVideos(raw []byte) []Video {
	var videos []Video
	if err := json.Unmarshal(raw, &videos); err != nil || videos == nil {
		return []Video{}
	}
	for i, v := range videos {
		if v.Type == "" {
			videos[i].Type = InferVideoType(v.URL)
		}
	}
	return videos
}

// SerializeVideos emits the canonical list with URL-less entries dropped.
func SerializeVideos(videos []Video) (json.RawMessage, error) {
	out := FilterComplete(videos, Video.Complete)
	for i, v := range out {
		if v.Type == "" {
			out[i].Type = InferVideoType(v.URL)
		}
	}
	return json.Marshal(out)
}
