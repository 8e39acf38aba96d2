package sections

import (
	"encoding/json"
	"testing"
)

func TestInferVideoType(t *testing.T) {
	tests := []struct {
		url      string
		expected string
	}{
		{"https://youtube.com/watch?v=abc", VideoTypeYouTube},
		{"https://www.youtube.com/watch?v=abc", VideoTypeYouTube},
		{"https://youtu.be/abc", VideoTypeYouTube},
		{"https://YOUTU.BE/abc", VideoTypeYouTube},
		{"https://vimeo.com/12345", VideoTypeVimeo},
		{"https://player.vimeo.com/video/12345", VideoTypeVimeo},
		{"https://cdn.petrobase.example/videos/terminal.mp4", VideoTypeFile},
		{"/uploads/promo.webm", VideoTypeFile},
		{"", VideoTypeFile},
	}

	for _, tt := range tests {
		if got := InferVideoType(tt.url); got != tt.expected {
			t.Errorf("InferVideoType(%q) = %q, expected %q", tt.url, got, tt.expected)
		}
	}
}

func TestNewVideoFromURL(t *testing.T) {
	v := NewVideoFromURL("https://vimeo.com/9000", "Terminal tour")
	if v.Type != VideoTypeVimeo {
		t.Errorf("Type = %q, expected %q", v.Type, VideoTypeVimeo)
	}
	if v.Alt != "Terminal tour" {
		t.Errorf("Alt = %q", v.Alt)
	}
}

// An uploaded file is always a hosted video, even if its name mentions a
// platform.
func TestNewVideoFromUpload_TypeFixed(t *testing.T) {
	v := NewVideoFromUpload("/uploads/youtube-recap.mp4", "")
	if v.Type != VideoTypeFile {
		t.Errorf("Type = %q, expected %q", v.Type, VideoTypeFile)
	}
}

func TestParseVideos_ReinfersMissingType(t *testing.T) {
	raw := `[{"url":"https://youtu.be/abc","alt":""},{"url":"/uploads/a.mp4","alt":"","type":"video"}]`

	videos := ParseVideos([]byte(raw))
	if len(videos) != 2 {
		t.Fatalf("parsed %d videos, expected 2", len(videos))
	}
	if videos[0].Type != VideoTypeYouTube {
		t.Errorf("videos[0].Type = %q, expected re-inferred youtube", videos[0].Type)
	}
	if videos[1].Type != VideoTypeFile {
		t.Errorf("videos[1].Type = %q", videos[1].Type)
	}
}

func TestSerializeVideos_FiltersMissingURL(t *testing.T) {
	videos := []Video{
		{URL: "https://vimeo.com/1", Type: VideoTypeVimeo},
		{URL: "", Alt: "incomplete"},
	}

	out, err := SerializeVideos(videos)
	if err != nil {
		t.Fatalf("SerializeVideos() error = %v", err)
	}

	var stored []Video
	if err := json.Unmarshal(out, &stored); err != nil {
		t.Fatalf("invalid serialized payload: %v", err)
	}
	if len(stored) != 1 {
		t.Fatalf("serialized %d videos, expected 1", len(stored))
	}
	if stored[0].URL != "https://vimeo.com/1" {
		t.Errorf("surviving video = %+v", stored[0])
	}
}

func TestParseVideos_Malformed(t *testing.T) {
	for _, raw := range []string{`{"not":"a list"}`, ``, `42`} {
		if videos := ParseVideos([]byte(raw)); len(videos) != 0 {
			t.Errorf("ParseVideos(%q) = %v, expected empty", raw, videos)
		}
	}
}
