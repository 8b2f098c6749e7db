package models

import "testing"

func TestVideoDisplay(t *testing.T) {
	tests := []struct {
		name     string
		video    Video
		expected DisplayVideo
	}{
		{
			"full metadata",
			Video{
				VideoID: "v1",
				URL:     "https://cdn.example.com/v1.mp4",
				Metadata: VideoMetadata{
					Title:     "Algebra Basics",
					Thumbnail: "https://cdn.example.com/v1.jpg",
				},
			},
			DisplayVideo{
				ID:        "v1",
				Name:      "Algebra Basics",
				Thumbnail: "https://cdn.example.com/v1.jpg",
				URL:       "https://cdn.example.com/v1.mp4",
			},
		},
		{
			"video_name when title missing",
			Video{
				VideoID:  "v2",
				Metadata: VideoMetadata{VideoName: "lecture.mp4"},
			},
			DisplayVideo{ID: "v2", Name: "lecture.mp4", Thumbnail: DefaultThumbnail},
		},
		{
			"untitled when no name at all",
			Video{VideoID: "v3"},
			DisplayVideo{ID: "v3", Name: "Untitled", Thumbnail: DefaultThumbnail},
		},
		{
			"placeholder thumbnail",
			Video{
				VideoID:  "v4",
				Metadata: VideoMetadata{Title: "No Thumb"},
			},
			DisplayVideo{ID: "v4", Name: "No Thumb", Thumbnail: DefaultThumbnail},
		},
		{
			"metadata url fallback",
			Video{
				VideoID: "v5",
				Metadata: VideoMetadata{
					Title:     "Nested URL",
					Thumbnail: "thumb.jpg",
					URL:       "https://cdn.example.com/v5.mp4",
				},
			},
			DisplayVideo{
				ID:        "v5",
				Name:      "Nested URL",
				Thumbnail: "thumb.jpg",
				URL:       "https://cdn.example.com/v5.mp4",
			},
		},
		{
			"top-level url wins over metadata",
			Video{
				VideoID: "v6",
				URL:     "https://cdn.example.com/top.mp4",
				Metadata: VideoMetadata{
					Title:     "Both URLs",
					Thumbnail: "thumb.jpg",
					URL:       "https://cdn.example.com/nested.mp4",
				},
			},
			DisplayVideo{
				ID:        "v6",
				Name:      "Both URLs",
				Thumbnail: "thumb.jpg",
				URL:       "https://cdn.example.com/top.mp4",
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.video.Display()
			if got != tc.expected {
				t.Errorf("Expected %+v, got %+v", tc.expected, got)
			}
		})
	}
}
