package models

// DefaultThumbnail is shown for videos whose metadata carries no thumbnail.
const DefaultThumbnail = "/static/images/placeholder.svg"

// Video is a record as returned by the Reka Vision list endpoint.
type Video struct {
	VideoID  string        `json:"video_id"`
	URL      string        `json:"url,omitempty"`
	Metadata VideoMetadata `json:"metadata"`
}

type VideoMetadata struct {
	Title     string `json:"title,omitempty"`
	VideoName string `json:"video_name,omitempty"`
	Thumbnail string `json:"thumbnail,omitempty"`
	URL       string `json:"url,omitempty"`
}

// DisplayVideo is the simplified shape rendered into the video grid.
type DisplayVideo struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Thumbnail string `json:"thumbnail"`
	URL       string `json:"url"`
}

// Display reshapes an upstream record for the template, filling in
// defaults for missing metadata.
func (v Video) Display() DisplayVideo {
	name := v.Metadata.Title
	if name == "" {
		name = v.Metadata.VideoName
	}
	if name == "" {
		name = "Untitled"
	}

	thumbnail := v.Metadata.Thumbnail
	if thumbnail == "" {
		thumbnail = DefaultThumbnail
	}

	url := v.URL
	if url == "" {
		url = v.Metadata.URL
	}

	return DisplayVideo{
		ID:        v.VideoID,
		Name:      name,
		Thumbnail: thumbnail,
		URL:       url,
	}
}

type UploadVideoRequest struct {
	VideoName string `json:"video_name"`
	VideoURL  string `json:"video_url"`
}

type DeleteVideoRequest struct {
	VideoID string `json:"video_id"`
}
