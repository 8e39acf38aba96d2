package sections

import "encoding/json"

// GalleryImage is one entry of a product or project image gallery.
type GalleryImage struct {
	URL string `json:"url"`
	Alt string `json:"alt"`
}

// Complete requires only the URL; alt text is optional.
func (g GalleryImage) Complete() bool {
	return !isBlank(g.URL)
}

// ParseGallery reads a stored gallery list, degrading to empty on
// mismatched data.
func ParseGallery(raw []byte) []GalleryImage {
	var images []GalleryImage
	if err := json.Unmarshal(raw, &images); err != nil || images == nil {
		return []GalleryImage{}
	}
	return images
}

// SerializeGallery emits the canonical list with entries missing a URL
// dropped.
func SerializeGallery(images []GalleryImage) (json.RawMessage, error) {
	return json.Marshal(FilterComplete(images, GalleryImage.Complete))
}
