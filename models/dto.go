package models

import "time"

type CreateImageRequest struct {
	ImageURL string   `json:"image_url"`
	Title    string   `json:"title"`
	Author   string   `json:"author"`
	Tags     []string `json:"tags" binding:"required"`
}

// UpdateImageRequest carries a partial update. A nil field was not supplied
// and leaves the stored value untouched; a non-nil field overwrites it. A
// non-nil empty tag list clears all tags.
type UpdateImageRequest struct {
	ImageURL *string   `json:"image_url"`
	Title    *string   `json:"title"`
	Author   *string   `json:"author"`
	Tags     *[]string `json:"tags"`
}

type ListImagesParams struct {
	Skip   int     `form:"skip,default=0"`
	Limit  int     `form:"limit,default=100"`
	Author *string `form:"author"`
	Tag    *string `form:"tag"`
}

type ExportImagesParams struct {
	Author *string `form:"author"`
	Tag    *string `form:"tag"`
}

// ImageSummary is the list view: no image_url, tags flattened to bare strings.
type ImageSummary struct {
	ID        uint      `json:"id"`
	Title     string    `json:"title"`
	Author    string    `json:"author"`
	Tags      []string  `json:"tags"`
	CreatedAt time.Time `json:"created_at"`
}
