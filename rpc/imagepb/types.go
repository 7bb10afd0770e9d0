// Package imagepb holds the wire types for the ImageService RPC surface,
// maintained by hand against image_service.proto and exchanged with the
// JSON codec registered in codec.go. Optional scalars are pointers so
// field presence survives the wire.
package imagepb

import "time"

// Timestamp is seconds plus nanos since the Unix epoch, UTC.
type Timestamp struct {
	Seconds int64 `json:"seconds"`
	Nanos   int32 `json:"nanos"`
}

func NewTimestamp(t time.Time) *Timestamp {
	t = t.UTC()
	return &Timestamp{Seconds: t.Unix(), Nanos: int32(t.Nanosecond())}
}

func (ts *Timestamp) AsTime() time.Time {
	if ts == nil {
		return time.Time{}
	}
	return time.Unix(ts.Seconds, int64(ts.Nanos)).UTC()
}

type ImageDetail struct {
	Id        int64      `json:"id"`
	ImageUrl  string     `json:"image_url"`
	Title     string     `json:"title"`
	Author    string     `json:"author"`
	Tags      []string   `json:"tags"`
	CreatedAt *Timestamp `json:"created_at"`
}

type ImageSummary struct {
	Id        int64      `json:"id"`
	Title     string     `json:"title"`
	Author    string     `json:"author"`
	Tags      []string   `json:"tags"`
	CreatedAt *Timestamp `json:"created_at"`
}

type CreateImageRequest struct {
	ImageUrl string   `json:"image_url"`
	Title    string   `json:"title"`
	Author   string   `json:"author"`
	Tags     []string `json:"tags"`
}

type ListImagesRequest struct {
	Skip   int32   `json:"skip"`
	Limit  int32   `json:"limit"`
	Author *string `json:"author,omitempty"`
	Tag    *string `json:"tag,omitempty"`
}

type ListImagesResponse struct {
	Images []*ImageSummary `json:"images"`
}

type GetImageRequest struct {
	ImageId int64 `json:"image_id"`
}

// TagList wraps the replacement tag set so list presence is expressible: a
// nil TagList leaves tags untouched, a present-but-empty one clears them.
type TagList struct {
	Values []string `json:"values"`
}

type UpdateImageRequest struct {
	ImageId  int64    `json:"image_id"`
	ImageUrl *string  `json:"image_url,omitempty"`
	Title    *string  `json:"title,omitempty"`
	Author   *string  `json:"author,omitempty"`
	Tags     *TagList `json:"tags,omitempty"`
}

type DeleteImageRequest struct {
	ImageId int64 `json:"image_id"`
}

type DeleteImageResponse struct {
	Success bool `json:"success"`
}

type ExportImagesRequest struct {
	Author *string `json:"author,omitempty"`
	Tag    *string `json:"tag,omitempty"`
}

type ExportImagesResponse struct {
	Images []*ImageDetail `json:"images"`
}

type ImageResponse struct {
	Image *ImageDetail `json:"image"`
}
