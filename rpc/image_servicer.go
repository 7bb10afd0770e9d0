package rpc

import (
	"context"

	"image-cms/models"
	"image-cms/rpc/imagepb"
	"image-cms/services"

	"github.com/rs/zerolog/log"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type ImageServicer struct {
	imageService services.ImageService
}

func NewImageServicer(imageService services.ImageService) *ImageServicer {
	return &ImageServicer{imageService: imageService}
}

func (s *ImageServicer) CreateImage(ctx context.Context, req *imagepb.CreateImageRequest) (*imagepb.ImageResponse, error) {
	image, err := s.imageService.CreateImage(models.CreateImageRequest{
		ImageURL: req.ImageUrl,
		Title:    req.Title,
		Author:   req.Author,
		Tags:     req.Tags,
	})
	if err != nil {
		log.Error().Err(err).Msg("grpc create image failed")
		return nil, status.Error(codes.Internal, err.Error())
	}

	return &imagepb.ImageResponse{Image: toImageDetail(image)}, nil
}

func (s *ImageServicer) ListImages(ctx context.Context, req *imagepb.ListImagesRequest) (*imagepb.ListImagesResponse, error) {
	summaries, err := s.imageService.GetImages(models.ListImagesParams{
		Skip:   int(req.Skip),
		Limit:  int(req.Limit),
		Author: req.Author,
		Tag:    req.Tag,
	})
	if err != nil {
		log.Error().Err(err).Msg("grpc list images failed")
		return nil, status.Error(codes.Internal, err.Error())
	}

	resp := &imagepb.ListImagesResponse{Images: make([]*imagepb.ImageSummary, 0, len(summaries))}
	for _, summary := range summaries {
		resp.Images = append(resp.Images, &imagepb.ImageSummary{
			Id:        int64(summary.ID),
			Title:     summary.Title,
			Author:    summary.Author,
			Tags:      summary.Tags,
			CreatedAt: imagepb.NewTimestamp(summary.CreatedAt),
		})
	}

	return resp, nil
}

func (s *ImageServicer) GetImage(ctx context.Context, req *imagepb.GetImageRequest) (*imagepb.ImageResponse, error) {
	image, err := s.imageService.GetImageByID(uint(req.ImageId))
	if err != nil {
		log.Error().Err(err).Int64("id", req.ImageId).Msg("grpc get image failed")
		return nil, status.Error(codes.Internal, err.Error())
	}
	if image == nil {
		return nil, status.Error(codes.NotFound, "Image not found")
	}

	return &imagepb.ImageResponse{Image: toImageDetail(image)}, nil
}

func (s *ImageServicer) UpdateImage(ctx context.Context, req *imagepb.UpdateImageRequest) (*imagepb.ImageResponse, error) {
	update := models.UpdateImageRequest{
		ImageURL: req.ImageUrl,
		Title:    req.Title,
		Author:   req.Author,
	}
	// A present TagList always travels to the repository; empty means
	// "clear all tags", absent means "leave them alone".
	if req.Tags != nil {
		tags := req.Tags.Values
		if tags == nil {
			tags = []string{}
		}
		update.Tags = &tags
	}

	image, err := s.imageService.UpdateImage(uint(req.ImageId), update)
	if err != nil {
		log.Error().Err(err).Int64("id", req.ImageId).Msg("grpc update image failed")
		return nil, status.Error(codes.Internal, err.Error())
	}
	if image == nil {
		return nil, status.Error(codes.NotFound, "Image not found")
	}

	return &imagepb.ImageResponse{Image: toImageDetail(image)}, nil
}

func (s *ImageServicer) DeleteImage(ctx context.Context, req *imagepb.DeleteImageRequest) (*imagepb.DeleteImageResponse, error) {
	deleted, err := s.imageService.DeleteImage(uint(req.ImageId))
	if err != nil {
		log.Error().Err(err).Int64("id", req.ImageId).Msg("grpc delete image failed")
		return nil, status.Error(codes.Internal, err.Error())
	}
	if !deleted {
		return nil, status.Error(codes.NotFound, "Image not found")
	}

	return &imagepb.DeleteImageResponse{Success: true}, nil
}

func (s *ImageServicer) ExportImages(ctx context.Context, req *imagepb.ExportImagesRequest) (*imagepb.ExportImagesResponse, error) {
	images, err := s.imageService.ExportImages(models.ExportImagesParams{
		Author: req.Author,
		Tag:    req.Tag,
	})
	if err != nil {
		log.Error().Err(err).Msg("grpc export images failed")
		return nil, status.Error(codes.Internal, err.Error())
	}

	resp := &imagepb.ExportImagesResponse{Images: make([]*imagepb.ImageDetail, 0, len(images))}
	for i := range images {
		resp.Images = append(resp.Images, toImageDetail(&images[i]))
	}

	return resp, nil
}

func toImageDetail(image *models.Image) *imagepb.ImageDetail {
	tags := make([]string, 0, len(image.Tags))
	for _, t := range image.Tags {
		tags = append(tags, t.Tag)
	}
	return &imagepb.ImageDetail{
		Id:        int64(image.ID),
		ImageUrl:  image.ImageURL,
		Title:     image.Title,
		Author:    image.Author,
		Tags:      tags,
		CreatedAt: imagepb.NewTimestamp(image.CreatedAt),
	}
}
