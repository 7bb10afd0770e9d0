package services

import (
	"image-cms/models"
	"image-cms/repositories"
)

type ImageService interface {
	CreateImage(req models.CreateImageRequest) (*models.Image, error)
	GetImages(params models.ListImagesParams) ([]models.ImageSummary, error)
	GetImageByID(id uint) (*models.Image, error)
	UpdateImage(id uint, req models.UpdateImageRequest) (*models.Image, error)
	DeleteImage(id uint) (bool, error)
	ExportImages(params models.ExportImagesParams) ([]models.Image, error)
}

type imageService struct {
	imageRepo repositories.ImageRepository
}

func NewImageService(imageRepo repositories.ImageRepository) ImageService {
	return &imageService{imageRepo: imageRepo}
}

func (s *imageService) CreateImage(req models.CreateImageRequest) (*models.Image, error) {
	return s.imageRepo.Create(req)
}

func (s *imageService) GetImages(params models.ListImagesParams) ([]models.ImageSummary, error) {
	images, err := s.imageRepo.GetList(params)
	if err != nil {
		return nil, err
	}

	summaries := make([]models.ImageSummary, 0, len(images))
	for _, image := range images {
		tags := make([]string, 0, len(image.Tags))
		for _, t := range image.Tags {
			tags = append(tags, t.Tag)
		}
		summaries = append(summaries, models.ImageSummary{
			ID:        image.ID,
			Title:     image.Title,
			Author:    image.Author,
			Tags:      tags,
			CreatedAt: image.CreatedAt,
		})
	}

	return summaries, nil
}

func (s *imageService) GetImageByID(id uint) (*models.Image, error) {
	return s.imageRepo.GetByID(id)
}

func (s *imageService) UpdateImage(id uint, req models.UpdateImageRequest) (*models.Image, error) {
	return s.imageRepo.Update(id, req)
}

func (s *imageService) DeleteImage(id uint) (bool, error) {
	return s.imageRepo.Delete(id)
}

func (s *imageService) ExportImages(params models.ExportImagesParams) ([]models.Image, error) {
	return s.imageRepo.Export(params)
}
