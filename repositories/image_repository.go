package repositories

import (
	"errors"

	"image-cms/models"

	"gorm.io/gorm"
)

type ImageRepository interface {
	Create(req models.CreateImageRequest) (*models.Image, error)
	GetList(params models.ListImagesParams) ([]models.Image, error)
	GetByID(id uint) (*models.Image, error)
	Update(id uint, req models.UpdateImageRequest) (*models.Image, error)
	Delete(id uint) (bool, error)
	Export(params models.ExportImagesParams) ([]models.Image, error)
}

type imageRepository struct {
	db          *gorm.DB
	exportLimit int
}

func NewImageRepository(db *gorm.DB, exportLimit int) ImageRepository {
	return &imageRepository{db: db, exportLimit: exportLimit}
}

func (r *imageRepository) Create(req models.CreateImageRequest) (*models.Image, error) {
	image := models.Image{
		ImageURL: req.ImageURL,
		Title:    req.Title,
		Author:   req.Author,
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&image).Error; err != nil {
			return err
		}
		for _, tag := range req.Tags {
			if err := tx.Create(&models.ImageTag{ImageID: image.ID, Tag: tag}).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return r.GetByID(image.ID)
}

func (r *imageRepository) GetList(params models.ListImagesParams) ([]models.Image, error) {
	var images []models.Image

	query := r.db.Model(&models.Image{}).Preload("Tags")

	if params.Author != nil {
		query = query.Where("author = ?", *params.Author)
	}

	// Existence check rather than a join: an image with several matching
	// tag rows must still appear once.
	if params.Tag != nil {
		query = query.Where(
			"EXISTS (SELECT 1 FROM image_tags WHERE image_tags.image_id = images.id AND image_tags.tag = ?)",
			*params.Tag,
		)
	}

	err := query.Order("images.id").
		Offset(params.Skip).
		Limit(params.Limit).
		Find(&images).Error

	return images, err
}

func (r *imageRepository) GetByID(id uint) (*models.Image, error) {
	var image models.Image
	err := r.db.Preload("Tags").First(&image, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &image, nil
}

func (r *imageRepository) Update(id uint, req models.UpdateImageRequest) (*models.Image, error) {
	var found bool

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var image models.Image
		if err := tx.First(&image, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}
		found = true

		updates := map[string]interface{}{}
		if req.ImageURL != nil {
			updates["image_url"] = *req.ImageURL
		}
		if req.Title != nil {
			updates["title"] = *req.Title
		}
		if req.Author != nil {
			updates["author"] = *req.Author
		}
		if len(updates) > 0 {
			if err := tx.Model(&image).Updates(updates).Error; err != nil {
				return err
			}
		}

		// A supplied tag list replaces the whole set; an empty list clears it.
		if req.Tags != nil {
			if err := tx.Where("image_id = ?", id).Delete(&models.ImageTag{}).Error; err != nil {
				return err
			}
			for _, tag := range *req.Tags {
				if err := tx.Create(&models.ImageTag{ImageID: id, Tag: tag}).Error; err != nil {
					return err
				}
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}

	return r.GetByID(id)
}

func (r *imageRepository) Delete(id uint) (bool, error) {
	var found bool

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var image models.Image
		if err := tx.First(&image, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}
		found = true

		// Tag rows first, then the image row, in one transaction.
		if err := tx.Where("image_id = ?", id).Delete(&models.ImageTag{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Image{}, id).Error
	})
	if err != nil {
		return false, err
	}

	return found, nil
}

func (r *imageRepository) Export(params models.ExportImagesParams) ([]models.Image, error) {
	return r.GetList(models.ListImagesParams{
		Skip:   0,
		Limit:  r.exportLimit,
		Author: params.Author,
		Tag:    params.Tag,
	})
}
