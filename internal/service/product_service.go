package service

import (
	"context"
	"io"

	"github.com/atulmcoder/sbsauto2Server/internal/config"
	"github.com/atulmcoder/sbsauto2Server/internal/models"
	"github.com/atulmcoder/sbsauto2Server/internal/repository"
	"github.com/atulmcoder/sbsauto2Server/internal/storage"
)

const (
	mainImageFolder = "products/main"
	galleryFolder   = "products/gallery"
)

// ImageUpload is one buffered multipart file handed to the upload pipeline.
// The boundary guarantees Size is within the configured per-file limit.
type ImageUpload struct {
	FileName string
	Size     int64
	File     io.Reader
}

type ProductService interface {
	GetAll(ctx context.Context) ([]models.Product, error)
	GetByID(ctx context.Context, productID string) (*models.Product, error)
	Create(ctx context.Context, payload models.ProductPayload, mainImage *ImageUpload, gallery []ImageUpload) (*models.Product, error)
	Update(ctx context.Context, productID string, payload models.ProductPayload, mainImage *ImageUpload, gallery []ImageUpload) (*models.Product, error)
	Delete(ctx context.Context, productID string) error
}

type productService struct {
	productRepo repository.ProductRepository
	media       storage.MediaStorage
	cfg         *config.Config
}

func NewProductService(productRepo repository.ProductRepository, media storage.MediaStorage, cfg *config.Config) ProductService {
	return &productService{
		productRepo: productRepo,
		media:       media,
		cfg:         cfg,
	}
}

func (s *productService) GetAll(ctx context.Context) ([]models.Product, error) {
	return s.productRepo.GetAll(ctx)
}

func (s *productService) GetByID(ctx context.Context, productID string) (*models.Product, error) {
	return s.productRepo.GetByID(ctx, productID)
}

func (s *productService) Create(ctx context.Context, payload models.ProductPayload, mainImage *ImageUpload, gallery []ImageUpload) (*models.Product, error) {
	product := &models.Product{}
	payload.ApplyTo(product)

	if err := s.uploadMainImage(ctx, product, mainImage); err != nil {
		return nil, err
	}

	if err := s.uploadGallery(ctx, product, gallery); err != nil {
		return nil, err
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

func (s *productService) Update(ctx context.Context, productID string, payload models.ProductPayload, mainImage *ImageUpload, gallery []ImageUpload) (*models.Product, error) {
	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	payload.ApplyTo(product)

	if err := s.uploadMainImage(ctx, product, mainImage); err != nil {
		return nil, err
	}

	if err := s.uploadGallery(ctx, product, gallery); err != nil {
		return nil, err
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	return product, nil
}

func (s *productService) Delete(ctx context.Context, productID string) error {
	// Stored media is not cleaned up; the host keeps orphaned assets.
	return s.productRepo.Delete(ctx, productID)
}

// uploadMainImage replaces the current main image reference when a file is
// present.
func (s *productService) uploadMainImage(ctx context.Context, product *models.Product, upload *ImageUpload) error {
	if upload == nil {
		return nil
	}

	url, assetID, err := s.media.UploadImage(ctx, mainImageFolder, upload.FileName, upload.File, upload.Size)
	if err != nil {
		return err
	}

	product.MainImage = &models.ImageRef{URL: url, AssetID: assetID}
	return nil
}

// uploadGallery appends references in input order. Uploads run one at a
// time; the first failure aborts the batch without retry, and earlier
// completed uploads stay on the host.
func (s *productService) uploadGallery(ctx context.Context, product *models.Product, uploads []ImageUpload) error {
	for _, upload := range uploads {
		url, assetID, err := s.media.UploadImage(ctx, galleryFolder, upload.FileName, upload.File, upload.Size)
		if err != nil {
			return err
		}

		product.Gallery = append(product.Gallery, models.ImageRef{URL: url, AssetID: assetID})
	}

	return nil
}
