package service

import (
	"context"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/atulmcoder/sbsauto2Server/internal/config"
	"github.com/atulmcoder/sbsauto2Server/internal/errs"
	"github.com/atulmcoder/sbsauto2Server/internal/models"
)

type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) Create(ctx context.Context, product *models.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) GetByID(ctx context.Context, productID string) (*models.Product, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) GetAll(ctx context.Context) ([]models.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Product), args.Error(1)
}

func (m *MockProductRepository) Update(ctx context.Context, product *models.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, productID string) error {
	args := m.Called(ctx, productID)
	return args.Error(0)
}

// fakeMediaStorage records uploads in call order and can fail from a given
// call index onward.
type fakeMediaStorage struct {
	calls    []string
	failFrom int
}

func (f *fakeMediaStorage) UploadImage(ctx context.Context, folder, fileName string, file io.Reader, size int64) (string, string, error) {
	if f.failFrom > 0 && len(f.calls)+1 >= f.failFrom {
		return "", "", fmt.Errorf("host rejected %s: %w", fileName, errs.ErrUpload)
	}
	f.calls = append(f.calls, folder+"/"+fileName)
	url := "https://media.example.com/sbsauto/" + folder + "/" + fileName
	return url, folder + "/" + fileName, nil
}

func strPtr(s string) *string { return &s }

func upload(name string) ImageUpload {
	return ImageUpload{FileName: name, Size: 4, File: strings.NewReader("data")}
}

func TestProductService_Create_UploadsInOrder(t *testing.T) {
	repo := new(MockProductRepository)
	media := &fakeMediaStorage{}
	svc := NewProductService(repo, media, &config.Config{})

	repo.On("Create", mock.Anything, mock.AnythingOfType("*models.Product")).Return(nil)

	main := upload("main.jpg")
	gallery := []ImageUpload{upload("one.jpg"), upload("two.jpg")}

	product, err := svc.Create(context.Background(), models.ProductPayload{Make: strPtr("Honda")}, &main, gallery)
	require.NoError(t, err)

	assert.Equal(t, "Honda", product.Make)
	require.NotNil(t, product.MainImage)
	assert.Equal(t, "https://media.example.com/sbsauto/products/main/main.jpg", product.MainImage.URL)
	assert.Equal(t, "products/main/main.jpg", product.MainImage.AssetID)

	require.Len(t, product.Gallery, 2)
	assert.Equal(t, "https://media.example.com/sbsauto/products/gallery/one.jpg", product.Gallery[0].URL)
	assert.Equal(t, "https://media.example.com/sbsauto/products/gallery/two.jpg", product.Gallery[1].URL)

	assert.Equal(t, []string{
		"products/main/main.jpg",
		"products/gallery/one.jpg",
		"products/gallery/two.jpg",
	}, media.calls)

	repo.AssertExpectations(t)
}

func TestProductService_Create_NoFiles(t *testing.T) {
	repo := new(MockProductRepository)
	media := &fakeMediaStorage{}
	svc := NewProductService(repo, media, &config.Config{})

	repo.On("Create", mock.Anything, mock.AnythingOfType("*models.Product")).Return(nil)

	product, err := svc.Create(context.Background(), models.ProductPayload{Model: strPtr("Civic")}, nil, nil)
	require.NoError(t, err)

	assert.Nil(t, product.MainImage)
	assert.Empty(t, product.Gallery)
	assert.Empty(t, media.calls)
}

func TestProductService_Create_AbortsBatchOnUploadFailure(t *testing.T) {
	repo := new(MockProductRepository)
	media := &fakeMediaStorage{failFrom: 2}
	svc := NewProductService(repo, media, &config.Config{})

	gallery := []ImageUpload{upload("one.jpg"), upload("two.jpg"), upload("three.jpg")}

	_, err := svc.Create(context.Background(), models.ProductPayload{}, nil, gallery)
	assert.ErrorIs(t, err, errs.ErrUpload)

	// The first upload went through, nothing after the failure did, and the
	// product was never persisted.
	assert.Equal(t, []string{"products/gallery/one.jpg"}, media.calls)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestProductService_Update_AppendsGalleryAndReplacesMain(t *testing.T) {
	repo := new(MockProductRepository)
	media := &fakeMediaStorage{}
	svc := NewProductService(repo, media, &config.Config{})

	existing := &models.Product{
		ProductID: "p-1",
		Make:      "Honda",
		MainImage: &models.ImageRef{URL: "old-url", AssetID: "old-asset"},
		Gallery: models.ImageList{
			{URL: "g1", AssetID: "a1"},
			{URL: "g2", AssetID: "a2"},
		},
	}

	repo.On("GetByID", mock.Anything, "p-1").Return(existing, nil)
	repo.On("Update", mock.Anything, mock.AnythingOfType("*models.Product")).Return(nil)

	main := upload("new-main.jpg")
	product, err := svc.Update(context.Background(), "p-1",
		models.ProductPayload{Price: floatPtr(19999)}, &main, []ImageUpload{upload("three.jpg")})
	require.NoError(t, err)

	assert.Equal(t, 19999.0, product.Price)
	assert.Equal(t, "Honda", product.Make)

	// Main image replaced, gallery appended with prior entries untouched.
	assert.Equal(t, "products/main/new-main.jpg", product.MainImage.AssetID)
	require.Len(t, product.Gallery, 3)
	assert.Equal(t, "g1", product.Gallery[0].URL)
	assert.Equal(t, "g2", product.Gallery[1].URL)
	assert.Equal(t, "products/gallery/three.jpg", product.Gallery[2].AssetID)

	repo.AssertExpectations(t)
}

func TestProductService_Update_NotFound(t *testing.T) {
	repo := new(MockProductRepository)
	media := &fakeMediaStorage{}
	svc := NewProductService(repo, media, &config.Config{})

	repo.On("GetByID", mock.Anything, "missing").Return(nil, fmt.Errorf("product missing: %w", errs.ErrNotFound))

	_, err := svc.Update(context.Background(), "missing", models.ProductPayload{}, nil, nil)
	assert.ErrorIs(t, err, errs.ErrNotFound)
	assert.Empty(t, media.calls)
}

func TestProductService_Delete(t *testing.T) {
	repo := new(MockProductRepository)
	svc := NewProductService(repo, &fakeMediaStorage{}, &config.Config{})

	repo.On("Delete", mock.Anything, "p-1").Return(nil)

	err := svc.Delete(context.Background(), "p-1")
	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func floatPtr(f float64) *float64 { return &f }
