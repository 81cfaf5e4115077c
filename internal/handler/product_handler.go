package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/atulmcoder/sbsauto2Server/internal/errs"
	"github.com/atulmcoder/sbsauto2Server/internal/models"
	"github.com/atulmcoder/sbsauto2Server/internal/service"
)

// Multipart field names and limits for listing mutations.
const (
	mainImageField  = "mainImage"
	galleryField    = "gallery"
	dataField       = "data"
	maxGalleryFiles = 20
)

type ProductResponse struct {
	OK      bool            `json:"ok"`
	Product *models.Product `json:"product"`
}

type ProductsResponse struct {
	OK       bool             `json:"ok"`
	Products []models.Product `json:"products"`
}

type OKResponse struct {
	OK bool `json:"ok"`
}

func (h *Handlers) GetProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.ProductService.GetAll(r.Context())
	if err != nil {
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	WriteJSON(w, ProductsResponse{OK: true, Products: products}, http.StatusOK)
}

func (h *Handlers) GetProduct(w http.ResponseWriter, r *http.Request) {
	productID := mux.Vars(r)["id"]

	product, err := h.ProductService.GetByID(r.Context(), productID)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			WriteError(w, "Product not found", http.StatusNotFound)
		} else {
			WriteError(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	WriteJSON(w, ProductResponse{OK: true, Product: product}, http.StatusOK)
}

func (h *Handlers) CreateProduct(w http.ResponseWriter, r *http.Request) {
	payload, mainImage, gallery, closeFiles, err := h.parseProductForm(r)
	if err != nil {
		WriteError(w, err.Error(), StatusFromError(err))
		return
	}
	defer closeFiles()

	product, err := h.ProductService.Create(r.Context(), payload, mainImage, gallery)
	if err != nil {
		WriteError(w, err.Error(), StatusFromError(err))
		return
	}

	WriteJSON(w, ProductResponse{OK: true, Product: product}, http.StatusCreated)
}

func (h *Handlers) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	productID := mux.Vars(r)["id"]

	payload, mainImage, gallery, closeFiles, err := h.parseProductForm(r)
	if err != nil {
		WriteError(w, err.Error(), StatusFromError(err))
		return
	}
	defer closeFiles()

	product, err := h.ProductService.Update(r.Context(), productID, payload, mainImage, gallery)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			WriteError(w, "Product not found", http.StatusNotFound)
		} else {
			WriteError(w, err.Error(), StatusFromError(err))
		}
		return
	}

	WriteJSON(w, ProductResponse{OK: true, Product: product}, http.StatusOK)
}

func (h *Handlers) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	productID := mux.Vars(r)["id"]

	if err := h.ProductService.Delete(r.Context(), productID); err != nil {
		WriteError(w, err.Error(), http.StatusInternalServerError)
		return
	}

	WriteJSON(w, OKResponse{OK: true}, http.StatusOK)
}

// parseProductForm decodes the multipart body once at the boundary: the
// "data" field as a typed payload, plus the buffered image files. Every file
// is checked against the per-file size limit before any upload happens.
func (h *Handlers) parseProductForm(r *http.Request) (models.ProductPayload, *service.ImageUpload, []service.ImageUpload, func(), error) {
	var payload models.ProductPayload
	noop := func() {}

	if err := r.ParseMultipartForm(h.Cfg.MaxUploadSize); err != nil {
		return payload, nil, nil, noop, fmt.Errorf("error parsing multipart body: %w", errs.ErrValidation)
	}

	if data := r.FormValue(dataField); data != "" {
		if err := json.Unmarshal([]byte(data), &payload); err != nil {
			return payload, nil, nil, noop, fmt.Errorf("data field is not valid JSON: %w", errs.ErrValidation)
		}
	}

	mainHeaders := r.MultipartForm.File[mainImageField]
	if len(mainHeaders) > 1 {
		return payload, nil, nil, noop, fmt.Errorf("at most one %s file is allowed: %w", mainImageField, errs.ErrValidation)
	}

	galleryHeaders := r.MultipartForm.File[galleryField]
	if len(galleryHeaders) > maxGalleryFiles {
		return payload, nil, nil, noop, fmt.Errorf("at most %d %s files are allowed: %w", maxGalleryFiles, galleryField, errs.ErrValidation)
	}

	allHeaders := make([]*multipart.FileHeader, 0, len(mainHeaders)+len(galleryHeaders))
	allHeaders = append(allHeaders, mainHeaders...)
	allHeaders = append(allHeaders, galleryHeaders...)
	for _, fh := range allHeaders {
		if fh.Size > h.Cfg.MaxUploadSize {
			return payload, nil, nil, noop, fmt.Errorf("file %s is too large (max %d MB): %w",
				fh.Filename, h.Cfg.MaxUploadSize/(1024*1024), errs.ErrValidation)
		}
	}

	var closers []func() error
	closeFiles := func() {
		for _, c := range closers {
			c()
		}
	}

	var mainImage *service.ImageUpload
	if len(mainHeaders) == 1 {
		fh := mainHeaders[0]
		file, err := fh.Open()
		if err != nil {
			return payload, nil, nil, closeFiles, fmt.Errorf("error reading %s: %w", fh.Filename, errs.ErrValidation)
		}
		closers = append(closers, file.Close)
		mainImage = &service.ImageUpload{FileName: fh.Filename, Size: fh.Size, File: file}
	}

	var gallery []service.ImageUpload
	for _, fh := range galleryHeaders {
		file, err := fh.Open()
		if err != nil {
			return payload, nil, nil, closeFiles, fmt.Errorf("error reading %s: %w", fh.Filename, errs.ErrValidation)
		}
		closers = append(closers, file.Close)
		gallery = append(gallery, service.ImageUpload{FileName: fh.Filename, Size: fh.Size, File: file})
	}

	return payload, mainImage, gallery, closeFiles, nil
}
