package admin

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"
)

// Field names shared with the admin product form.
const (
	fieldProductID     = "product-id"
	fieldName          = "name"
	fieldTags          = "tags"
	fieldImages        = "images"
	fieldSubProducts   = "sub-products"
	fieldDeletedImages = "deleted-images"
)

// maxFormMemory bounds the in-memory portion of multipart parsing.
const maxFormMemory = 32 << 20

// ImageFile is one uploaded image payload.
type ImageFile struct {
	Filename    string
	ContentType string
	Data        []byte
}

// SubProductInput is one variant row submitted with the form. A nil
// Available defaults to true.
type SubProductInput struct {
	Name      string `json:"name" validate:"required"`
	Available *bool  `json:"available"`
}

// ProductForm is a parsed, normalized product submission. FieldErrors
// carries parse-level problems (non-numeric tag values) that surface as
// validation errors alongside the struct-level ones.
type ProductForm struct {
	ProductID       int64
	Name            string            `validate:"required"`
	TagIDs          []int64
	SubProducts     []SubProductInput `validate:"dive"`
	Images          []ImageFile
	DeletedImageIDs []int64

	FieldErrors map[string][]string
}

// parseProductForm reads a product submission from a multipart (or
// urlencoded, when no files are sent) request body.
func parseProductForm(r *http.Request) (*ProductForm, error) {
	if err := r.ParseMultipartForm(maxFormMemory); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		return nil, err
	}

	form := &ProductForm{FieldErrors: map[string][]string{}}
	form.Name = strings.TrimSpace(r.FormValue(fieldName))
	if raw := strings.TrimSpace(r.FormValue(fieldProductID)); raw != "" {
		// An unparsable id is treated as absent; the service fails fast on it.
		form.ProductID, _ = strconv.ParseInt(raw, 10, 64)
	}

	for _, raw := range r.Form[fieldTags] {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			form.FieldErrors[fieldTags] = append(form.FieldErrors[fieldTags], "invalid tag id: "+raw)
			continue
		}
		form.TagIDs = append(form.TagIDs, id)
	}

	for _, raw := range r.Form[fieldDeletedImages] {
		if id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64); err == nil {
			form.DeletedImageIDs = append(form.DeletedImageIDs, id)
		}
	}

	// Malformed variant JSON is treated as an empty list, not rejected.
	if raw := strings.TrimSpace(r.FormValue(fieldSubProducts)); raw != "" {
		var subs []SubProductInput
		if err := json.Unmarshal([]byte(raw), &subs); err == nil {
			form.SubProducts = subs
		}
	}

	if r.MultipartForm != nil {
		for _, fh := range r.MultipartForm.File[fieldImages] {
			f, err := fh.Open()
			if err != nil {
				return nil, err
			}
			data, err := io.ReadAll(f)
			f.Close()
			if err != nil {
				return nil, err
			}
			form.Images = append(form.Images, ImageFile{
				Filename:    fh.Filename,
				ContentType: fh.Header.Get("Content-Type"),
				Data:        data,
			})
		}
	}

	return form, nil
}
