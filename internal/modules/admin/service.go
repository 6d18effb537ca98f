package admin

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/poplandstore/popland-backend/internal/platform/blob"
)

// Service drives the admin product write flows. Every operation is a
// stateless unit of work issuing its store calls sequentially; a failure is
// terminal for that invocation and already-completed steps are not rolled
// back.
type Service interface {
	// CreateProduct validates the form, uploads its images, and inserts the
	// product row and its child rows.
	CreateProduct(ctx context.Context, form *ProductForm) *ActionResponse

	// UpdateProduct updates the product name and fully replaces the tag and
	// sub-product sets; tags and sub-products are never merged.
	UpdateProduct(ctx context.Context, form *ProductForm) *ActionResponse

	// DeleteProduct removes the product's blobs and then its rows, children
	// first to satisfy the foreign keys.
	DeleteProduct(ctx context.Context, productID int64) *ActionResponse
}

type service struct {
	repo     Repository
	blob     blob.Store
	validate *validator.Validate
	now      func() time.Time
}

// NewService creates a new admin service.
func NewService(repo Repository, store blob.Store) Service {
	return &service{
		repo:     repo,
		blob:     store,
		validate: validator.New(),
		now:      time.Now,
	}
}

func (s *service) CreateProduct(ctx context.Context, form *ProductForm) *ActionResponse {
	if errs := s.validateForm(form); len(errs) > 0 {
		return &ActionResponse{Success: false, Message: msgValidationFailed, Errors: errs}
	}

	// Upload before insert: a failed upload aborts the whole operation while
	// no product row exists yet.
	uploaded, err := s.uploadImages(ctx, form.Name, form.Images)
	if err != nil {
		return failure(err)
	}

	productID, err := s.repo.InsertProduct(ctx, form.Name, decimal.Zero)
	if err != nil {
		return failure(err)
	}
	if err := s.repo.InsertImages(ctx, productID, uploaded); err != nil {
		return failure(err)
	}
	if err := s.repo.InsertTags(ctx, productID, form.TagIDs); err != nil {
		return failure(err)
	}
	if err := s.repo.InsertSubProducts(ctx, productID, subProductRows(form.SubProducts)); err != nil {
		return failure(err)
	}

	zap.L().Info("product created",
		zap.Int64("product_id", productID),
		zap.Int("images", len(uploaded)),
		zap.Int("tags", len(form.TagIDs)))
	return &ActionResponse{Success: true, Message: msgCreated}
}

func (s *service) UpdateProduct(ctx context.Context, form *ProductForm) *ActionResponse {
	if form.ProductID == 0 {
		return &ActionResponse{Success: false, Message: msgProductIDRequired}
	}
	if errs := s.validateForm(form); len(errs) > 0 {
		return &ActionResponse{Success: false, Message: msgValidationFailed, Errors: errs}
	}

	if err := s.repo.UpdateProductName(ctx, form.ProductID, form.Name); err != nil {
		return failure(err)
	}
	// Rows only; the blobs behind removed images stay until product deletion.
	if err := s.repo.DeleteImages(ctx, form.DeletedImageIDs); err != nil {
		return failure(err)
	}

	// Full replace of the tag set.
	if err := s.repo.DeleteProductTags(ctx, form.ProductID); err != nil {
		return failure(err)
	}
	if err := s.repo.InsertTags(ctx, form.ProductID, form.TagIDs); err != nil {
		return failure(err)
	}

	uploaded, err := s.uploadImages(ctx, form.Name, form.Images)
	if err != nil {
		return failure(err)
	}
	if err := s.repo.InsertImages(ctx, form.ProductID, uploaded); err != nil {
		return failure(err)
	}

	// Full replace of the sub-product set.
	if err := s.repo.DeleteProductSubProducts(ctx, form.ProductID); err != nil {
		return failure(err)
	}
	if err := s.repo.InsertSubProducts(ctx, form.ProductID, subProductRows(form.SubProducts)); err != nil {
		return failure(err)
	}

	zap.L().Info("product updated", zap.Int64("product_id", form.ProductID))
	return &ActionResponse{Success: true, Message: msgUpdated}
}

func (s *service) DeleteProduct(ctx context.Context, productID int64) *ActionResponse {
	if productID == 0 {
		return &ActionResponse{Success: false, Message: msgProductIDRequired}
	}

	urls, err := s.repo.ProductImageURLs(ctx, productID)
	if err != nil {
		return failure(err)
	}
	for _, url := range urls {
		if err := s.blob.Delete(ctx, url); err != nil {
			return failure(fmt.Errorf("delete blob %s: %w", url, err))
		}
	}

	// Children first; the schema has no ON DELETE CASCADE.
	if err := s.repo.DeleteProductTags(ctx, productID); err != nil {
		return failure(err)
	}
	if err := s.repo.DeleteProductSubProducts(ctx, productID); err != nil {
		return failure(err)
	}
	if err := s.repo.DeleteProductImages(ctx, productID); err != nil {
		return failure(err)
	}
	if err := s.repo.DeleteProduct(ctx, productID); err != nil {
		return failure(err)
	}

	zap.L().Info("product deleted", zap.Int64("product_id", productID))
	return &ActionResponse{Success: true, Message: msgDeleted}
}

// uploadImages stores every non-empty image file and returns the rows to
// insert. Files are named after the product with a 1-based index and the
// upload timestamp.
func (s *service) uploadImages(ctx context.Context, productName string, files []ImageFile) ([]*UploadedImage, error) {
	var uploaded []*UploadedImage
	for i, f := range files {
		if len(f.Data) == 0 {
			continue
		}
		name := imageObjectName(productName, i+1, f.Filename, s.now())
		url, err := s.blob.Put(ctx, name, f.Data, f.ContentType)
		if err != nil {
			return nil, fmt.Errorf("upload image %d: %w", i+1, err)
		}
		uploaded = append(uploaded, &UploadedImage{
			Name: name,
			URL:  url,
			Alt:  fmt.Sprintf("%s - Image %d", productName, i+1),
		})
	}
	return uploaded, nil
}

func (s *service) validateForm(form *ProductForm) map[string][]string {
	errs := map[string][]string{}
	for field, msgs := range form.FieldErrors {
		errs[field] = append(errs[field], msgs...)
	}

	if err := s.validate.Struct(form); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				if strings.Contains(fe.Namespace(), "SubProducts") {
					errs["subProducts"] = append(errs["subProducts"], "sub-product name is required")
					continue
				}
				errs["name"] = append(errs["name"], "name is required")
			}
		} else {
			errs["form"] = append(errs["form"], err.Error())
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func subProductRows(inputs []SubProductInput) []*SubProductRow {
	rows := make([]*SubProductRow, 0, len(inputs))
	for _, in := range inputs {
		available := true
		if in.Available != nil {
			available = *in.Available
		}
		rows = append(rows, &SubProductRow{
			Name:      in.Name,
			Available: available,
			Quantity:  0,
			Price:     decimal.Zero,
		})
	}
	return rows
}

// failure converts an error into the uniform response shape. Postgres
// constraint violations surface the driver's message plus per-field detail;
// anything else becomes a flat message.
func failure(err error) *ActionResponse {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return &ActionResponse{
			Success: false,
			Message: pqErr.Message,
			Errors:  constraintFieldErrors(pqErr),
		}
	}
	return &ActionResponse{Success: false, Message: err.Error()}
}

// constraintFieldErrors maps an integrity violation (code class 23) onto the
// column or constraint it names. The driver's typed fields stand in for the
// original's JSON-encoded detail payload.
func constraintFieldErrors(pqErr *pq.Error) map[string][]string {
	if !strings.HasPrefix(string(pqErr.Code), "23") {
		return nil
	}
	field := pqErr.Column
	if field == "" {
		field = pqErr.Constraint
	}
	if field == "" {
		return nil
	}
	detail := pqErr.Detail
	if detail == "" {
		detail = pqErr.Message
	}
	return map[string][]string{field: {detail}}
}
