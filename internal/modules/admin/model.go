package admin

import "github.com/shopspring/decimal"

// ActionResponse is the uniform result shape for admin mutations. An
// operation either wholly succeeds or wholly fails; Errors is present only
// for validation and constraint failures and maps a form field to its
// error strings.
type ActionResponse struct {
	Success bool                `json:"success"`
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors,omitempty"`
}

const (
	msgCreated           = "Product created successfully"
	msgUpdated           = "Product updated successfully"
	msgDeleted           = "Product deleted successfully"
	msgValidationFailed  = "Please fix the errors in the form"
	msgProductIDRequired = "Product ID is required"
)

// UploadedImage is an image already stored in blob storage, ready for its
// product_images row.
type UploadedImage struct {
	Name string
	URL  string
	Alt  string
}

// SubProductRow is a variant row to insert. Quantity and price are fixed at
// zero by the mutation flow; price-setting is a separate concern.
type SubProductRow struct {
	Name      string
	Available bool
	Quantity  int
	Price     decimal.Decimal
}
