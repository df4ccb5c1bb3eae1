package model

// LineStatus is the server-determined fulfillability status of a preview line.
type LineStatus string

const (
	// LineOK means the upstream stock service can fulfill the line.
	LineOK LineStatus = "ok"
	// LineRejected means the upstream stock service refused the line.
	LineRejected LineStatus = "rejected"
)

// TransferCartItem is one product the cashier selected for a
// wholesale-to-retail transfer. The wholesale package field is the legacy
// free-text descriptor and is parsed at the boundary, never interpreted
// downstream as a raw string.
//
// @Description A single cart line in a transfer request
type TransferCartItem struct {
	// ProductID is unique within one transfer request.
	ProductID int64 `json:"product_id" binding:"required" example:"1042"`
	// Quantity is the number of wholesale cartons requested.
	Quantity int `json:"quantity" binding:"required,gt=0" example:"5"`
	// WholesalePackage is the free-text package descriptor, e.g. "كرتونة 12 قطعة".
	WholesalePackage string `json:"wholesale_package" example:"كرتونة 12 قطعة"`
	// FinalPrice is the price per destination unit, set by the upstream pricing step.
	FinalPrice float64 `json:"final_price" example:"10.5"`
	// Manufacturer is an optional display string.
	Manufacturer string `json:"manufacturer,omitempty" example:"الشركة المصرية"`
	// ProductName is an optional display string.
	ProductName string `json:"product_name,omitempty"`
} // @name TransferCartItem

// PreviewResult is one per-product row returned by the upstream preview
// call. The server is the sole authority on fulfillability; the gateway
// never overrides Status or Reason.
type PreviewResult struct {
	ProductID int64      `json:"product_id"`
	Status    LineStatus `json:"status"`
	// Reason is present only for rejected rows.
	Reason string `json:"reason,omitempty"`
}

// TransferLineView is the merged, display-ready line item: the server's
// authoritative status joined with local cart detail and the computed
// destination-unit quantity. It is derived state and never persisted.
//
// @Description Merged preview line for user review
type TransferLineView struct {
	ProductID int64      `json:"product_id"`
	Status    LineStatus `json:"status"`
	Reason    string     `json:"reason,omitempty"`

	// FromQuantity echoes the requested carton quantity.
	FromQuantity int `json:"from_quantity"`
	// ToQuantity is the computed destination-unit quantity, rounded.
	ToQuantity int `json:"to_quantity"`

	FinalPrice   float64 `json:"final_price"`
	Manufacturer string  `json:"manufacturer,omitempty"`
	ProductName  string  `json:"product_name,omitempty"`

	// From and To are human-readable conversion summaries.
	From string `json:"from"`
	To   string `json:"to"`

	// Matched is false when no cart item carried this product_id; the
	// enrichment fields above are then zero-valued.
	Matched bool `json:"matched"`
} // @name TransferLineView

// Transferable reports whether this line may contribute to the execute
// payload and to totals. Rejected lines are never transferable, even
// though a ToQuantity was computed for display. Unmatched lines are not
// transferable either: without a cart counterpart there is no quantity
// or price to move.
func (l TransferLineView) Transferable() bool {
	return l.Status == LineOK && l.Matched
}

// TransferPreview is the full result of the preview step.
//
// @Description Transfer preview with per-line detail and totals
type TransferPreview struct {
	Lines []TransferLineView `json:"lines"`
	// TotalAmount sums final_price × to_quantity over transferable lines only.
	TotalAmount float64 `json:"total_amount"`
	// TransferableCount is the number of matched, non-rejected lines.
	TransferableCount int `json:"transferable_count"`
	// RejectedCount is the number of server-rejected lines.
	RejectedCount int `json:"rejected_count"`
} // @name TransferPreview

// ExecuteResult is the authoritative outcome of an executed transfer.
type ExecuteResult struct {
	// TransferID is the server-assigned identifier of the persisted transfer.
	TransferID int64 `json:"transfer_id"`
}
