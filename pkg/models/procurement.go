package models

// PurchaseRequest is the structured purchase request extracted from an email.
type PurchaseRequest struct {
	Item     string  `json:"item"     validate:"required"`
	Quantity int     `json:"quantity" validate:"required,min=1"`
	Budget   float64 `json:"budget"   validate:"required,gt=0"`
}

// Supplier is a sourced supplier candidate. Compliant marks whether the
// supplier is eligible under company policy.
type Supplier struct {
	Name         string  `json:"name"           validate:"required"`
	PricePerUnit float64 `json:"price_per_unit" validate:"required,gt=0"`
	Compliant    bool    `json:"compliant"`
}

// Total returns the total cost of buying the requested quantity from this supplier.
func (s Supplier) Total(quantity int) float64 {
	return s.PricePerUnit * float64(quantity)
}

// ComplianceResult is the verdict of the compliance check.
type ComplianceResult struct {
	Compliant bool   `json:"compliant"`
	Reason    string `json:"reason,omitempty"`
}

// ApprovalEmail is the draft mail requesting manager approval for a
// non-compliant purchase.
type ApprovalEmail struct {
	Subject      string `json:"subject"`
	Body         string `json:"body"`
	ManagerEmail string `json:"manager_email"`
}

// OrderStatusPlaced is the status of a successfully placed order.
const OrderStatusPlaced = "ORDER_PLACED"

// Order is the confirmation produced when an order is placed.
type Order struct {
	OrderID    string  `json:"order_id"`
	Supplier   string  `json:"supplier"`
	Item       string  `json:"item"`
	Quantity   int     `json:"quantity"`
	TotalPrice float64 `json:"total_price"`
	Status     string  `json:"status"`
}
