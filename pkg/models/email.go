package models

// Email categories used by the inbox.
const (
	CategoryProcurementRequest = "Procurement Request"
	CategoryGeneral            = "General"
)

// Email is the raw source data a workflow run is built from.
type Email struct {
	ID       int    `json:"id"`
	Sender   string `json:"sender"`
	Subject  string `json:"subject"`
	Body     string `json:"body"     validate:"required"`
	Category string `json:"category"`
	Priority string `json:"priority"`
}
