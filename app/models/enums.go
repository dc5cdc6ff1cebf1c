package models

// ProductionStatus is the workflow state of a production entry. Rejection is
// implemented as deletion, so no rejected state is ever persisted.
type ProductionStatus string

const (
	ProductionPending  ProductionStatus = "pending"
	ProductionApproved ProductionStatus = "approved"
)

// SubmittedBy records which side entered a production record.
type SubmittedBy string

const (
	SubmittedByEmployee SubmittedBy = "employee"
	SubmittedByAdmin    SubmittedBy = "admin"
)

// PaymentStatus uses title case to match the ledger the shop already keeps.
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "Pending"
	PaymentPaid    PaymentStatus = "Paid"
)
