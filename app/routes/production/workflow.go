package production

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shanfullstackdev/factory-management-system/app/models"
	"github.com/shopspring/decimal"
)

// SubmitRequest is the body shared by employee submission and admin add.
// Non-numeric ps/rate fail JSON decoding before this struct is ever filled.
type SubmitRequest struct {
	Employee   string          `json:"employee"`
	PS         decimal.Decimal `json:"ps"`
	Rate       decimal.Decimal `json:"rate"`
	DesignName string          `json:"designName"`
	Date       string          `json:"date"`
}

var errFieldsRequired = errors.New("All fields required")

// NewProduction applies the initial-state policy: employee submissions start
// pending, admin entries start approved. Rate is snapshotted from the
// request, not re-read from the employee record, and the total is stamped
// before the entry ever reaches storage.
func NewProduction(req SubmitRequest, submittedBy models.SubmittedBy, now time.Time) (*models.Production, error) {
	if req.Employee == "" || !req.PS.IsPositive() || !req.Rate.IsPositive() {
		return nil, errFieldsRequired
	}
	if _, err := uuid.Parse(req.Employee); err != nil {
		return nil, errors.New("Invalid employee reference")
	}

	date := now
	if req.Date != "" {
		parsed, err := parseDate(req.Date)
		if err != nil {
			return nil, errors.New("Invalid date")
		}
		date = parsed
	}

	status := models.ProductionPending
	if submittedBy == models.SubmittedByAdmin {
		status = models.ProductionApproved
	}

	p := &models.Production{
		EmployeeID:  req.Employee,
		PS:          req.PS,
		Rate:        req.Rate,
		DesignName:  req.DesignName,
		Date:        date,
		Status:      status,
		SubmittedBy: submittedBy,
	}
	p.CalcTotal()
	return p, nil
}

// UpdateRequest carries partial edits; nil fields are left alone.
type UpdateRequest struct {
	Employee   *string          `json:"employee"`
	PS         *decimal.Decimal `json:"ps"`
	Rate       *decimal.Decimal `json:"rate"`
	DesignName *string          `json:"designName"`
	Date       *string          `json:"date"`
}

// ApplyUpdate folds the present fields into the entry and restamps the
// total. The status is deliberately left alone: edits are not state
// transitions, an approved entry stays approved whatever changes.
func ApplyUpdate(p *models.Production, req UpdateRequest) error {
	if req.Employee != nil && *req.Employee != "" {
		if _, err := uuid.Parse(*req.Employee); err != nil {
			return errors.New("Invalid employee reference")
		}
		p.EmployeeID = *req.Employee
	}
	if req.PS != nil {
		p.PS = *req.PS
	}
	if req.Rate != nil {
		p.Rate = *req.Rate
	}
	if req.DesignName != nil {
		p.DesignName = *req.DesignName
	}
	if req.Date != nil && *req.Date != "" {
		parsed, err := parseDate(*req.Date)
		if err != nil {
			return errors.New("Invalid date")
		}
		p.Date = parsed
	}

	if !p.PS.IsPositive() || !p.Rate.IsPositive() {
		return errors.New("ps and rate must be positive")
	}

	p.CalcTotal()
	return nil
}

// parseDate accepts the date-input format the pages send and full
// timestamps.
func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}
