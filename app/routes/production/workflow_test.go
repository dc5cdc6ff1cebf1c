package production

import (
	"testing"
	"time"

	"github.com/shanfullstackdev/factory-management-system/app/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func submitRequest() SubmitRequest {
	return SubmitRequest{
		Employee: "0f1e2d3c-0000-0000-0000-000000000001",
		PS:       decimal.NewFromInt(100),
		Rate:     decimal.NewFromInt(5),
	}
}

func TestNewProductionEmployeeStartsPending(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	p, err := NewProduction(submitRequest(), models.SubmittedByEmployee, now)
	require.NoError(t, err)

	assert.Equal(t, models.ProductionPending, p.Status)
	assert.Equal(t, models.SubmittedByEmployee, p.SubmittedBy)
	assert.True(t, p.Total.Equal(decimal.NewFromInt(500)))
	assert.Equal(t, now, p.Date, "date defaults to submission time")
}

func TestNewProductionAdminStartsApproved(t *testing.T) {
	p, err := NewProduction(submitRequest(), models.SubmittedByAdmin, time.Now())
	require.NoError(t, err)

	assert.Equal(t, models.ProductionApproved, p.Status)
	assert.Equal(t, models.SubmittedByAdmin, p.SubmittedBy)
	assert.True(t, p.Total.Equal(decimal.NewFromInt(500)))
}

func TestNewProductionValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*SubmitRequest)
	}{
		{"missing employee", func(r *SubmitRequest) { r.Employee = "" }},
		{"missing ps", func(r *SubmitRequest) { r.PS = decimal.Zero }},
		{"missing rate", func(r *SubmitRequest) { r.Rate = decimal.Zero }},
		{"negative ps", func(r *SubmitRequest) { r.PS = decimal.NewFromInt(-1) }},
		{"bad employee reference", func(r *SubmitRequest) { r.Employee = "not-a-uuid" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := submitRequest()
			tt.mutate(&req)

			_, err := NewProduction(req, models.SubmittedByEmployee, time.Now())
			assert.Error(t, err, "no record may be created")
		})
	}
}

func TestNewProductionExplicitDate(t *testing.T) {
	req := submitRequest()
	req.Date = "2026-02-14"

	p, err := NewProduction(req, models.SubmittedByAdmin, time.Now())
	require.NoError(t, err)
	assert.Equal(t, 2026, p.Date.Year())
	assert.Equal(t, time.February, p.Date.Month())
	assert.Equal(t, 14, p.Date.Day())
}

func TestNewProductionBadDate(t *testing.T) {
	req := submitRequest()
	req.Date = "not-a-date"

	_, err := NewProduction(req, models.SubmittedByAdmin, time.Now())
	assert.Error(t, err)
}

func TestNewProductionSnapshotsRate(t *testing.T) {
	// the rate comes from the request, never from the employee record, so
	// later employee rate changes cannot touch existing entries
	req := submitRequest()
	req.Rate = decimal.RequireFromString("7.25")

	p, err := NewProduction(req, models.SubmittedByEmployee, time.Now())
	require.NoError(t, err)
	assert.True(t, p.Rate.Equal(decimal.RequireFromString("7.25")))
	assert.True(t, p.Total.Equal(decimal.RequireFromString("725")))
}

func TestApplyUpdateRecomputesTotal(t *testing.T) {
	p, err := NewProduction(submitRequest(), models.SubmittedByEmployee, time.Now())
	require.NoError(t, err)

	ps := decimal.RequireFromString("40")
	rate := decimal.RequireFromString("2.5")
	err = ApplyUpdate(p, UpdateRequest{PS: &ps, Rate: &rate})
	require.NoError(t, err)
	assert.True(t, p.Total.Equal(decimal.RequireFromString("100")))
}

func TestApplyUpdateKeepsStatus(t *testing.T) {
	// edits are not state transitions: an approved entry stays approved no
	// matter which fields change
	p, err := NewProduction(submitRequest(), models.SubmittedByAdmin, time.Now())
	require.NoError(t, err)
	require.Equal(t, models.ProductionApproved, p.Status)

	ps := decimal.RequireFromString("1")
	name := "new design"
	err = ApplyUpdate(p, UpdateRequest{PS: &ps, DesignName: &name})
	require.NoError(t, err)
	assert.Equal(t, models.ProductionApproved, p.Status)
	assert.Equal(t, "new design", p.DesignName)

	pending, err := NewProduction(submitRequest(), models.SubmittedByEmployee, time.Now())
	require.NoError(t, err)
	require.NoError(t, ApplyUpdate(pending, UpdateRequest{PS: &ps}))
	assert.Equal(t, models.ProductionPending, pending.Status)
}

func TestApplyUpdateValidation(t *testing.T) {
	negative := decimal.RequireFromString("-3")
	badDate := "yesterday-ish"
	badEmployee := "not-a-uuid"
	goodDate := "2026-03-01"

	tests := []struct {
		name string
		req  UpdateRequest
	}{
		{"negative ps", UpdateRequest{PS: &negative}},
		{"negative rate", UpdateRequest{Rate: &negative}},
		{"bad date", UpdateRequest{Date: &badDate}},
		{"bad employee reference", UpdateRequest{Employee: &badEmployee}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewProduction(submitRequest(), models.SubmittedByAdmin, time.Now())
			require.NoError(t, err)
			assert.Error(t, ApplyUpdate(p, tt.req))
		})
	}

	p, err := NewProduction(submitRequest(), models.SubmittedByAdmin, time.Now())
	require.NoError(t, err)
	require.NoError(t, ApplyUpdate(p, UpdateRequest{Date: &goodDate}))
	assert.Equal(t, time.March, p.Date.Month())
}
