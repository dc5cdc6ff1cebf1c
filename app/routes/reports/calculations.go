package reports

import (
	"errors"
	"sort"
	"time"

	"github.com/shanfullstackdev/factory-management-system/app/models"
	"github.com/shopspring/decimal"
)

var (
	errInvalidDate   = errors.New("Invalid date format, expected YYYY-MM-DD")
	errStartAfterEnd = errors.New("Start date cannot be after end date")
	errDateInFuture  = errors.New("Dates cannot be in the future")
)

// ValidateDateRange parses the optional start/end query values and enforces
// the report rules before any query runs: start must not be after end, and
// neither date may lie in the future. Empty strings mean no bound and come
// back as zero times.
func ValidateDateRange(startStr, endStr string, now time.Time) (start, end time.Time, err error) {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	if startStr != "" {
		start, err = time.ParseInLocation("2006-01-02", startStr, now.Location())
		if err != nil {
			return time.Time{}, time.Time{}, errInvalidDate
		}
		if start.After(today) {
			return time.Time{}, time.Time{}, errDateInFuture
		}
	}
	if endStr != "" {
		end, err = time.ParseInLocation("2006-01-02", endStr, now.Location())
		if err != nil {
			return time.Time{}, time.Time{}, errInvalidDate
		}
		if end.After(today) {
			return time.Time{}, time.Time{}, errDateInFuture
		}
	}
	if !start.IsZero() && !end.IsZero() && start.After(end) {
		return time.Time{}, time.Time{}, errStartAfterEnd
	}
	return start, end, nil
}

// Summarize rolls the filtered entries up into report totals plus the
// month-bucketed growth series for the chart, oldest month first.
func Summarize(entries []*models.Production) *models.ReportSummary {
	summary := &models.ReportSummary{
		TotalPS:      decimal.Zero,
		TotalAmount:  decimal.Zero,
		TotalEntries: len(entries),
		Entries:      entries,
	}
	if entries == nil {
		summary.Entries = []*models.Production{}
	}

	buckets := make(map[string]decimal.Decimal)
	for _, entry := range entries {
		summary.TotalPS = summary.TotalPS.Add(entry.PS)
		summary.TotalAmount = summary.TotalAmount.Add(entry.Total)

		month := entry.Date.Format("2006-01")
		buckets[month] = buckets[month].Add(entry.PS)
	}

	months := make([]string, 0, len(buckets))
	for month := range buckets {
		months = append(months, month)
	}
	sort.Strings(months)

	summary.Growth = make([]models.MonthlyGrowth, 0, len(months))
	for _, month := range months {
		summary.Growth = append(summary.Growth, models.MonthlyGrowth{
			Month:   month,
			TotalPS: buckets[month],
		})
	}

	return summary
}
