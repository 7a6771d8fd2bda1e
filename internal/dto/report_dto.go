package dto

// RangeQuery is the shared from/to query for report endpoints.
// Dates are YYYY-MM-DD; a missing "to" collapses the range to a single day.
type RangeQuery struct {
	From string `form:"from" validate:"required"`
	To   string `form:"to"`
}
