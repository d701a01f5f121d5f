package dto

// AdviceParams defines query parameters for the advice endpoint.
type AdviceParams struct {
	From string `form:"fromDate"` // YYYY-MM-DD; defaults to the first of the month
	To   string `form:"toDate"`   // YYYY-MM-DD; defaults to today
}

// AdviceResponse wraps the generated advisory text.
type AdviceResponse struct {
	FromDate string `json:"fromDate"`
	ToDate   string `json:"toDate"`
	Advice   string `json:"advice"`
}
