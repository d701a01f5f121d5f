package services

import (
	"context"
	"time"
)

// AdviceSvcFacade generates advisory text from a user's derived financial
// state via an external model. The model is a black box: it receives a
// compact summary and returns prose, nothing more is assumed about it.
type AdviceSvcFacade interface {
	// GenerateAdvice produces budgeting/saving advice for the period.
	GenerateAdvice(ctx context.Context, userID string, from, to time.Time) (string, error)
}
