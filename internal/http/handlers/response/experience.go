package response

import (
	"time"

	"expwall/internal/core/domain/experience"
)

// Experience is the public representation. The submitter fingerprint never
// leaves the server.
type Experience struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	Views     uint64    `json:"views"`
}

func (e *Experience) FromDomainType(exp experience.Experience) {
	e.ID = string(exp.ID)
	e.Content = exp.Content
	e.CreatedAt = exp.CreatedAt
	e.Views = exp.Views
}
