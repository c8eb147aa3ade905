package identity

import (
	"expwall/internal/core/domain/experience"

	"github.com/google/uuid"
)

type UUID struct{}

func NewUUID() *UUID {
	return &UUID{}
}

func (g *UUID) GenerateID() experience.ID {
	return experience.ID(uuid.New().String())
}
