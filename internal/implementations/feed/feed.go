package feed

import (
	"context"
	"encoding/json"
	"time"

	e "expwall/internal/core/domain/errors"
	"expwall/internal/core/domain/experience"

	"github.com/r3labs/sse/v2"
)

// StreamExperiences is the single public stream newly created experiences
// are broadcast to.
const StreamExperiences = "experiences"

type event struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

// SSEPublisher pushes created experiences to connected browsers. Only public
// fields go over the wire, never the submitter fingerprint.
type SSEPublisher struct {
	sseServer *sse.Server
}

func NewSSEPublisher(sseServer *sse.Server) *SSEPublisher {
	if sseServer == nil {
		panic(e.NewNilArgumentError("sseServer"))
	}
	return &SSEPublisher{sseServer: sseServer}
}

func (p *SSEPublisher) PublishCreated(ctx context.Context, exp experience.Experience) error {
	data, err := json.Marshal(event{
		ID:        string(exp.ID),
		Content:   exp.Content,
		CreatedAt: exp.CreatedAt,
	})
	if err != nil {
		return err
	}
	p.sseServer.Publish(StreamExperiences, &sse.Event{Data: data})
	return nil
}
