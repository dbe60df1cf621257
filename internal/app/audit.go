package app

import (
	"context"
	"log"

	"gopherblog/internal/model"
)

// EventPublisher hands audit events to the queue. Implementations must not
// block on consumer progress.
type EventPublisher interface {
	Publish(ctx context.Context, event model.AuditEvent) error
}

// publishAudit is best-effort: a mutation that already committed is never
// failed because the broker is down.
func publishAudit(publisher EventPublisher, resource, action string, resourceID uint) {
	if publisher == nil {
		return
	}
	event := model.AuditEvent{
		Resource:   resource,
		Action:     action,
		ResourceID: resourceID,
	}
	if err := publisher.Publish(context.Background(), event); err != nil {
		log.Printf("publish audit event %s.%s failed: %v", resource, action, err)
	}
}
