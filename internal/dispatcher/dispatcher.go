package dispatcher

import "context"

// Client drives the terminal lifecycle transitions: it scans for due queued
// groups and hands them to the publisher, marking PUBLISHED or ERROR. Retry
// policy lives here, never in the posts service.
type Client interface {
	ScheduleDispatch(ctx context.Context) error
}
