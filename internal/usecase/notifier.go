package usecase

// Notifier pushes pipeline events to connected clients. The websocket hub is
// the production implementation.
type Notifier interface {
	SearchCompleted(found, inserted int)
	JobsScored(scored int)
}

type NopNotifier struct{}

func (NopNotifier) SearchCompleted(found, inserted int) {}
func (NopNotifier) JobsScored(scored int)               {}
