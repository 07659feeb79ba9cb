package session

import "context"

// Notifier receives the outcome of every coordinated action for
// human-visible feedback. Implementations run best-effort: they must not
// block and cannot veto or retry an action.
type Notifier interface {
	Success(ctx context.Context, action ActionKind)
	Failure(ctx context.Context, message string)
}

// NotifierFuncs adapts plain functions to the Notifier interface. Nil
// fields are skipped.
type NotifierFuncs struct {
	OnSuccess func(ctx context.Context, action ActionKind)
	OnFailure func(ctx context.Context, message string)
}

// Success implements Notifier.
func (n NotifierFuncs) Success(ctx context.Context, action ActionKind) {
	if n.OnSuccess != nil {
		n.OnSuccess(ctx, action)
	}
}

// Failure implements Notifier.
func (n NotifierFuncs) Failure(ctx context.Context, message string) {
	if n.OnFailure != nil {
		n.OnFailure(ctx, message)
	}
}

type noopNotifier struct{}

func (noopNotifier) Success(context.Context, ActionKind) {}
func (noopNotifier) Failure(context.Context, string)     {}

func normalizeNotifier(n Notifier) Notifier {
	if n == nil {
		return noopNotifier{}
	}
	return n
}
