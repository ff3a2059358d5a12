package driven

import "context"

// RulePackSource supplies the raw rule pack and options documents.
type RulePackSource interface {
	// ReadPack returns the base rule pack JSON.
	ReadPack(ctx context.Context) ([]byte, error)

	// ReadOptions returns the options overlay JSON.
	// Returns nil with no error when no overlay is configured.
	ReadOptions(ctx context.Context) ([]byte, error)
}

// RulePackWatcher reports changes to the documents behind a RulePackSource.
type RulePackWatcher interface {
	// Watch calls onChange after either document changes.
	// It blocks until the context is cancelled or watching fails.
	Watch(ctx context.Context, onChange func()) error
}
