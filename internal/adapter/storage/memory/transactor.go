package memory

import (
	"context"
	"slices"
	"sync"
)

type journalKey struct{}

// journal collects undo steps of the writes made inside one transaction.
type journal struct {
	mu   sync.Mutex
	undo []func()
}

// recordUndo registers undo with the transaction carried by ctx, if any.
func recordUndo(ctx context.Context, undo func()) {
	if j, ok := ctx.Value(journalKey{}).(*journal); ok {
		j.mu.Lock()
		j.undo = append(j.undo, undo)
		j.mu.Unlock()
	}
}

// Transactor implements ports.Transactor for the in-memory repositories.
// Transactions are serialized; a failed one has its repository writes undone
// in reverse order. Queue pushes are not undone.
type Transactor struct {
	mu sync.Mutex
}

func NewTransactor() *Transactor {
	return &Transactor{}
}

func (t *Transactor) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(journalKey{}).(*journal); ok {
		return fn(ctx)
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	j := &journal{}
	if err := fn(context.WithValue(ctx, journalKey{}, j)); err != nil {
		for _, undo := range slices.Backward(j.undo) {
			undo()
		}
		return err
	}
	return nil
}
