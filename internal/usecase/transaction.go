package usecase

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// Transaction runs a sequence of operations, undoing the completed ones
// through their compensations when a later one fails.
type Transaction struct {
	operations    []Operation
	compensations []Compensation
	log           *zap.Logger
}

type Operation struct {
	Name string
	Fn   func(context.Context) error
}

type Compensation struct {
	Name string
	Fn   func(context.Context) error
}

func NewTransaction(log *zap.Logger) *Transaction {
	if log == nil {
		log = zap.NewNop()
	}
	return &Transaction{
		operations:    []Operation{},
		compensations: []Compensation{},
		log:           log,
	}
}

// AddStep registers an operation and its compensation. compensate may be nil.
func (t *Transaction) AddStep(name string, fn, compensate func(context.Context) error) {
	t.operations = append(t.operations, Operation{name, fn})
	t.compensations = append(t.compensations, Compensation{name, compensate})
}

func (t *Transaction) Len() int {
	return len(t.operations)
}

// Execute runs every operation and rolls back on the first failure.
func (t *Transaction) Execute(ctx context.Context) error {
	for i, op := range t.operations {
		if err := op.Fn(ctx); err != nil {
			t.rollback(ctx, i)
			return fmt.Errorf("operation '%s' failed: %w (rolled back %d operations)", op.Name, err, i)
		}
	}
	return nil
}

// Apply runs every operation and stops at the first failure. Completed
// operations are kept.
func (t *Transaction) Apply(ctx context.Context) error {
	for _, op := range t.operations {
		if err := op.Fn(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (t *Transaction) rollback(ctx context.Context, failedAtIndex int) {
	for i := failedAtIndex - 1; i >= 0; i-- {
		comp := t.compensations[i]
		if comp.Fn == nil {
			continue
		}
		if err := comp.Fn(ctx); err != nil {
			t.log.Warn("compensation failed, data may be inconsistent",
				zap.String("step", comp.Name),
				zap.Error(err),
			)
		}
	}
}
