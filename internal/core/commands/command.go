// Package commands turns every mutation into a named, reversible unit of
// work and keeps a linear undo/redo history over them. Commands and the
// History are single-writer structures: serialize all submissions through
// one owner.
package commands

import (
	"context"
	"fmt"

	"github.com/fintrackhq/fintrack_app/internal/apperrors"
)

// Command is a single-shot reversible unit of work. Execute performs the
// mutation exactly once; Undo reverses it. CanUndo is a static capability
// flag per command kind.
type Command interface {
	Execute(ctx context.Context) error
	Undo(ctx context.Context) error
	Name() string
	CanUndo() bool
}

// base carries the name and the executed flag shared by every command.
type base struct {
	name     string
	executed bool
}

func (b *base) Name() string { return b.name }

// beginExecute enforces the exactly-once contract.
func (b *base) beginExecute() error {
	if b.executed {
		return fmt.Errorf("command %q: %w", b.name, apperrors.ErrAlreadyExecuted)
	}
	return nil
}

// beginUndo enforces undo ordering and the capability flag.
func (b *base) beginUndo(canUndo bool) error {
	if !b.executed {
		return fmt.Errorf("command %q: %w", b.name, apperrors.ErrNotExecuted)
	}
	if !canUndo {
		return fmt.Errorf("command %q: %w", b.name, apperrors.ErrNotUndoable)
	}
	return nil
}
