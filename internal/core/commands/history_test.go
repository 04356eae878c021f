package commands_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fintrackhq/fintrack_app/internal/core/commands"
)

// stubCommand counts executions and undos.
type stubCommand struct {
	name     string
	executed bool
	execErr  error
	executes int
	undos    int
}

func (s *stubCommand) Execute(ctx context.Context) error {
	if s.execErr != nil {
		return s.execErr
	}
	s.executes++
	s.executed = true
	return nil
}

func (s *stubCommand) Undo(ctx context.Context) error {
	s.undos++
	s.executed = false
	return nil
}

func (s *stubCommand) Name() string { return s.name }

func (s *stubCommand) CanUndo() bool { return true }

func TestHistory_ExecuteAndUndo(t *testing.T) {
	ctx := context.Background()
	h := commands.NewHistory()
	cmd := &stubCommand{name: "a"}

	require.NoError(t, h.Execute(ctx, cmd))
	assert.Equal(t, 1, h.Size())
	assert.True(t, h.CanUndo())
	assert.False(t, h.CanRedo())

	require.NoError(t, h.Undo(ctx))
	assert.Equal(t, 1, cmd.undos)
	assert.False(t, h.CanUndo())
	assert.True(t, h.CanRedo())

	require.NoError(t, h.Redo(ctx))
	assert.Equal(t, 2, cmd.executes)
	assert.True(t, h.CanUndo())
	assert.False(t, h.CanRedo())
}

func TestHistory_EmptyUndoRedoAreNoOps(t *testing.T) {
	ctx := context.Background()
	h := commands.NewHistory()

	assert.NoError(t, h.Undo(ctx))
	assert.NoError(t, h.Redo(ctx))
	assert.Equal(t, 0, h.Size())
}

func TestHistory_NewCommandTruncatesRedoTail(t *testing.T) {
	ctx := context.Background()
	h := commands.NewHistory()
	a := &stubCommand{name: "a"}
	b := &stubCommand{name: "b"}
	c := &stubCommand{name: "c"}

	require.NoError(t, h.Execute(ctx, a))
	require.NoError(t, h.Execute(ctx, b))
	require.NoError(t, h.Undo(ctx))
	require.NoError(t, h.Execute(ctx, c))

	assert.Equal(t, []string{"a", "c"}, h.Names())
	assert.False(t, h.CanRedo(), "b is gone for good")
}

func TestHistory_FailedExecuteIsNotRecorded(t *testing.T) {
	ctx := context.Background()
	h := commands.NewHistory()
	boom := errors.New("boom")

	err := h.Execute(ctx, &stubCommand{name: "bad", execErr: boom})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 0, h.Size())
	assert.False(t, h.CanUndo())
}

func TestHistory_UndoRedoOrdering(t *testing.T) {
	ctx := context.Background()
	h := commands.NewHistory()
	a := &stubCommand{name: "a"}
	b := &stubCommand{name: "b"}

	require.NoError(t, h.Execute(ctx, a))
	require.NoError(t, h.Execute(ctx, b))

	require.NoError(t, h.Undo(ctx))
	assert.Equal(t, 1, b.undos, "most recent first")
	assert.Equal(t, 0, a.undos)

	require.NoError(t, h.Undo(ctx))
	assert.Equal(t, 1, a.undos)

	require.NoError(t, h.Redo(ctx))
	assert.Equal(t, 2, a.executes, "oldest undone first")
}

func TestHistory_Clear(t *testing.T) {
	ctx := context.Background()
	h := commands.NewHistory()
	require.NoError(t, h.Execute(ctx, &stubCommand{name: "a"}))

	h.Clear()
	assert.Equal(t, 0, h.Size())
	assert.False(t, h.CanUndo())
	assert.False(t, h.CanRedo())
	assert.Empty(t, h.Names())
}
