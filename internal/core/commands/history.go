package commands

import "context"

// History is a linear undo/redo stack with a cursor. Commands left of the
// cursor are executed; commands at or right of it have been undone and are
// candidates for redo. Executing a new command truncates the redo tail.
// History is not safe for concurrent use; callers serialize access.
type History struct {
	commands []Command
	cursor   int
}

// NewHistory creates an empty command history.
func NewHistory() *History {
	return &History{}
}

// Execute runs cmd and, on success, records it at the cursor. Any previously
// undone commands are discarded first, so redo is no longer possible.
func (h *History) Execute(ctx context.Context, cmd Command) error {
	h.commands = h.commands[:h.cursor]
	if err := cmd.Execute(ctx); err != nil {
		return err
	}
	h.commands = append(h.commands, cmd)
	h.cursor++
	return nil
}

// Undo reverts the most recently executed command. It is a no-op when there
// is nothing to undo.
func (h *History) Undo(ctx context.Context) error {
	if !h.CanUndo() {
		return nil
	}
	if err := h.commands[h.cursor-1].Undo(ctx); err != nil {
		return err
	}
	h.cursor--
	return nil
}

// Redo re-executes the most recently undone command. It is a no-op when
// there is nothing to redo.
func (h *History) Redo(ctx context.Context) error {
	if !h.CanRedo() {
		return nil
	}
	if err := h.commands[h.cursor].Execute(ctx); err != nil {
		return err
	}
	h.cursor++
	return nil
}

// CanUndo reports whether at least one executed command can be undone.
func (h *History) CanUndo() bool {
	return h.cursor > 0 && h.commands[h.cursor-1].CanUndo()
}

// CanRedo reports whether an undone command is available for redo.
func (h *History) CanRedo() bool {
	return h.cursor < len(h.commands)
}

// Size returns the number of commands currently executed.
func (h *History) Size() int { return h.cursor }

// Names returns the names of the executed commands, oldest first.
func (h *History) Names() []string {
	names := make([]string, h.cursor)
	for i := 0; i < h.cursor; i++ {
		names[i] = h.commands[i].Name()
	}
	return names
}

// Clear drops all recorded commands without undoing them.
func (h *History) Clear() {
	h.commands = nil
	h.cursor = 0
}
