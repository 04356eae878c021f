package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDomainRule indicates that a business invariant was violated
// (inactive account mutation, same-account transfer, deleting an
// account with a nonzero balance, deleting a category in use).
var ErrDomainRule = errors.New("domain rule violation")

// ErrInsufficientFunds indicates a withdrawal larger than the available balance.
var ErrInsufficientFunds = errors.New("insufficient funds")

// ErrAlreadyExecuted indicates a command was executed twice without an undo.
var ErrAlreadyExecuted = errors.New("command already executed")

// ErrNotExecuted indicates an undo was attempted before the command ran.
var ErrNotExecuted = errors.New("command not executed")

// ErrNotUndoable indicates the command does not support undo.
var ErrNotUndoable = errors.New("command cannot be undone")
