package battle

import "errors"

// ErrInvalidArgument marks caller errors: nil or malformed combatants,
// strategies, or modes passed where a valid one is required. Non-retriable.
var ErrInvalidArgument = errors.New("invalid argument")

// ErrInvalidState marks operations attempted against a battle that has
// already reached a terminal state. Non-retriable.
var ErrInvalidState = errors.New("invalid state")
