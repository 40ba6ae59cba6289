package action

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is matched by every *ArgumentError.
var ErrInvalidArgument = errors.New("invalid argument")

// ArgumentError reports a BindAll call with neither a creator nor a map of
// creators. Received describes what was passed instead.
type ArgumentError struct {
	Received string
}

// Error implements the error interface.
func (e *ArgumentError) Error() string {
	return fmt.Sprintf(
		"bindActionCreators expected an object or a function, instead received %s. "+
			"Did you pass a single creator where a map of creators was expected?",
		e.Received,
	)
}

// Is matches ErrInvalidArgument.
func (e *ArgumentError) Is(target error) bool {
	return target == ErrInvalidArgument
}
