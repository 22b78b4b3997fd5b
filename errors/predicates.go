package errors

import "errors"

// Re-exported stdlib helpers so callers need a single errors import.
var (
	Is  = errors.Is
	As  = errors.As
	New = errors.New
)

// IsConfiguration checks if an error is configuration-related.
func IsConfiguration(err error) bool {
	return errors.Is(err, ErrConfiguration)
}

// IsDelivery checks if an error came from a rejected or failed post.
func IsDelivery(err error) bool {
	return errors.Is(err, ErrDelivery)
}

// IsConnection checks if an error came from the identity probe.
func IsConnection(err error) bool {
	return errors.Is(err, ErrConnection)
}

// DeliveryClass returns the class sentinel for a delivery error
// (ErrChannelNotFound, ErrNotInChannel, ErrInvalidAuth, ErrMissingScope),
// or nil if the error is not a classified delivery failure.
func DeliveryClass(err error) error {
	for _, class := range []error{ErrChannelNotFound, ErrNotInChannel, ErrInvalidAuth, ErrMissingScope} {
		if errors.Is(err, class) {
			return class
		}
	}
	return nil
}
