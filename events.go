package contract

import "github.com/dmitrymomot/contract/pkg/guard"

// OperationEvent reports that a named operation happened, with optional data.
type OperationEvent[T any] struct {
	Name string
	Data T
}

// NewOperationEvent creates an OperationEvent. The name must not be blank.
func NewOperationEvent[T any](name string, data T) (OperationEvent[T], error) {
	name, err := guard.RejectIfBlank(name, "name")
	if err != nil {
		return OperationEvent[T]{}, err
	}
	return OperationEvent[T]{Name: name, Data: data}, nil
}

// DisposedEvent reports that an instance has been released.
type DisposedEvent[T any] struct {
	Instance T
}

// NewDisposedEvent creates a DisposedEvent. The instance must not be nil.
func NewDisposedEvent[T any](instance T) (DisposedEvent[T], error) {
	instance, err := guard.RejectIfNull(instance, "instance")
	if err != nil {
		return DisposedEvent[T]{}, err
	}
	return DisposedEvent[T]{Instance: instance}, nil
}
