package rpc

import "fmt"

// DuplicateMethodError is returned when two registration entries declare the
// same method name, either inside one facade or across two facades.
type DuplicateMethodError struct {
	Name        string
	Facade      string
	OtherFacade string // empty for an intra-facade duplicate
}

func (e *DuplicateMethodError) Error() string {
	if e.OtherFacade != "" && e.OtherFacade != e.Facade {
		return fmt.Sprintf("method %q declared by both %s and %s", e.Name, e.OtherFacade, e.Facade)
	}
	return fmt.Sprintf("method %q declared twice by %s", e.Name, e.Facade)
}

// DuplicateEventBindingError is returned when two methods claim the same
// start or stop event channel. Event channels have exactly one owner; this is
// a fatal misconfiguration of the facade set.
type DuplicateEventBindingError struct {
	EventName string
	Kind      string // "start" or "stop"
}

func (e *DuplicateEventBindingError) Error() string {
	return fmt.Sprintf("duplicate %s event binding for %q", e.Kind, e.EventName)
}

// MalformedDescriptorError is returned when a registration entry is unusable
// (empty name, nil handler). The registry never comes up with such an entry.
type MalformedDescriptorError struct {
	Facade string
	Reason string
}

func (e *MalformedDescriptorError) Error() string {
	return fmt.Sprintf("malformed method descriptor in %s: %s", e.Facade, e.Reason)
}
