package base

import (
	. "github.com/remote-scripting-protocol/go-rsp/src/rpc"
)

// Facade is implemented by every facade module. A facade is an identity plus
// a registration table; it owns no registry state of its own.
type Facade interface {
	// Name returns the facade identity used in descriptors and error messages.
	Name() string
	// MinSdkLevel is the lowest sdk level at which the whole facade exists.
	// Zero means unconditional.
	MinSdkLevel() int
	// MethodDescriptors returns the facade's registration table.
	MethodDescriptors() []MethodDescriptor
}

// BaseFacade holds the fields common to every facade.
type BaseFacade struct {
	FacadeName string
	MinLevel   int
}

func (b *BaseFacade) Name() string {
	return b.FacadeName
}

func (b *BaseFacade) MinSdkLevel() int {
	return b.MinLevel
}
