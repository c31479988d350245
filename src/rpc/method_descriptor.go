package rpc

import "context"

// ParameterType is the declared wire type of one rpc parameter.
type ParameterType string

const (
	ParamString  ParameterType = "string"
	ParamInteger ParameterType = "integer"
	ParamNumber  ParameterType = "number"
	ParamBoolean ParameterType = "boolean"
	ParamObject  ParameterType = "object"
	ParamArray   ParameterType = "array"
)

// Parameter describes one positional argument of an rpc method.
type Parameter struct {
	Name        string        `json:"name"`
	Type        ParameterType `json:"type"`
	Description string        `json:"description,omitempty"`
	Optional    bool          `json:"optional,omitempty"`
}

// Handler is the signature rpc method implementations must satisfy.
type Handler func(ctx context.Context, args map[string]interface{}) (interface{}, error)

// Metadata carries the declarative tags attached to a registration entry:
// deprecation, the minimum sdk level the method needs, and the names of the
// event channels the method starts or stops.
type Metadata struct {
	Deprecated     bool   `json:"deprecated,omitempty"`
	MinSdkLevel    int    `json:"min_sdk_level,omitempty"`
	StartEventName string `json:"start_event_name,omitempty"`
	StopEventName  string `json:"stop_event_name,omitempty"`
}

// MethodDescriptor describes one remotely invocable operation exposed by a
// facade. Descriptors are plain values; once a registry is built they are
// never mutated.
type MethodDescriptor struct {
	Name        string      `json:"name"`
	FacadeName  string      `json:"facade"`
	Description string      `json:"description,omitempty"`
	Params      []Parameter `json:"params,omitempty"`
	Metadata
	Handler Handler `json:"-"`
}

// SupportedAt reports whether the method is part of the supported surface at
// the given sdk level. Deprecated methods are never supported; a zero
// MinSdkLevel means no level requirement.
func (d MethodDescriptor) SupportedAt(level int) bool {
	if d.Deprecated {
		return false
	}
	return d.MinSdkLevel == 0 || level >= d.MinSdkLevel
}
