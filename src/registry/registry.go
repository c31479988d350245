package registry

import (
	"sort"

	"github.com/google/uuid"

	. "github.com/remote-scripting-protocol/go-rsp/src/facades/base"
	. "github.com/remote-scripting-protocol/go-rsp/src/rpc"

	"github.com/remote-scripting-protocol/go-rsp/src/sdk"
)

// Registry is the immutable, name-addressable index of every rpc method
// exposed by the configured facade set. It is built exactly once by New and
// serves read-only queries afterwards, so unsynchronized concurrent reads
// are safe.
type Registry struct {
	buildID     string
	sdkLevel    sdk.Level
	facades     []Facade
	names       []string // index keys, sorted
	index       map[string]MethodDescriptor
	startEvents map[string]MethodDescriptor
	stopEvents  map[string]MethodDescriptor
}

// New assembles the facade set under the sdk-level gate, introspects every
// facade that survives, and freezes the method and event indexes.
//
// A facade whose MinSdkLevel exceeds the given level is excluded entirely:
// its methods never become name-addressable. Method-level gating is different
// and happens at query time, see CollectSupportedMethodDescriptors.
//
// Two facades declaring the same method name is a build-time failure. The
// classic scripting-layer configuration silently let the later facade win,
// with "later" depending on an unordered collection; ambiguous dispatch
// ownership is rejected here instead, same as a duplicate event binding.
func New(level sdk.Level, candidates []Facade) (*Registry, error) {
	r := &Registry{
		buildID:     uuid.NewString(),
		sdkLevel:    level,
		index:       make(map[string]MethodDescriptor),
		startEvents: make(map[string]MethodDescriptor),
		stopEvents:  make(map[string]MethodDescriptor),
	}

	for _, f := range candidates {
		if !level.Supports(f.MinSdkLevel()) {
			continue
		}
		r.facades = append(r.facades, f)
	}

	owners := make(map[string]string)
	for _, f := range r.facades {
		descriptors, err := CollectMethodDescriptors(f)
		if err != nil {
			return nil, err
		}
		for _, d := range descriptors {
			if prev, ok := owners[d.Name]; ok {
				return nil, &DuplicateMethodError{Name: d.Name, Facade: d.FacadeName, OtherFacade: prev}
			}
			owners[d.Name] = d.FacadeName
			r.index[d.Name] = d
		}
	}

	r.names = make([]string, 0, len(r.index))
	for name := range r.index {
		r.names = append(r.names, name)
	}
	sort.Strings(r.names)

	// Event indexes derive from the frozen method index. Walking in name
	// order keeps which duplicate surfaces first deterministic.
	for _, name := range r.names {
		d := r.index[name]
		if d.StartEventName != "" {
			if _, dup := r.startEvents[d.StartEventName]; dup {
				return nil, &DuplicateEventBindingError{EventName: d.StartEventName, Kind: "start"}
			}
			r.startEvents[d.StartEventName] = d
		}
		if d.StopEventName != "" {
			if _, dup := r.stopEvents[d.StopEventName]; dup {
				return nil, &DuplicateEventBindingError{EventName: d.StopEventName, Kind: "stop"}
			}
			r.stopEvents[d.StopEventName] = d
		}
	}

	return r, nil
}

// BuildID is a fingerprint of this build, distinct per New call. Downstream
// dispatch layers use it to key cached discovery responses.
func (r *Registry) BuildID() string {
	return r.buildID
}

// SdkLevel returns the level the registry was built against.
func (r *Registry) SdkLevel() sdk.Level {
	return r.sdkLevel
}

// Facades returns the configured facade set, in assembly order, after
// sdk-level gating.
func (r *Registry) Facades() []Facade {
	out := make([]Facade, len(r.facades))
	copy(out, r.facades)
	return out
}

// GetMethodDescriptor returns the descriptor registered under name, or nil
// for an unknown name. An unknown name is a normal outcome, not an error.
func (r *Registry) GetMethodDescriptor(name string) *MethodDescriptor {
	d, ok := r.index[name]
	if !ok {
		return nil
	}
	return &d
}

// CollectMethodDescriptors returns every descriptor in index order
// (lexicographic by name).
func (r *Registry) CollectMethodDescriptors() []MethodDescriptor {
	out := make([]MethodDescriptor, 0, len(r.names))
	for _, name := range r.names {
		out = append(out, r.index[name])
	}
	return out
}

// CollectSupportedMethodDescriptors returns the descriptors that are neither
// deprecated nor above the registry's sdk level, preserving index order.
// This is a view: methods filtered out here stay name-addressable through
// GetMethodDescriptor.
func (r *Registry) CollectSupportedMethodDescriptors() []MethodDescriptor {
	var out []MethodDescriptor
	for _, name := range r.names {
		d := r.index[name]
		if !d.SupportedAt(int(r.sdkLevel)) {
			continue
		}
		out = append(out, d)
	}
	return out
}

// CollectStartEventMethodDescriptors returns the event-name to descriptor
// mapping for methods that start an event channel.
func (r *Registry) CollectStartEventMethodDescriptors() map[string]MethodDescriptor {
	out := make(map[string]MethodDescriptor, len(r.startEvents))
	for name, d := range r.startEvents {
		out[name] = d
	}
	return out
}

// CollectStopEventMethodDescriptors returns the event-name to descriptor
// mapping for methods that stop an event channel.
func (r *Registry) CollectStopEventMethodDescriptors() map[string]MethodDescriptor {
	out := make(map[string]MethodDescriptor, len(r.stopEvents))
	for name, d := range r.stopEvents {
		out[name] = d
	}
	return out
}
