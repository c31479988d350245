package base

import (
	. "github.com/remote-scripting-protocol/go-rsp/src/rpc"
)

// CollectMethodDescriptors validates a facade's registration table and
// returns its descriptors with the owning facade stamped in. Pure extraction:
// the facade is not touched beyond reading the table.
//
// A duplicate method name inside one facade, an empty name or a nil handler
// are all rejected here, before anything reaches the registry.
func CollectMethodDescriptors(f Facade) ([]MethodDescriptor, error) {
	table := f.MethodDescriptors()
	seen := make(map[string]struct{}, len(table))
	out := make([]MethodDescriptor, 0, len(table))
	for _, d := range table {
		if d.Name == "" {
			return nil, &MalformedDescriptorError{Facade: f.Name(), Reason: "empty method name"}
		}
		if d.Handler == nil {
			return nil, &MalformedDescriptorError{Facade: f.Name(), Reason: "nil handler for " + d.Name}
		}
		if _, dup := seen[d.Name]; dup {
			return nil, &DuplicateMethodError{Name: d.Name, Facade: f.Name()}
		}
		seen[d.Name] = struct{}{}
		d.FacadeName = f.Name()
		out = append(out, d)
	}
	return out, nil
}
