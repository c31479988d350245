package manual

import (
	"github.com/spf13/cast"

	. "github.com/remote-scripting-protocol/go-rsp/src/rpc"

	"github.com/remote-scripting-protocol/go-rsp/src/json"
	"github.com/remote-scripting-protocol/go-rsp/src/registry"
)

// Version of the manual wire format.
const Version = "1.0"

// Manual is a versioned, serializable catalog of the supported rpc surface.
// Dispatch layers hand it to callers as the discovery response; BuildID keys
// their caches.
type Manual struct {
	Version  string       `json:"version"`
	BuildID  string       `json:"build_id"`
	SdkLevel int          `json:"sdk_level"`
	Methods  []MethodSpec `json:"methods"`
}

// MethodSpec is the wire form of one method descriptor. Handlers never leave
// the process; everything else does.
type MethodSpec struct {
	Name           string      `json:"name"`
	Facade         string      `json:"facade"`
	Description    string      `json:"description,omitempty"`
	Params         []Parameter `json:"params,omitempty"`
	StartEventName string      `json:"start_event_name,omitempty"`
	StopEventName  string      `json:"stop_event_name,omitempty"`
}

// FromRegistry builds a Manual from the registry's supported view, in index
// order.
func FromRegistry(r *registry.Registry) Manual {
	supported := r.CollectSupportedMethodDescriptors()
	m := Manual{
		Version:  Version,
		BuildID:  r.BuildID(),
		SdkLevel: int(r.SdkLevel()),
		Methods:  make([]MethodSpec, 0, len(supported)),
	}
	for _, d := range supported {
		m.Methods = append(m.Methods, MethodSpec{
			Name:           d.Name,
			Facade:         d.FacadeName,
			Description:    d.Description,
			Params:         d.Params,
			StartEventName: d.StartEventName,
			StopEventName:  d.StopEventName,
		})
	}
	return m
}

// Marshal renders the manual as JSON.
func (m Manual) Marshal() ([]byte, error) {
	return json.Marshal(m)
}

// FromMap constructs a Manual from a raw map representation, coercing
// scalars leniently.
func FromMap(raw map[string]interface{}) Manual {
	m := Manual{}
	m.Version = cast.ToString(raw["version"])
	m.BuildID = cast.ToString(raw["build_id"])
	m.SdkLevel = cast.ToInt(raw["sdk_level"])

	if rawMethods, ok := raw["methods"].([]interface{}); ok {
		for _, rm := range rawMethods {
			entry, ok := rm.(map[string]interface{})
			if !ok {
				continue
			}
			spec := MethodSpec{
				Name:           cast.ToString(entry["name"]),
				Facade:         cast.ToString(entry["facade"]),
				Description:    cast.ToString(entry["description"]),
				StartEventName: cast.ToString(entry["start_event_name"]),
				StopEventName:  cast.ToString(entry["stop_event_name"]),
			}
			m.Methods = append(m.Methods, spec)
		}
	}
	return m
}
