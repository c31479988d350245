package phone

import (
	"context"
	"sync"

	"github.com/remote-scripting-protocol/go-rsp/src/facades/base"
	"github.com/remote-scripting-protocol/go-rsp/src/rpc"
)

// PhoneFacade exposes telephony state and the "phone" event channel.
type PhoneFacade struct {
	base.BaseFacade

	mu       sync.Mutex
	tracking bool
	state    string
}

func New() *PhoneFacade {
	return &PhoneFacade{
		BaseFacade: base.BaseFacade{FacadeName: "PhoneFacade"},
		state:      "idle",
	}
}

func (f *PhoneFacade) MethodDescriptors() []rpc.MethodDescriptor {
	return []rpc.MethodDescriptor{
		{
			Name:        "startTrackingPhoneState",
			Description: "Starts tracking phone state and posts phone events.",
			Metadata:    rpc.Metadata{StartEventName: "phone"},
			Handler:     f.startTracking,
		},
		{
			Name:        "stopTrackingPhoneState",
			Description: "Stops tracking phone state.",
			Metadata:    rpc.Metadata{StopEventName: "phone"},
			Handler:     f.stopTracking,
		},
		{
			Name:        "readPhoneState",
			Description: "Returns the current phone state.",
			Handler:     f.readState,
		},
		{
			Name:        "getDeviceId",
			Description: "Returns the unique device id. Restricted on modern hosts.",
			Metadata:    rpc.Metadata{Deprecated: true},
			Handler:     f.deviceID,
		},
	}
}

func (f *PhoneFacade) startTracking(ctx context.Context, args map[string]interface{}) (interface{}, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tracking = true
	return nil, nil
}

func (f *PhoneFacade) stopTracking(ctx context.Context, args map[string]interface{}) (interface{}, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tracking = false
	return nil, nil
}

func (f *PhoneFacade) readState(ctx context.Context, args map[string]interface{}) (interface{}, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return map[string]interface{}{"state": f.state, "tracking": f.tracking}, nil
}

func (f *PhoneFacade) deviceID(ctx context.Context, args map[string]interface{}) (interface{}, error) {
	return "000000000000000", nil
}
