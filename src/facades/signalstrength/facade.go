package signalstrength

import (
	"context"
	"sync"

	"github.com/remote-scripting-protocol/go-rsp/src/facades/base"
	"github.com/remote-scripting-protocol/go-rsp/src/rpc"
)

// SignalStrengthFacade exposes cellular signal tracking. Requires sdk level 7.
type SignalStrengthFacade struct {
	base.BaseFacade

	mu       sync.Mutex
	tracking bool
}

func New() *SignalStrengthFacade {
	return &SignalStrengthFacade{
		BaseFacade: base.BaseFacade{FacadeName: "SignalStrengthFacade", MinLevel: 7},
	}
}

func (f *SignalStrengthFacade) MethodDescriptors() []rpc.MethodDescriptor {
	return []rpc.MethodDescriptor{
		{
			Name:        "startTrackingSignalStrengths",
			Description: "Starts tracking signal strengths and posts signal_strengths events.",
			Metadata:    rpc.Metadata{StartEventName: "signal_strengths"},
			Handler:     f.startTracking,
		},
		{
			Name:        "readSignalStrengths",
			Description: "Returns the most recently recorded signal strengths.",
			Handler:     f.read,
		},
		{
			Name:        "stopTrackingSignalStrengths",
			Description: "Stops tracking signal strengths.",
			Metadata:    rpc.Metadata{StopEventName: "signal_strengths"},
			Handler:     f.stopTracking,
		},
	}
}

func (f *SignalStrengthFacade) startTracking(ctx context.Context, args map[string]interface{}) (interface{}, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tracking = true
	return nil, nil
}

func (f *SignalStrengthFacade) read(ctx context.Context, args map[string]interface{}) (interface{}, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.tracking {
		return nil, nil
	}
	return map[string]interface{}{"gsm_signal_strength": 99}, nil
}

func (f *SignalStrengthFacade) stopTracking(ctx context.Context, args map[string]interface{}) (interface{}, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tracking = false
	return nil, nil
}
