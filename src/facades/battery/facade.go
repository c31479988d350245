package battery

import (
	"context"
	"sync"

	"github.com/remote-scripting-protocol/go-rsp/src/facades/base"
	"github.com/remote-scripting-protocol/go-rsp/src/rpc"
)

// BatteryFacade exposes battery state queries and the "battery" event channel.
type BatteryFacade struct {
	base.BaseFacade

	mu       sync.Mutex
	tracking bool
	level    int
}

func New() *BatteryFacade {
	return &BatteryFacade{
		BaseFacade: base.BaseFacade{FacadeName: "BatteryManagerFacade"},
		level:      100,
	}
}

func (f *BatteryFacade) MethodDescriptors() []rpc.MethodDescriptor {
	return []rpc.MethodDescriptor{
		{
			Name:        "batteryStartMonitoring",
			Description: "Starts tracking battery state and posts battery events.",
			Metadata:    rpc.Metadata{StartEventName: "battery"},
			Handler:     f.startMonitoring,
		},
		{
			Name:        "batteryStopMonitoring",
			Description: "Stops tracking battery state.",
			Metadata:    rpc.Metadata{StopEventName: "battery"},
			Handler:     f.stopMonitoring,
		},
		{
			Name:        "readBatteryData",
			Description: "Returns the most recently recorded battery data.",
			Handler:     f.readData,
		},
		{
			Name:        "batteryGetHealth",
			Description: "Returns the battery health constant.",
			Metadata:    rpc.Metadata{MinSdkLevel: 5},
			Handler:     f.health,
		},
	}
}

func (f *BatteryFacade) startMonitoring(ctx context.Context, args map[string]interface{}) (interface{}, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tracking = true
	return nil, nil
}

func (f *BatteryFacade) stopMonitoring(ctx context.Context, args map[string]interface{}) (interface{}, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tracking = false
	return nil, nil
}

func (f *BatteryFacade) readData(ctx context.Context, args map[string]interface{}) (interface{}, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return map[string]interface{}{"level": f.level, "tracking": f.tracking}, nil
}

func (f *BatteryFacade) health(ctx context.Context, args map[string]interface{}) (interface{}, error) {
	return 2, nil // good
}
