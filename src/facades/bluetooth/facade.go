package bluetooth

import (
	"context"
	"sync"

	"github.com/spf13/cast"

	"github.com/remote-scripting-protocol/go-rsp/src/facades/base"
	"github.com/remote-scripting-protocol/go-rsp/src/rpc"
)

// BluetoothFacade exposes classic bluetooth adapter controls. Requires sdk
// level 5.
type BluetoothFacade struct {
	base.BaseFacade

	mu        sync.Mutex
	enabled   bool
	localName string
}

func New() *BluetoothFacade {
	return &BluetoothFacade{
		BaseFacade: base.BaseFacade{FacadeName: "BluetoothFacade", MinLevel: 5},
		localName:  "rsp-host",
	}
}

func (f *BluetoothFacade) MethodDescriptors() []rpc.MethodDescriptor {
	return []rpc.MethodDescriptor{
		{
			Name:        "checkBluetoothState",
			Description: "Checks whether the bluetooth adapter is on.",
			Handler:     f.checkState,
		},
		{
			Name:        "toggleBluetoothState",
			Description: "Toggles the bluetooth adapter on or off.",
			Params: []rpc.Parameter{
				{Name: "enabled", Type: rpc.ParamBoolean, Optional: true},
			},
			Handler: f.toggleState,
		},
		{
			Name:        "bluetoothGetLocalName",
			Description: "Returns the adapter's friendly name.",
			Handler:     f.getLocalName,
		},
		{
			Name:        "bluetoothSetLocalName",
			Description: "Sets the adapter's friendly name.",
			Params: []rpc.Parameter{
				{Name: "name", Type: rpc.ParamString},
			},
			Handler: f.setLocalName,
		},
	}
}

func (f *BluetoothFacade) checkState(ctx context.Context, args map[string]interface{}) (interface{}, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.enabled, nil
}

func (f *BluetoothFacade) toggleState(ctx context.Context, args map[string]interface{}) (interface{}, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if raw, ok := args["enabled"]; ok {
		enabled, err := cast.ToBoolE(raw)
		if err != nil {
			return nil, err
		}
		f.enabled = enabled
	} else {
		f.enabled = !f.enabled
	}
	return f.enabled, nil
}

func (f *BluetoothFacade) getLocalName(ctx context.Context, args map[string]interface{}) (interface{}, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.localName, nil
}

func (f *BluetoothFacade) setLocalName(ctx context.Context, args map[string]interface{}) (interface{}, error) {
	name, err := cast.ToStringE(args["name"])
	if err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.localName = name
	return true, nil
}
