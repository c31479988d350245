package wifi

import (
	"context"
	"fmt"
	"sync"

	"github.com/spf13/cast"

	"github.com/remote-scripting-protocol/go-rsp/src/facades/base"
	"github.com/remote-scripting-protocol/go-rsp/src/rpc"
)

// WifiFacade exposes wifi radio state and connection info.
type WifiFacade struct {
	base.BaseFacade

	mu      sync.Mutex
	enabled bool
}

func New() *WifiFacade {
	return &WifiFacade{
		BaseFacade: base.BaseFacade{FacadeName: "WifiManagerFacade"},
		enabled:    true,
	}
}

func (f *WifiFacade) MethodDescriptors() []rpc.MethodDescriptor {
	return []rpc.MethodDescriptor{
		{
			Name:        "checkWifiState",
			Description: "Checks whether the wifi radio is on.",
			Handler:     f.checkState,
		},
		{
			Name:        "toggleWifiState",
			Description: "Toggles the wifi radio on or off.",
			Params: []rpc.Parameter{
				{Name: "enabled", Type: rpc.ParamBoolean, Optional: true},
			},
			Handler: f.toggleState,
		},
		{
			Name:        "wifiGetConnectionInfo",
			Description: "Returns information about the currently associated access point.",
			Handler:     f.connectionInfo,
		},
		{
			Name:        "wifiEnterpriseConnect",
			Description: "Connects to an enterprise network using the supplied EAP config.",
			Params: []rpc.Parameter{
				{Name: "config", Type: rpc.ParamObject},
			},
			Metadata: rpc.Metadata{MinSdkLevel: 19},
			Handler:  f.enterpriseConnect,
		},
	}
}

func (f *WifiFacade) checkState(ctx context.Context, args map[string]interface{}) (interface{}, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.enabled, nil
}

func (f *WifiFacade) toggleState(ctx context.Context, args map[string]interface{}) (interface{}, error) {
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

func (f *WifiFacade) connectionInfo(ctx context.Context, args map[string]interface{}) (interface{}, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.enabled {
		return nil, nil
	}
	return map[string]interface{}{"ssid": "", "link_speed": 0}, nil
}

func (f *WifiFacade) enterpriseConnect(ctx context.Context, args map[string]interface{}) (interface{}, error) {
	if _, ok := args["config"]; !ok {
		return nil, fmt.Errorf("wifiEnterpriseConnect: missing config argument")
	}
	return true, nil
}
