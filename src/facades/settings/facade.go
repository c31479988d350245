package settings

import (
	"context"
	"fmt"
	"sync"

	"github.com/spf13/cast"

	"github.com/remote-scripting-protocol/go-rsp/src/facades/base"
	"github.com/remote-scripting-protocol/go-rsp/src/rpc"
)

// SettingsFacade exposes host settings queries and toggles.
type SettingsFacade struct {
	base.BaseFacade

	mu           sync.Mutex
	brightness   int
	airplaneMode bool
}

func New() *SettingsFacade {
	return &SettingsFacade{
		BaseFacade: base.BaseFacade{FacadeName: "SettingsFacade"},
		brightness: 255,
	}
}

func (f *SettingsFacade) MethodDescriptors() []rpc.MethodDescriptor {
	return []rpc.MethodDescriptor{
		{
			Name:        "getScreenBrightness",
			Description: "Returns the screen backlight brightness.",
			Handler:     f.getScreenBrightness,
		},
		{
			Name:        "setScreenBrightness",
			Description: "Sets the screen backlight brightness.",
			Params: []rpc.Parameter{
				{Name: "value", Type: rpc.ParamInteger, Description: "Brightness between 0 and 255"},
			},
			Handler: f.setScreenBrightness,
		},
		{
			Name:        "checkAirplaneMode",
			Description: "Checks the airplane mode setting.",
			Handler:     f.checkAirplaneMode,
		},
		{
			Name:        "setScreenTimeout",
			Description: "Sets the screen timeout. Superseded by host power policies.",
			Params: []rpc.Parameter{
				{Name: "value", Type: rpc.ParamInteger},
			},
			Metadata: rpc.Metadata{Deprecated: true},
			Handler:  f.setScreenTimeout,
		},
	}
}

func (f *SettingsFacade) getScreenBrightness(ctx context.Context, args map[string]interface{}) (interface{}, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.brightness, nil
}

func (f *SettingsFacade) setScreenBrightness(ctx context.Context, args map[string]interface{}) (interface{}, error) {
	value, err := cast.ToIntE(args["value"])
	if err != nil {
		return nil, err
	}
	if value < 0 || value > 255 {
		return nil, fmt.Errorf("brightness %d out of range [0, 255]", value)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.brightness = value
	return f.brightness, nil
}

func (f *SettingsFacade) checkAirplaneMode(ctx context.Context, args map[string]interface{}) (interface{}, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.airplaneMode, nil
}

func (f *SettingsFacade) setScreenTimeout(ctx context.Context, args map[string]interface{}) (interface{}, error) {
	return nil, nil
}
