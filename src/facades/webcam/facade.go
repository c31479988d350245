package webcam

import (
	"context"
	"fmt"
	"sync"

	"github.com/spf13/cast"

	"github.com/remote-scripting-protocol/go-rsp/src/facades/base"
	"github.com/remote-scripting-protocol/go-rsp/src/rpc"
)

// WebCamFacade exposes camera preview streaming controls. Requires sdk
// level 8.
type WebCamFacade struct {
	base.BaseFacade

	mu        sync.Mutex
	streaming bool
	quality   int
}

func New() *WebCamFacade {
	return &WebCamFacade{
		BaseFacade: base.BaseFacade{FacadeName: "WebCamFacade", MinLevel: 8},
		quality:    20,
	}
}

func (f *WebCamFacade) MethodDescriptors() []rpc.MethodDescriptor {
	return []rpc.MethodDescriptor{
		{
			Name:        "webcamStart",
			Description: "Starts the camera preview stream.",
			Params: []rpc.Parameter{
				{Name: "resolution_level", Type: rpc.ParamInteger, Optional: true},
				{Name: "jpeg_quality", Type: rpc.ParamInteger, Optional: true},
			},
			Handler: f.start,
		},
		{
			Name:        "webcamAdjustQuality",
			Description: "Adjusts the quality of the running preview stream.",
			Params: []rpc.Parameter{
				{Name: "jpeg_quality", Type: rpc.ParamInteger},
			},
			Handler: f.adjustQuality,
		},
		{
			Name:        "webcamStop",
			Description: "Stops the camera preview stream.",
			Handler:     f.stop,
		},
	}
}

func (f *WebCamFacade) start(ctx context.Context, args map[string]interface{}) (interface{}, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if raw, ok := args["jpeg_quality"]; ok {
		quality, err := cast.ToIntE(raw)
		if err != nil {
			return nil, err
		}
		f.quality = quality
	}
	f.streaming = true
	return true, nil
}

func (f *WebCamFacade) adjustQuality(ctx context.Context, args map[string]interface{}) (interface{}, error) {
	quality, err := cast.ToIntE(args["jpeg_quality"])
	if err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if !f.streaming {
		return nil, fmt.Errorf("webcamAdjustQuality: preview is not running")
	}
	f.quality = quality
	return f.quality, nil
}

func (f *WebCamFacade) stop(ctx context.Context, args map[string]interface{}) (interface{}, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.streaming = false
	return nil, nil
}
