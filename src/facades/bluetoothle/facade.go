package bluetoothle

import (
	"context"
	"sync"

	"github.com/spf13/cast"

	"github.com/remote-scripting-protocol/go-rsp/src/facades/base"
	"github.com/remote-scripting-protocol/go-rsp/src/rpc"
)

// BluetoothLeFacade exposes low-energy scanning and the "ble_scan" event
// channel. Requires sdk level 19.
type BluetoothLeFacade struct {
	base.BaseFacade

	mu       sync.Mutex
	scanning bool
	scanMode int
}

func New() *BluetoothLeFacade {
	return &BluetoothLeFacade{
		BaseFacade: base.BaseFacade{FacadeName: "BluetoothLeFacade", MinLevel: 19},
	}
}

func (f *BluetoothLeFacade) MethodDescriptors() []rpc.MethodDescriptor {
	return []rpc.MethodDescriptor{
		{
			Name:        "bleStartScan",
			Description: "Starts a low-energy scan and posts ble_scan events.",
			Metadata:    rpc.Metadata{StartEventName: "ble_scan"},
			Handler:     f.startScan,
		},
		{
			Name:        "bleStopScan",
			Description: "Stops the running low-energy scan.",
			Metadata:    rpc.Metadata{StopEventName: "ble_scan"},
			Handler:     f.stopScan,
		},
		{
			Name:        "bleSetScanSettings",
			Description: "Sets the scan mode used by subsequent scans.",
			Params: []rpc.Parameter{
				{Name: "scan_mode", Type: rpc.ParamInteger},
			},
			Handler: f.setScanSettings,
		},
	}
}

func (f *BluetoothLeFacade) startScan(ctx context.Context, args map[string]interface{}) (interface{}, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.scanning = true
	return nil, nil
}

func (f *BluetoothLeFacade) stopScan(ctx context.Context, args map[string]interface{}) (interface{}, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.scanning = false
	return nil, nil
}

func (f *BluetoothLeFacade) setScanSettings(ctx context.Context, args map[string]interface{}) (interface{}, error) {
	mode, err := cast.ToIntE(args["scan_mode"])
	if err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.scanMode = mode
	return f.scanMode, nil
}
