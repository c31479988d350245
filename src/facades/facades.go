package facades

import (
	"fmt"

	"github.com/remote-scripting-protocol/go-rsp/src/facades/base"
	"github.com/remote-scripting-protocol/go-rsp/src/facades/battery"
	"github.com/remote-scripting-protocol/go-rsp/src/facades/bluetooth"
	"github.com/remote-scripting-protocol/go-rsp/src/facades/bluetoothle"
	"github.com/remote-scripting-protocol/go-rsp/src/facades/event"
	"github.com/remote-scripting-protocol/go-rsp/src/facades/eyesfree"
	"github.com/remote-scripting-protocol/go-rsp/src/facades/phone"
	"github.com/remote-scripting-protocol/go-rsp/src/facades/settings"
	"github.com/remote-scripting-protocol/go-rsp/src/facades/signalstrength"
	"github.com/remote-scripting-protocol/go-rsp/src/facades/tts"
	"github.com/remote-scripting-protocol/go-rsp/src/facades/webcam"
	"github.com/remote-scripting-protocol/go-rsp/src/facades/wifi"
	"github.com/remote-scripting-protocol/go-rsp/src/sdk"
)

// UnknownFacadeError is returned when a configured facade name has no
// registered constructor.
type UnknownFacadeError struct {
	Name string
}

func (e *UnknownFacadeError) Error() string {
	return fmt.Sprintf("unknown facade %q in registry configuration", e.Name)
}

// constructors is the explicit table behind ByName. Names match the facade
// identities used in descriptors.
var constructors = map[string]func() base.Facade{
	"EventFacade":          func() base.Facade { return event.New() },
	"SettingsFacade":       func() base.Facade { return settings.New() },
	"WifiManagerFacade":    func() base.Facade { return wifi.New() },
	"PhoneFacade":          func() base.Facade { return phone.New() },
	"BatteryManagerFacade": func() base.Facade { return battery.New() },
	"TextToSpeechFacade":   func() base.Facade { return tts.New() },
	"EyesFreeFacade":       func() base.Facade { return eyesfree.New() },
	"BluetoothFacade":      func() base.Facade { return bluetooth.New() },
	"SignalStrengthFacade": func() base.Facade { return signalstrength.New() },
	"WebCamFacade":         func() base.Facade { return webcam.New() },
	"BluetoothLeFacade":    func() base.Facade { return bluetoothle.New() },
}

// DefaultSet returns the ordered facade roster for the given sdk level. The
// speech facade is the only level-dependent alternative: text-to-speech from
// level 4 up, the eyes-free fallback below. Everything else carries its own
// minimum level and is gated again at registry build time.
func DefaultSet(level sdk.Level) []base.Facade {
	set := []base.Facade{
		event.New(),
		settings.New(),
		wifi.New(),
		phone.New(),
		battery.New(),
	}
	if level.Supports(4) {
		set = append(set, tts.New())
	} else {
		set = append(set, eyesfree.New())
	}
	set = append(set,
		bluetooth.New(),
		signalstrength.New(),
		webcam.New(),
		bluetoothle.New(),
	)
	return set
}

// ByName resolves an ordered roster from configured facade names.
func ByName(names []string) ([]base.Facade, error) {
	out := make([]base.Facade, 0, len(names))
	for _, name := range names {
		ctor, ok := constructors[name]
		if !ok {
			return nil, &UnknownFacadeError{Name: name}
		}
		out = append(out, ctor())
	}
	return out, nil
}
