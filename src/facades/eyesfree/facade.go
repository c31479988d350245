package eyesfree

import (
	"context"

	"github.com/spf13/cast"

	"github.com/remote-scripting-protocol/go-rsp/src/facades/base"
	"github.com/remote-scripting-protocol/go-rsp/src/rpc"
)

// EyesFreeFacade is the speech fallback used below sdk level 4. It declares
// the same ttsSpeak name as the text-to-speech facade; the two are never part
// of the same roster.
type EyesFreeFacade struct {
	base.BaseFacade
}

func New() *EyesFreeFacade {
	return &EyesFreeFacade{BaseFacade: base.BaseFacade{FacadeName: "EyesFreeFacade"}}
}

func (f *EyesFreeFacade) MethodDescriptors() []rpc.MethodDescriptor {
	return []rpc.MethodDescriptor{
		{
			Name:        "ttsSpeak",
			Description: "Speaks the provided message via the eyes-free synthesizer.",
			Params: []rpc.Parameter{
				{Name: "message", Type: rpc.ParamString},
			},
			Handler: f.speak,
		},
	}
}

func (f *EyesFreeFacade) speak(ctx context.Context, args map[string]interface{}) (interface{}, error) {
	if _, err := cast.ToStringE(args["message"]); err != nil {
		return nil, err
	}
	return nil, nil
}
