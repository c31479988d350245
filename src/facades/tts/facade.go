package tts

import (
	"context"
	"sync"

	"github.com/spf13/cast"

	"github.com/remote-scripting-protocol/go-rsp/src/facades/base"
	"github.com/remote-scripting-protocol/go-rsp/src/rpc"
)

// TextToSpeechFacade is the speech synthesis facade for sdk level 4 and up.
// Below level 4 the eyesfree facade provides the same surface.
type TextToSpeechFacade struct {
	base.BaseFacade

	mu       sync.Mutex
	speaking bool
}

func New() *TextToSpeechFacade {
	return &TextToSpeechFacade{
		BaseFacade: base.BaseFacade{FacadeName: "TextToSpeechFacade", MinLevel: 4},
	}
}

func (f *TextToSpeechFacade) MethodDescriptors() []rpc.MethodDescriptor {
	return []rpc.MethodDescriptor{
		{
			Name:        "ttsSpeak",
			Description: "Speaks the provided message via TTS.",
			Params: []rpc.Parameter{
				{Name: "message", Type: rpc.ParamString},
			},
			Handler: f.speak,
		},
		{
			Name:        "ttsIsSpeaking",
			Description: "Returns true if speech is currently in progress.",
			Handler:     f.isSpeaking,
		},
	}
}

func (f *TextToSpeechFacade) speak(ctx context.Context, args map[string]interface{}) (interface{}, error) {
	message, err := cast.ToStringE(args["message"])
	if err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.speaking = message != ""
	return nil, nil
}

func (f *TextToSpeechFacade) isSpeaking(ctx context.Context, args map[string]interface{}) (interface{}, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.speaking, nil
}
