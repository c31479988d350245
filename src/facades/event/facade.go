package event

import (
	"context"
	"sync"

	"github.com/spf13/cast"

	"github.com/remote-scripting-protocol/go-rsp/src/facades/base"
	"github.com/remote-scripting-protocol/go-rsp/src/rpc"
)

// EventFacade manages the event buffer shared by the tracking facades.
type EventFacade struct {
	base.BaseFacade

	mu     sync.Mutex
	buffer []map[string]interface{}
}

func New() *EventFacade {
	return &EventFacade{BaseFacade: base.BaseFacade{FacadeName: "EventFacade"}}
}

func (f *EventFacade) MethodDescriptors() []rpc.MethodDescriptor {
	return []rpc.MethodDescriptor{
		{
			Name:        "eventPost",
			Description: "Posts an event to the event buffer.",
			Params: []rpc.Parameter{
				{Name: "name", Type: rpc.ParamString, Description: "Name of the event"},
				{Name: "data", Type: rpc.ParamObject, Description: "Event payload", Optional: true},
			},
			Handler: f.post,
		},
		{
			Name:        "eventPoll",
			Description: "Returns and removes the oldest buffered events.",
			Params: []rpc.Parameter{
				{Name: "number_of_events", Type: rpc.ParamInteger, Optional: true},
			},
			Handler: f.poll,
		},
		{
			Name:        "eventClearBuffer",
			Description: "Clears all events from the event buffer.",
			Handler:     f.clearBuffer,
		},
	}
}

func (f *EventFacade) post(ctx context.Context, args map[string]interface{}) (interface{}, error) {
	name, err := cast.ToStringE(args["name"])
	if err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.buffer = append(f.buffer, map[string]interface{}{"name": name, "data": args["data"]})
	return nil, nil
}

func (f *EventFacade) poll(ctx context.Context, args map[string]interface{}) (interface{}, error) {
	n := 1
	if raw, ok := args["number_of_events"]; ok {
		parsed, err := cast.ToIntE(raw)
		if err != nil {
			return nil, err
		}
		n = parsed
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if n > len(f.buffer) {
		n = len(f.buffer)
	}
	out := make([]map[string]interface{}, n)
	copy(out, f.buffer[:n])
	f.buffer = f.buffer[n:]
	return out, nil
}

func (f *EventFacade) clearBuffer(ctx context.Context, args map[string]interface{}) (interface{}, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.buffer = nil
	return nil, nil
}
