package base

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/remote-scripting-protocol/go-rsp/src/rpc"
)

type tableFacade struct {
	BaseFacade
	table []MethodDescriptor
}

func (f *tableFacade) MethodDescriptors() []MethodDescriptor {
	return f.table
}

func nop(ctx context.Context, args map[string]interface{}) (interface{}, error) {
	return nil, nil
}

func TestCollectMethodDescriptors_StampsOwner(t *testing.T) {
	f := &tableFacade{
		BaseFacade: BaseFacade{FacadeName: "Alpha"},
		table: []MethodDescriptor{
			{Name: "ping", Handler: nop},
			{Name: "pong", FacadeName: "Lies", Handler: nop},
		},
	}
	descriptors, err := CollectMethodDescriptors(f)
	require.NoError(t, err)
	require.Len(t, descriptors, 2)
	for _, d := range descriptors {
		assert.Equal(t, "Alpha", d.FacadeName)
	}
	// The facade's own table is left untouched.
	assert.Equal(t, "Lies", f.table[1].FacadeName)
}

func TestCollectMethodDescriptors_DuplicateName(t *testing.T) {
	f := &tableFacade{
		BaseFacade: BaseFacade{FacadeName: "Alpha"},
		table: []MethodDescriptor{
			{Name: "ping", Handler: nop},
			{Name: "ping", Handler: nop},
		},
	}
	_, err := CollectMethodDescriptors(f)
	require.Error(t, err)

	var dup *DuplicateMethodError
	require.True(t, errors.As(err, &dup))
	assert.Equal(t, "ping", dup.Name)
	assert.Equal(t, "Alpha", dup.Facade)
	assert.Empty(t, dup.OtherFacade)
}

func TestCollectMethodDescriptors_Malformed(t *testing.T) {
	for name, table := range map[string][]MethodDescriptor{
		"empty name":  {{Name: "", Handler: nop}},
		"nil handler": {{Name: "ping"}},
	} {
		f := &tableFacade{BaseFacade: BaseFacade{FacadeName: "Alpha"}, table: table}
		_, err := CollectMethodDescriptors(f)
		if err == nil {
			t.Fatalf("%s: expected error", name)
		}
		var malformed *MalformedDescriptorError
		if !errors.As(err, &malformed) {
			t.Fatalf("%s: expected MalformedDescriptorError, got %v", name, err)
		}
	}
}
