package registry

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	. "github.com/remote-scripting-protocol/go-rsp/src/facades/base"
	. "github.com/remote-scripting-protocol/go-rsp/src/rpc"

	"github.com/remote-scripting-protocol/go-rsp/src/facades"
)

type fakeFacade struct {
	BaseFacade
	table []MethodDescriptor
}

func (f *fakeFacade) MethodDescriptors() []MethodDescriptor {
	return f.table
}

func newFakeFacade(name string, minLevel int, table ...MethodDescriptor) *fakeFacade {
	return &fakeFacade{
		BaseFacade: BaseFacade{FacadeName: name, MinLevel: minLevel},
		table:      table,
	}
}

func nop(ctx context.Context, args map[string]interface{}) (interface{}, error) {
	return nil, nil
}

func TestNew_RoundTripAndSorted(t *testing.T) {
	reg, err := New(19, []Facade{
		newFakeFacade("Zeta", 0,
			MethodDescriptor{Name: "zebraWalk", Handler: nop},
			MethodDescriptor{Name: "alphaRun", Handler: nop},
		),
		newFakeFacade("Alpha", 0,
			MethodDescriptor{Name: "middleJump", Handler: nop},
		),
	})
	require.NoError(t, err)

	all := reg.CollectMethodDescriptors()
	require.Len(t, all, 3)
	for i := 1; i < len(all); i++ {
		assert.LessOrEqual(t, all[i-1].Name, all[i].Name, "index must be sorted by name")
	}

	for _, d := range all {
		got := reg.GetMethodDescriptor(d.Name)
		require.NotNil(t, got)
		assert.Equal(t, d.Name, got.Name)
		assert.Equal(t, d.FacadeName, got.FacadeName)
		assert.Equal(t, d.Metadata, got.Metadata)
	}
}

func TestGetMethodDescriptor_UnknownName(t *testing.T) {
	reg, err := New(19, []Facade{
		newFakeFacade("Alpha", 0, MethodDescriptor{Name: "ping", Handler: nop}),
	})
	require.NoError(t, err)
	assert.Nil(t, reg.GetMethodDescriptor("does-not-exist"))
}

func TestCollectSupportedMethodDescriptors_FiltersExactly(t *testing.T) {
	reg, err := New(10, []Facade{
		newFakeFacade("Alpha", 0,
			MethodDescriptor{Name: "plain", Handler: nop},
			MethodDescriptor{Name: "old", Metadata: Metadata{Deprecated: true}, Handler: nop},
			MethodDescriptor{Name: "tooNew", Metadata: Metadata{MinSdkLevel: 11}, Handler: nop},
			MethodDescriptor{Name: "exactLevel", Metadata: Metadata{MinSdkLevel: 10}, Handler: nop},
		),
	})
	require.NoError(t, err)

	var names []string
	for _, d := range reg.CollectSupportedMethodDescriptors() {
		names = append(names, d.Name)
	}
	assert.Equal(t, []string{"exactLevel", "plain"}, names)

	// Filtered methods stay name-addressable.
	assert.NotNil(t, reg.GetMethodDescriptor("old"))
	assert.NotNil(t, reg.GetMethodDescriptor("tooNew"))
}

func TestNew_DuplicateStartEventBinding(t *testing.T) {
	reg, err := New(19, []Facade{
		newFakeFacade("Alpha", 0,
			MethodDescriptor{Name: "aStart", Metadata: Metadata{StartEventName: "sensor"}, Handler: nop},
		),
		newFakeFacade("Beta", 0,
			MethodDescriptor{Name: "bStart", Metadata: Metadata{StartEventName: "sensor"}, Handler: nop},
		),
	})
	require.Error(t, err)
	assert.Nil(t, reg)

	var dup *DuplicateEventBindingError
	require.True(t, errors.As(err, &dup))
	assert.Equal(t, "sensor", dup.EventName)
	assert.Equal(t, "start", dup.Kind)
}

func TestNew_DuplicateStopEventBinding(t *testing.T) {
	reg, err := New(19, []Facade{
		newFakeFacade("Alpha", 0,
			MethodDescriptor{Name: "aStop", Metadata: Metadata{StopEventName: "sensor"}, Handler: nop},
			MethodDescriptor{Name: "bStop", Metadata: Metadata{StopEventName: "sensor"}, Handler: nop},
		),
	})
	require.Error(t, err)
	assert.Nil(t, reg)

	var dup *DuplicateEventBindingError
	require.True(t, errors.As(err, &dup))
	assert.Equal(t, "stop", dup.Kind)
}

func TestNew_CrossFacadeNameCollisionFailsFast(t *testing.T) {
	reg, err := New(19, []Facade{
		newFakeFacade("Alpha", 0, MethodDescriptor{Name: "ping", Handler: nop}),
		newFakeFacade("Beta", 0, MethodDescriptor{Name: "ping", Handler: nop}),
	})
	require.Error(t, err)
	assert.Nil(t, reg)

	var dup *DuplicateMethodError
	require.True(t, errors.As(err, &dup))
	assert.Equal(t, "ping", dup.Name)
	assert.Equal(t, "Alpha", dup.OtherFacade)
	assert.Equal(t, "Beta", dup.Facade)
}

func TestNew_EventIndexes(t *testing.T) {
	reg, err := New(19, []Facade{
		newFakeFacade("Alpha", 0,
			MethodDescriptor{Name: "startFoo", Metadata: Metadata{StartEventName: "foo"}, Handler: nop},
			MethodDescriptor{Name: "stopFoo", Metadata: Metadata{StopEventName: "foo"}, Handler: nop},
			MethodDescriptor{Name: "plain", Handler: nop},
		),
	})
	require.NoError(t, err)

	starts := reg.CollectStartEventMethodDescriptors()
	require.Len(t, starts, 1)
	assert.Equal(t, "startFoo", starts["foo"].Name)

	stops := reg.CollectStopEventMethodDescriptors()
	require.Len(t, stops, 1)
	assert.Equal(t, "stopFoo", stops["foo"].Name)
}

func TestNew_ProviderLevelGating(t *testing.T) {
	candidates := []Facade{
		newFakeFacade("Base", 0, MethodDescriptor{Name: "baseOp", Handler: nop}),
		newFakeFacade("Gated", 19, MethodDescriptor{Name: "gatedOp", Handler: nop}),
	}

	high, err := New(19, candidates)
	require.NoError(t, err)
	assert.NotNil(t, high.GetMethodDescriptor("gatedOp"))
	assert.Len(t, high.Facades(), 2)

	low, err := New(4, candidates)
	require.NoError(t, err)
	// Excluded entirely, not just filtered from the supported view.
	assert.Nil(t, low.GetMethodDescriptor("gatedOp"))
	assert.NotNil(t, low.GetMethodDescriptor("baseOp"))
	assert.Len(t, low.Facades(), 1)
}

func TestNew_DefaultRosterLevel19(t *testing.T) {
	reg, err := New(19, facades.DefaultSet(19))
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}

	// Facades gated at 4, 5, 7, 8 and 19 are all present.
	for _, name := range []string{
		"ttsSpeak",
		"bluetoothGetLocalName",
		"startTrackingSignalStrengths",
		"webcamStart",
		"bleStartScan",
	} {
		if reg.GetMethodDescriptor(name) == nil {
			t.Fatalf("expected %s in index at level 19", name)
		}
	}
}

func TestNew_DefaultRosterLevel4(t *testing.T) {
	reg, err := New(4, facades.DefaultSet(4))
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}

	// Level-gated facades are absent from the index entirely.
	for _, name := range []string{
		"bluetoothGetLocalName",
		"startTrackingSignalStrengths",
		"webcamStart",
		"bleStartScan",
	} {
		if reg.GetMethodDescriptor(name) != nil {
			t.Fatalf("did not expect %s in index at level 4", name)
		}
	}

	// ttsSpeak comes from the level-4 speech facade.
	d := reg.GetMethodDescriptor("ttsSpeak")
	if d == nil || d.FacadeName != "TextToSpeechFacade" {
		t.Fatalf("expected ttsSpeak from TextToSpeechFacade, got %+v", d)
	}

	// batteryGetHealth needs level 5 but its facade is unconditional: it is
	// indexed yet missing from the supported view.
	if reg.GetMethodDescriptor("batteryGetHealth") == nil {
		t.Fatal("expected batteryGetHealth to stay name-addressable")
	}
	for _, s := range reg.CollectSupportedMethodDescriptors() {
		if s.Name == "batteryGetHealth" {
			t.Fatal("batteryGetHealth must not be in the supported view at level 4")
		}
	}
}

func TestNew_Idempotence(t *testing.T) {
	build := func() *Registry {
		reg, err := New(19, facades.DefaultSet(19))
		require.NoError(t, err)
		return reg
	}
	a, b := build(), build()

	da, db := a.CollectMethodDescriptors(), b.CollectMethodDescriptors()
	require.Equal(t, len(da), len(db))
	for i := range da {
		assert.Equal(t, da[i].Name, db[i].Name)
		assert.Equal(t, da[i].FacadeName, db[i].FacadeName)
		assert.Equal(t, da[i].Metadata, db[i].Metadata)
	}

	// Builds are distinct instances with distinct fingerprints.
	assert.NotEqual(t, a.BuildID(), b.BuildID())
}
