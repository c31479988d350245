package rpc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSupportedAt(t *testing.T) {
	cases := []struct {
		name  string
		d     MethodDescriptor
		level int
		want  bool
	}{
		{"plain", MethodDescriptor{Name: "a"}, 4, true},
		{"deprecated", MethodDescriptor{Name: "a", Metadata: Metadata{Deprecated: true}}, 19, false},
		{"below min", MethodDescriptor{Name: "a", Metadata: Metadata{MinSdkLevel: 8}}, 7, false},
		{"at min", MethodDescriptor{Name: "a", Metadata: Metadata{MinSdkLevel: 8}}, 8, true},
		{"above min", MethodDescriptor{Name: "a", Metadata: Metadata{MinSdkLevel: 8}}, 19, true},
		{"deprecated wins", MethodDescriptor{Name: "a", Metadata: Metadata{Deprecated: true, MinSdkLevel: 1}}, 19, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.d.SupportedAt(tc.level), tc.name)
	}
}

func TestErrorMessages(t *testing.T) {
	assert.Equal(t,
		`method "ping" declared by both Alpha and Beta`,
		(&DuplicateMethodError{Name: "ping", Facade: "Beta", OtherFacade: "Alpha"}).Error())
	assert.Equal(t,
		`method "ping" declared twice by Alpha`,
		(&DuplicateMethodError{Name: "ping", Facade: "Alpha"}).Error())
	assert.Equal(t,
		`duplicate start event binding for "battery"`,
		(&DuplicateEventBindingError{EventName: "battery", Kind: "start"}).Error())
	assert.Equal(t,
		"malformed method descriptor in Alpha: empty method name",
		(&MalformedDescriptorError{Facade: "Alpha", Reason: "empty method name"}).Error())
}
