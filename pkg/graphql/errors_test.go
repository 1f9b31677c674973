package graphql

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsDuplicateInvitation(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"already invited", newError("InviteMember", errors.New("graphql: This email was already invited")), true},
		{"already a member", newError("InviteMember", errors.New("graphql: user is Already A Member")), true},
		{"duplicate key", errors.New("duplicate invitation"), true},
		{"other", newError("InviteMember", errors.New("graphql: role not found")), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsDuplicateInvitation(tt.err))
		})
	}
}

func TestMessage(t *testing.T) {
	err := newError("CreateISPPackage", errors.New("graphql: name must be unique"))
	assert.Equal(t, "name must be unique", Message(err))
	assert.Equal(t, "CreateISPPackage: name must be unique", err.Error())
	assert.Equal(t, "boom", Message(errors.New("boom")))
	assert.Empty(t, Message(nil))
}

func TestResult(t *testing.T) {
	ok := Success(2)
	assert.True(t, ok.OK())
	assert.Equal(t, 2, ok.Data())

	failed := Failure[int](errors.New("x"))
	assert.False(t, failed.OK())
	v, err := failed.Unwrap()
	assert.Zero(t, v)
	assert.EqualError(t, err, "x")

	doubled := Map(ok, func(n int) int { return n * 2 })
	assert.Equal(t, 4, doubled.Data())
	assert.False(t, Map(failed, func(n int) int { return n * 2 }).OK())
}
