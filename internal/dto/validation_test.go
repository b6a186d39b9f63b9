package dto

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newValidator() *validator.Validate {
	v := validator.New()
	v.SetTagName("binding")
	registerRules(v)
	return v
}

func TestIsStrongPassword(t *testing.T) {
	strong := []string{"Passw0rd!", "Passw0rdd", "Password!", "aB3"}
	weak := []string{"password1", "PASSWORD1", "Password", "Pass_word", ""}

	for _, p := range strong {
		assert.True(t, IsStrongPassword(p), p)
	}
	for _, p := range weak {
		assert.False(t, IsStrongPassword(p), p)
	}
}

func TestAuthCredentialsRequest_Rules(t *testing.T) {
	v := newValidator()

	assert.NoError(t, v.Struct(AuthCredentialsRequest{Username: "alice", Password: "Passw0rd!"}))

	cases := map[string]AuthCredentialsRequest{
		"short username": {Username: "abc", Password: "Passw0rd!"},
		"long username":  {Username: "abcdefghijklmnopqrstu", Password: "Passw0rd!"},
		"short password": {Username: "alice", Password: "Pw0rd!"},
		"long password":  {Username: "alice", Password: "Passw0rd!Passw0rd!Passw0rd!Passw0"},
		"weak password":  {Username: "alice", Password: "password1"},
		"missing fields": {},
	}
	for name, req := range cases {
		assert.Error(t, v.Struct(req), name)
	}
}

func TestStatusRules(t *testing.T) {
	v := newValidator()

	assert.NoError(t, v.Struct(UpdateTaskStatusRequest{Status: "IN_PROGRESS"}))
	assert.Error(t, v.Struct(UpdateTaskStatusRequest{Status: "in_progress"}))
	assert.Error(t, v.Struct(UpdateTaskStatusRequest{}))

	assert.NoError(t, v.Struct(GetTasksFilterRequest{}))
	assert.NoError(t, v.Struct(GetTasksFilterRequest{Status: "DONE", Search: "milk"}))
	assert.Error(t, v.Struct(GetTasksFilterRequest{Status: "ARCHIVED"}))
}

func TestDescribeValidationError(t *testing.T) {
	v := newValidator()

	err := v.Struct(AuthCredentialsRequest{Username: "abc", Password: "password1"})
	require.Error(t, err)

	details := DescribeValidationError(err)
	require.Len(t, details, 2)
	assert.Equal(t, FieldError{Field: "Username", Message: "must be at least 4 characters"}, details[0])
	assert.Equal(t, FieldError{Field: "Password", Message: "password is too weak"}, details[1])

	assert.Nil(t, DescribeValidationError(assert.AnError))
}
