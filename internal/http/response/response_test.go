package response

import (
	"testing"

	"github.com/go-playground/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusOKWithData(t *testing.T) {
	resp := StatusOKWithData(map[string]any{"id": 1})

	assert.Equal(t, StatusOK, resp.Status)
	assert.Empty(t, resp.Error)
	assert.Equal(t, map[string]any{"id": 1}, resp.Data)
}

func TestError(t *testing.T) {
	resp := Error("something went wrong")

	assert.Equal(t, StatusError, resp.Status)
	assert.Equal(t, "something went wrong", resp.Error)
}

func TestValidationError(t *testing.T) {
	type payload struct {
		Email    string `validate:"required,email"`
		Username string `validate:"required,min=3,max=50"`
		Password string `validate:"required,min=6"`
	}

	v := validator.New()

	tests := []struct {
		name  string
		input payload
		want  []string
	}{
		{
			name:  "missing required fields",
			input: payload{},
			want: []string{
				"field Email is a required field",
				"field Username is a required field",
				"field Password is a required field",
			},
		},
		{
			name:  "malformed email",
			input: payload{Email: "nope", Username: "alice", Password: "pw1secret"},
			want:  []string{"field Email must be a valid email address"},
		},
		{
			name:  "too short username",
			input: payload{Email: "a@x.com", Username: "ab", Password: "pw1secret"},
			want:  []string{"field Username is too short"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Struct(tt.input)
			require.Error(t, err)

			resp := ValidationError(err.(validator.ValidationErrors))
			assert.Equal(t, StatusError, resp.Status)
			for _, msg := range tt.want {
				assert.Contains(t, resp.Error, msg)
			}
		})
	}
}
