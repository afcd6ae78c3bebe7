package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseID(t *testing.T) {
	tests := []struct {
		name    string
		flag    optionalInt
		args    []string
		want    int
		wantErr string
	}{
		{name: "flag", flag: optionalInt{value: 3, set: true}, want: 3},
		{name: "positional", args: []string{"12"}, want: 12},
		{name: "positional with spaces", args: []string{" 7 "}, want: 7},
		{name: "missing", wantErr: ErrIDRequired.Error()},
		{name: "not a number", args: []string{"abc"}, wantErr: "invalid id: abc"},
		{name: "flag and positional", flag: optionalInt{value: 3, set: true}, args: []string{"4"}, wantErr: "unexpected argument: 4"},
		{name: "two positionals", args: []string{"4", "5"}, wantErr: "unexpected argument: 5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseID(tt.flag, tt.args)
			if tt.wantErr != "" {
				require.EqualError(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOptionalFlags(t *testing.T) {
	var s optionalString
	assert.Nil(t, s.Ptr())
	require.NoError(t, s.Set(""))
	require.NotNil(t, s.Ptr())
	assert.Equal(t, "", *s.Ptr())

	var n optionalInt
	assert.Equal(t, "", n.String())
	require.EqualError(t, n.Set("x"), "invalid id: x")
	assert.False(t, n.set)
	require.NoError(t, n.Set("42"))
	assert.Equal(t, "42", n.String())
}
