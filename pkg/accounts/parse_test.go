package accounts

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseAccountID(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  int64
	}{
		{name: "plain digits", input: "123", want: 123},
		{name: "trailing garbage ignored", input: "42abc", want: 42},
		{name: "leading whitespace", input: "  17", want: 17},
		{name: "tab and newline", input: "\t\n99", want: 99},
		{name: "negative prefix", input: "-5xyz", want: -5},
		{name: "explicit plus sign", input: "+8", want: 8},
		{name: "zero", input: "0", want: 0},
		{name: "stops at decimal point", input: "12.9", want: 12},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseAccountID(tc.input)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestParseAccountID_Invalid(t *testing.T) {
	cases := []struct {
		name  string
		input string
	}{
		{name: "no digit prefix", input: "abc"},
		{name: "empty string", input: ""},
		{name: "only whitespace", input: "   "},
		{name: "bare sign", input: "-"},
		{name: "sign then letters", input: "+id42"},
		{name: "overflows int64", input: "99999999999999999999"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseAccountID(tc.input)
			require.ErrorIs(t, err, ErrInvalidAccountID)
		})
	}
}

func TestDirectory_Get(t *testing.T) {
	ctx := context.Background()
	dir := NewDirectory([]Account{
		{ID: 42, OwnerID: "u1", Name: "checking"},
		{ID: 123, OwnerID: "u2", Name: "savings"},
	})

	acc, err := dir.Get(ctx, 42)
	require.NoError(t, err)
	require.Equal(t, "u1", acc.OwnerID)

	_, err = dir.Get(ctx, 999)
	require.ErrorIs(t, err, ErrAccountNotFound)
}
