package httperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStatus(t *testing.T) {
	cases := []struct {
		name string
		msg  string
		want int
	}{
		{name: "token beats invalid", msg: "Invalid token", want: http.StatusUnauthorized},
		{name: "expired token", msg: "token has expired", want: http.StatusUnauthorized},
		{name: "not authenticated", msg: "not authenticated", want: http.StatusUnauthorized},
		{name: "user not found beats not found", msg: "user not found", want: http.StatusUnauthorized},
		{name: "account not found", msg: "Account not found", want: http.StatusNotFound},
		{name: "resource not found", msg: "rule not found: r-1", want: http.StatusNotFound},
		{name: "required field", msg: "Name is required", want: http.StatusBadRequest},
		{name: "invalid input", msg: "invalid account id: \"abc\"", want: http.StatusBadRequest},
		{name: "unrecognized", msg: "Unexpected failure", want: http.StatusInternalServerError},
		{name: "empty message", msg: "", want: http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, Status(errors.New(tc.msg)))
		})
	}
}

func TestStatus_NilError(t *testing.T) {
	require.Equal(t, http.StatusOK, Status(nil))
}

func TestStatus_WrappedErrorsKeepClassification(t *testing.T) {
	base := errors.New("account not found")
	wrapped := fmt.Errorf("loading profile: %w", base)
	require.Equal(t, http.StatusNotFound, Status(wrapped))
}
