package platform

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func newRequest(t *testing.T, headers map[string]string) *http.Request {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for name, value := range headers {
		req.Header.Set(name, value)
	}
	return req
}

func TestIsMobileApp(t *testing.T) {
	cases := []struct {
		name    string
		headers map[string]string
		want    bool
	}{
		{name: "platform header lowercase", headers: map[string]string{"X-Platform": "mobile"}, want: true},
		{name: "platform header uppercase", headers: map[string]string{"X-Platform": "MOBILE"}, want: true},
		{name: "platform header mixed case", headers: map[string]string{"X-Platform": "MoBiLe"}, want: true},
		{name: "client type fallback", headers: map[string]string{"X-Client-Type": "MOBILE"}, want: true},
		{name: "no headers", headers: nil, want: false},
		{name: "web client", headers: map[string]string{"X-Platform": "web"}, want: false},
		{name: "desktop client", headers: map[string]string{"X-Client-Type": "desktop"}, want: false},
		{name: "empty platform falls back", headers: map[string]string{"X-Platform": "", "X-Client-Type": "mobile"}, want: true},
		{name: "platform wins over client type", headers: map[string]string{"X-Platform": "web", "X-Client-Type": "mobile"}, want: false},
		{name: "padded value does not match", headers: map[string]string{"X-Platform": " mobile "}, want: false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, IsMobileApp(newRequest(t, tc.headers)))
		})
	}
}

func TestIsMobileApp_RepeatedHeaderUsesFirstValue(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Add("X-Platform", "web")
	req.Header.Add("X-Platform", "mobile")
	require.False(t, IsMobileApp(req))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Add("X-Platform", "mobile")
	req.Header.Add("X-Platform", "web")
	require.True(t, IsMobileApp(req))
}

func TestDetect(t *testing.T) {
	require.Equal(t, Mobile, Detect(newRequest(t, map[string]string{"X-Platform": "Mobile"})))
	require.Equal(t, Web, Detect(newRequest(t, map[string]string{"X-Platform": "desktop"})))
	require.Equal(t, Web, Detect(newRequest(t, nil)))
}
