package session_test

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jackscave/service-desk/internal/domain"
	"github.com/jackscave/service-desk/internal/session"
)

func TestTokenRoundTrip(t *testing.T) {
	tm := session.NewTokenManager("secret", time.Hour)
	token, exp, err := tm.Issue(domain.RoleSupport)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, time.Minute)

	role, err := tm.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleSupport, role)
}

func TestIssue_UnknownRole(t *testing.T) {
	tm := session.NewTokenManager("secret", time.Hour)
	_, _, err := tm.Issue("admin")
	require.ErrorIs(t, err, session.ErrUnknownRole)
}

func TestParse_RejectsForeignSignature(t *testing.T) {
	token, _, err := session.NewTokenManager("other", time.Hour).Issue(domain.RoleSupport)
	require.NoError(t, err)

	_, err = session.NewTokenManager("secret", time.Hour).Parse(token)
	require.Error(t, err)
}

func TestMiddleware_DefaultsToUserRole(t *testing.T) {
	tm := session.NewTokenManager("secret", time.Hour)
	support, _, err := tm.Issue(domain.RoleSupport)
	require.NoError(t, err)

	app := fiber.New()
	app.Use(session.NewMiddleware(tm, nil).Handle)
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString(string(session.RoleFromContext(c)))
	})

	cases := map[string]struct {
		header string
		want   domain.Role
	}{
		"no header":     {header: "", want: domain.RoleUser},
		"garbage token": {header: "Bearer not-a-token", want: domain.RoleUser},
		"wrong scheme":  {header: "Basic " + support, want: domain.RoleUser},
		"support token": {header: "Bearer " + support, want: domain.RoleSupport},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(fiber.MethodGet, "/", nil)
			if tc.header != "" {
				req.Header.Set(fiber.HeaderAuthorization, tc.header)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			defer resp.Body.Close()
			body := make([]byte, 32)
			n, _ := resp.Body.Read(body)
			assert.Equal(t, string(tc.want), string(body[:n]))
		})
	}
}
