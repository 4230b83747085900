package service

import (
	"testing"

	"github.com/half-nothing/airline-staff-portal/internal/interfaces/operation"
	. "github.com/half-nothing/airline-staff-portal/internal/interfaces/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin(t *testing.T) {
	authService := NewAuthService(testLogger, testValidator(), newFakeStaffOperation())
	tests := []struct {
		name       string
		req        *RequestLogin
		redirectTo string
		httpCode   int
		messages   []string
	}{
		{"staff by default", &RequestLogin{Username: "alice", Password: "secret"}, DashboardPath, 303, []string{"Logged in as staff."}},
		{"granted admin", &RequestLogin{Username: "alice", Password: "secret", Role: "Admin"}, AdminHomePath, 303, []string{"Logged in as admin."}},
		{"operator not granted", &RequestLogin{Username: "alice", Password: "secret", Role: "operator"}, "", 403, []string{"You do not have Operator permission."}},
		{"wrong password", &RequestLogin{Username: "alice", Password: "nope"}, "", 400, []string{ErrUsernameOrPassword.Description}},
		{"unknown user", &RequestLogin{Username: "bob", Password: "secret"}, "", 400, []string{ErrUsernameOrPassword.Description}},
		{"unknown role", &RequestLogin{Username: "alice", Password: "secret", Role: "pilot"}, "", 400, []string{ErrUnknownRole.Description}},
		{"missing password", &RequestLogin{Username: "alice"}, "", 400, []string{"password is required."}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := authService.Login(tt.req)
			assert.Equal(t, tt.redirectTo, res.RedirectTo)
			assert.Equal(t, tt.httpCode, res.HttpCode)
			assert.Equal(t, tt.messages, res.Messages)
			require.NotNil(t, res.Data)
			if tt.redirectTo != "" {
				require.NotNil(t, res.Data.Identity)
				assert.Equal(t, "alice", res.Data.Identity.Username)
			} else {
				assert.Nil(t, res.Data.Identity)
				assert.Equal(t, "login.html", res.Template)
			}
		})
	}
}

func TestLoginPageRedirectsSignedInStaff(t *testing.T) {
	authService := NewAuthService(testLogger, testValidator(), newFakeStaffOperation())

	res := authService.LoginPage(&RequestLoginPage{Identity: Identity{Username: "alice", Role: operation.RoleOperator}})
	assert.Equal(t, OperatorHomePath, res.RedirectTo)

	res = authService.LoginPage(&RequestLoginPage{})
	assert.Equal(t, "login.html", res.Template)
}

func TestLogout(t *testing.T) {
	authService := NewAuthService(testLogger, testValidator(), newFakeStaffOperation())
	res := authService.Logout(&RequestLogout{Identity: Identity{Username: "alice", Role: operation.RoleStaff}})
	assert.Equal(t, LoginPath, res.RedirectTo)
	assert.Equal(t, []string{SuccessLogout.Description}, res.Messages)
}
