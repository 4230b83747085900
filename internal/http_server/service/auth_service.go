// Package service
package service

import (
	"errors"
	"fmt"
	"github.com/half-nothing/airline-staff-portal/internal/interfaces/log"
	"github.com/half-nothing/airline-staff-portal/internal/interfaces/operation"
	. "github.com/half-nothing/airline-staff-portal/internal/interfaces/service"
	"strings"
)

type AuthService struct {
	logger         log.LoggerInterface
	validator      *FieldValidator
	staffOperation operation.StaffOperationInterface
}

func NewAuthService(logger log.LoggerInterface, validator *FieldValidator, staffOperation operation.StaffOperationInterface) *AuthService {
	return &AuthService{
		logger:         logger,
		validator:      validator,
		staffOperation: staffOperation,
	}
}

var (
	ErrUsernameOrPassword = ViewStatus{StatusName: "WRONG_USERNAME_OR_PASSWORD", Description: "Invalid username or password.", HttpCode: BadRequest}
	ErrUnknownRole        = ViewStatus{StatusName: "UNKNOWN_ROLE", Description: "Please choose staff, admin or operator.", HttpCode: BadRequest}
	ErrRoleNotGranted     = ViewStatus{StatusName: "ROLE_NOT_GRANTED", Description: "You are not permitted to sign in with that role.", HttpCode: PermissionDenied}
	SuccessLogin          = ViewStatus{StatusName: "LOGIN_SUCCESS", Description: "", HttpCode: SeeOther}
	SuccessLogout         = ViewStatus{StatusName: "LOGOUT_SUCCESS", Description: "You have been logged out.", HttpCode: SeeOther}
)

func (authService *AuthService) loginFailed(username string, status *ViewStatus, messages ...string) *ViewResponse[ResponseLogin] {
	if len(messages) == 0 {
		messages = []string{status.Description}
	}
	return NewViewResponse(status, "login.html", &ResponseLogin{Username: username}, messages...)
}

// Login checks the password and, for admin and operator, the matching permission row.
// Names are left out of the identity, the dashboard fills them in on first visit.
func (authService *AuthService) Login(req *RequestLogin) *ViewResponse[ResponseLogin] {
	form := &loginForm{Username: strings.TrimSpace(req.Username), Password: req.Password}
	if messages := authService.validator.Check(form); messages != nil {
		return authService.loginFailed(form.Username, &ErrIllegalParam, messages...)
	}

	role := operation.RoleStaff
	if req.Role != "" {
		var ok bool
		if role, ok = operation.ParseRole(strings.ToLower(strings.TrimSpace(req.Role))); !ok {
			return authService.loginFailed(form.Username, &ErrUnknownRole)
		}
	}

	staff, err := authService.staffOperation.GetStaffByUsername(form.Username)
	if errors.Is(err, operation.ErrStaffNotFound) {
		return authService.loginFailed(form.Username, &ErrUsernameOrPassword)
	}
	if err != nil {
		authService.logger.ErrorF("Loading staff %s failed: %v", form.Username, err)
		return NewErrorResponse[ResponseLogin](&ErrDatabaseFail)
	}
	if !authService.staffOperation.VerifyStaffPassword(staff, form.Password) {
		authService.logger.WarnF("Wrong password for staff %s", form.Username)
		return authService.loginFailed(form.Username, &ErrUsernameOrPassword)
	}

	if permission := role.RequiredPermission(); permission != "" {
		granted, err := authService.staffOperation.HasPermission(staff.Username, permission)
		if err != nil {
			authService.logger.ErrorF("Loading permissions of %s failed: %v", staff.Username, err)
			return NewErrorResponse[ResponseLogin](&ErrDatabaseFail)
		}
		if !granted {
			return authService.loginFailed(form.Username, &ErrRoleNotGranted, fmt.Sprintf("You do not have %s permission.", permission))
		}
	}

	authService.logger.InfoF("Staff %s signed in as %s", staff.Username, role)
	res := NewRedirectResponse[ResponseLogin](&SuccessLogin, LandingPage(role), fmt.Sprintf("Logged in as %s.", role))
	res.Data = &ResponseLogin{Username: staff.Username, Identity: &Identity{Username: staff.Username, Role: role}}
	return res
}

func (authService *AuthService) LoginPage(req *RequestLoginPage) *ViewResponse[ResponseLoginPage] {
	if req.LoggedIn() {
		return NewRedirectResponse[ResponseLoginPage](&SuccessRender, LandingPage(req.Role))
	}
	return NewViewResponse(&SuccessRender, "login.html", &ResponseLoginPage{})
}

func (authService *AuthService) Logout(req *RequestLogout) *ViewResponse[ResponseLogout] {
	if req.LoggedIn() {
		authService.logger.InfoF("Staff %s signed out", req.Username)
	}
	return NewRedirectResponse[ResponseLogout](&SuccessLogout, LoginPath)
}
