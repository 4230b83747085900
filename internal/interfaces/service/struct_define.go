// Package service
package service

import (
	"errors"
	"github.com/half-nothing/airline-staff-portal/internal/interfaces/log"
	"github.com/half-nothing/airline-staff-portal/internal/interfaces/operation"
	"github.com/labstack/echo/v4"
	"strings"
)

type HttpCode int

const (
	Unsatisfied         HttpCode = 0
	Ok                  HttpCode = 200
	SeeOther            HttpCode = 303
	BadRequest          HttpCode = 400
	PermissionDenied    HttpCode = 403
	NotFound            HttpCode = 404
	TooManyRequests     HttpCode = 429
	ServerInternalError HttpCode = 500
)

func (hc HttpCode) Code() int {
	return int(hc)
}

// ViewStatus StatusName is only written to logs, Description is what staff read.
type ViewStatus struct {
	StatusName  string
	Description string
	HttpCode    HttpCode
}

// Identity is the session-held view of the signed in staff member.
type Identity struct {
	Username  string
	Role      operation.Role
	FirstName string
	LastName  string
}

func (identity *Identity) LoggedIn() bool {
	return identity != nil && identity.Username != "" && identity.Role != operation.RoleAnonymous
}

func (identity *Identity) HasName() bool {
	return identity.FirstName != "" || identity.LastName != ""
}

func (identity *Identity) FullName() string {
	if !identity.HasName() {
		return identity.Username
	}
	return strings.TrimSpace(identity.FirstName + " " + identity.LastName)
}

type SessionInterface interface {
	Identity() *Identity
	Login(identity *Identity)
	Logout()
	SetNames(firstName, lastName string)
	AddFlash(message string)
	PopFlashes() []string
	Save(ctx echo.Context) error
}

// PageContext is handed to every template.
type PageContext[T any] struct {
	Identity *Identity
	Flashes  []string
	Messages []string
	Data     *T
}

type ViewResponse[T any] struct {
	HttpCode   int
	Status     *ViewStatus
	Template   string
	RedirectTo string
	Messages   []string
	Data       *T
	// Logout drops the session identity before redirecting, pending flashes are kept.
	Logout bool
}

// Response redirects with the messages flashed when RedirectTo is set, renders Template when
// there is one, and otherwise hands the status to the echo error handler.
func (res *ViewResponse[T]) Response(ctx echo.Context, session SessionInterface) error {
	if res.RedirectTo != "" {
		if res.Logout {
			session.Logout()
		}
		for _, message := range res.Messages {
			session.AddFlash(message)
		}
		if err := session.Save(ctx); err != nil {
			return err
		}
		return ctx.Redirect(SeeOther.Code(), res.RedirectTo)
	}
	if res.Template == "" {
		return echo.NewHTTPError(res.HttpCode, res.Status.Description)
	}
	page := &PageContext[T]{
		Identity: session.Identity(),
		Flashes:  session.PopFlashes(),
		Messages: res.Messages,
		Data:     res.Data,
	}
	if err := session.Save(ctx); err != nil {
		return err
	}
	return ctx.Render(res.HttpCode, res.Template, page)
}

var (
	ErrIllegalParam  = ViewStatus{"PARAM_ERROR", "Invalid request parameters.", BadRequest}
	ErrNotLoggedIn   = ViewStatus{"NOT_LOGGED_IN", "Please log in as airline staff.", SeeOther}
	ErrNoPermission  = ViewStatus{"NO_PERMISSION", "You do not have permission to access that page.", SeeOther}
	ErrStaffNotFound = ViewStatus{"STAFF_NOT_FOUND", "Could not find airline for this staff.", SeeOther}
	ErrDatabaseFail  = ViewStatus{"DATABASE_ERROR", "Internal server error, please try again later.", ServerInternalError}
	ErrRateLimited   = ViewStatus{"RATE_LIMIT_EXCEEDED", "Too many requests, please try again later.", TooManyRequests}
	SuccessRender    = ViewStatus{"OK", "", Ok}
)

const LoginPath = "/login"

func NewViewResponse[T any](codeStatus *ViewStatus, template string, data *T, messages ...string) *ViewResponse[T] {
	httpCode := codeStatus.HttpCode
	if httpCode == Unsatisfied {
		httpCode = Ok
	}
	return &ViewResponse[T]{
		HttpCode: httpCode.Code(),
		Status:   codeStatus,
		Template: template,
		Messages: messages,
		Data:     data,
	}
}

// NewRedirectResponse flashes the status description, plus any extra messages, at the target page.
func NewRedirectResponse[T any](codeStatus *ViewStatus, redirectTo string, messages ...string) *ViewResponse[T] {
	if codeStatus.Description != "" {
		messages = append([]string{codeStatus.Description}, messages...)
	}
	return &ViewResponse[T]{
		HttpCode:   SeeOther.Code(),
		Status:     codeStatus,
		RedirectTo: redirectTo,
		Messages:   messages,
	}
}

func NewErrorResponse[T any](codeStatus *ViewStatus) *ViewResponse[T] {
	httpCode := codeStatus.HttpCode
	if httpCode == Unsatisfied {
		httpCode = ServerInternalError
	}
	return &ViewResponse[T]{HttpCode: httpCode.Code(), Status: codeStatus}
}

// CallDBFuncAndCheckError runs a read and maps its error onto a view response.
// A missing staff record signs the user out and sends them to the login page, anything else is a server error.
func CallDBFuncAndCheckError[R any, T any](logger log.LoggerInterface, fc func() (*R, error)) (*R, *ViewResponse[T]) {
	result, err := fc()
	switch {
	case errors.Is(err, operation.ErrStaffNotFound):
		res := NewRedirectResponse[T](&ErrStaffNotFound, LoginPath)
		res.Logout = true
		return nil, res
	case err != nil:
		logger.ErrorF("Error in DB function: %v", err)
		return nil, NewErrorResponse[T](&ErrDatabaseFail)
	default:
		return result, nil
	}
}

// MutationObserver counts mutation outcomes per action.
type MutationObserver interface {
	ObserveMutation(action string, err error)
}

const (
	DashboardPath    = "/staff/dashboard"
	AdminHomePath    = "/staff/admin_home"
	OperatorHomePath = "/staff/operator_home"
)

// LandingPage is where a role is sent after login or after being turned away from a page.
func LandingPage(role operation.Role) string {
	switch role {
	case operation.RoleStaff:
		return DashboardPath
	case operation.RoleAdmin:
		return AdminHomePath
	case operation.RoleOperator:
		return OperatorHomePath
	default:
		return LoginPath
	}
}
