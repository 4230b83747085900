package service

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/half-nothing/airline-staff-portal/internal/base"
	"github.com/half-nothing/airline-staff-portal/internal/interfaces/operation"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memorySession struct {
	identity Identity
	flashes  []string
	saves    int
}

func (s *memorySession) Identity() *Identity { return &s.identity }

func (s *memorySession) Login(identity *Identity) { s.identity = *identity }

func (s *memorySession) Logout() { s.identity = Identity{} }

func (s *memorySession) SetNames(firstName, lastName string) {
	s.identity.FirstName, s.identity.LastName = firstName, lastName
}

func (s *memorySession) AddFlash(message string) { s.flashes = append(s.flashes, message) }

func (s *memorySession) PopFlashes() []string {
	flashes := s.flashes
	s.flashes = nil
	return flashes
}

func (s *memorySession) Save(_ echo.Context) error {
	s.saves++
	return nil
}

type recordingRenderer struct {
	name string
	data interface{}
}

func (r *recordingRenderer) Render(_ io.Writer, name string, data interface{}, _ echo.Context) error {
	r.name = name
	r.data = data
	return nil
}

type pageData struct {
	Title string
}

func newContext() (echo.Context, *httptest.ResponseRecorder, *recordingRenderer) {
	e := echo.New()
	renderer := &recordingRenderer{}
	e.Renderer = renderer
	rec := httptest.NewRecorder()
	return e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec), rec, renderer
}

func TestLandingPage(t *testing.T) {
	assert.Equal(t, DashboardPath, LandingPage(operation.RoleStaff))
	assert.Equal(t, AdminHomePath, LandingPage(operation.RoleAdmin))
	assert.Equal(t, OperatorHomePath, LandingPage(operation.RoleOperator))
	assert.Equal(t, LoginPath, LandingPage(operation.RoleAnonymous))
}

func TestIdentity(t *testing.T) {
	var nobody *Identity
	assert.False(t, nobody.LoggedIn())
	assert.False(t, (&Identity{Username: "alice"}).LoggedIn())

	identity := &Identity{Username: "alice", Role: operation.RoleStaff}
	assert.True(t, identity.LoggedIn())
	assert.Equal(t, "alice", identity.FullName())
	identity.FirstName = "Alice"
	assert.Equal(t, "Alice", identity.FullName())
}

func TestRedirectResponseFlashesMessages(t *testing.T) {
	ctx, rec, _ := newContext()
	session := &memorySession{}

	res := NewRedirectResponse[pageData](&ErrNoPermission, DashboardPath, "extra")
	require.NoError(t, res.Response(ctx, session))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, DashboardPath, rec.Header().Get(echo.HeaderLocation))
	assert.Equal(t, []string{ErrNoPermission.Description, "extra"}, session.flashes)
	assert.Equal(t, 1, session.saves)
}

func TestViewResponseRendersPage(t *testing.T) {
	ctx, rec, renderer := newContext()
	session := &memorySession{identity: Identity{Username: "alice", Role: operation.RoleStaff}, flashes: []string{"earlier"}}

	res := NewViewResponse(&SuccessRender, "dashboard.html", &pageData{Title: "x"}, "now")
	require.NoError(t, res.Response(ctx, session))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "dashboard.html", renderer.name)
	page, ok := renderer.data.(*PageContext[pageData])
	require.True(t, ok)
	assert.Equal(t, []string{"earlier"}, page.Flashes)
	assert.Equal(t, []string{"now"}, page.Messages)
	assert.Equal(t, "alice", page.Identity.Username)
	assert.Empty(t, session.flashes)
}

func TestErrorResponseGoesToErrorHandler(t *testing.T) {
	ctx, _, _ := newContext()
	err := NewErrorResponse[pageData](&ErrDatabaseFail).Response(ctx, &memorySession{})

	var httpErr *echo.HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusInternalServerError, httpErr.Code)
	assert.Equal(t, ErrDatabaseFail.Description, httpErr.Message)
}

func TestCallDBFuncAndCheckError(t *testing.T) {
	logger := base.NewLogger()
	value := 42

	result, res := CallDBFuncAndCheckError[int, pageData](logger, func() (*int, error) { return &value, nil })
	assert.Nil(t, res)
	assert.Equal(t, 42, *result)

	_, res = CallDBFuncAndCheckError[int, pageData](logger, func() (*int, error) { return nil, operation.ErrStaffNotFound })
	require.NotNil(t, res)
	assert.Equal(t, LoginPath, res.RedirectTo)
	assert.Equal(t, []string{ErrStaffNotFound.Description}, res.Messages)
	assert.True(t, res.Logout)

	_, res = CallDBFuncAndCheckError[int, pageData](logger, func() (*int, error) { return nil, errors.New("boom") })
	require.NotNil(t, res)
	assert.Equal(t, http.StatusInternalServerError, res.HttpCode)
	assert.Equal(t, "", res.Template)
}

func TestRedirectResponseLogsOutMissingStaff(t *testing.T) {
	ctx, rec, _ := newContext()
	session := &memorySession{identity: Identity{Username: "ghost", Role: operation.RoleStaff}}

	_, res := CallDBFuncAndCheckError[int, pageData](base.NewLogger(), func() (*int, error) { return nil, operation.ErrStaffNotFound })
	require.NoError(t, res.Response(ctx, session))

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, LoginPath, rec.Header().Get(echo.HeaderLocation))
	assert.False(t, session.Identity().LoggedIn())
	assert.Equal(t, []string{ErrStaffNotFound.Description}, session.flashes)
}
