// Package service
package service

type AuthServiceInterface interface {
	Login(req *RequestLogin) *ViewResponse[ResponseLogin]
	LoginPage(req *RequestLoginPage) *ViewResponse[ResponseLoginPage]
	Logout(req *RequestLogout) *ViewResponse[ResponseLogout]
}

type RequestLogin struct {
	Username string `form:"username"`
	Password string `form:"password"`
	Role     string `form:"role"`
}

// ResponseLogin Identity is set only on success, Username refills the form after a failure.
type ResponseLogin struct {
	Identity *Identity
	Username string
}

type RequestLoginPage struct {
	Identity
}

type ResponseLoginPage struct {
	Username string
}

type RequestLogout struct {
	Identity
}

type ResponseLogout struct{}
