package api

import (
	"context"
	"net/http"

	"ezforum-cli/shared"
)

type AuthApi struct {
	r Requester
}

func (a *AuthApi) Register(ctx context.Context, req shared.RegisterRequest) (*shared.ApiResponse[shared.AuthResponse], *shared.ApiError) {
	return envelope[shared.AuthResponse](ctx, a.r, RequestOptions{
		Url:    "/api/auth/register",
		Method: http.MethodPost,
		Data:   req,
	})
}

func (a *AuthApi) Login(ctx context.Context, req shared.LoginRequest) (*shared.ApiResponse[shared.AuthResponse], *shared.ApiError) {
	return envelope[shared.AuthResponse](ctx, a.r, RequestOptions{
		Url:    "/api/auth/login",
		Method: http.MethodPost,
		Data:   req,
	})
}

// GetMe returns the profile of the token's owner.
func (a *AuthApi) GetMe(ctx context.Context) (*shared.ApiResponse[shared.User], *shared.ApiError) {
	return envelope[shared.User](ctx, a.r, RequestOptions{
		Url:    "/api/auth/me",
		Method: http.MethodGet,
	})
}

func (a *AuthApi) Logout(ctx context.Context) (*shared.ApiResponse[any], *shared.ApiError) {
	return envelope[any](ctx, a.r, RequestOptions{
		Url:    "/api/auth/logout",
		Method: http.MethodPost,
	})
}
