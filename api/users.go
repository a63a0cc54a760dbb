package api

import (
	"context"
	"net/http"
	"net/url"

	"ezforum-cli/shared"
)

type UsersApi struct {
	r Requester
}

func (a *UsersApi) GetUserById(ctx context.Context, id string) (*shared.ApiResponse[shared.User], *shared.ApiError) {
	return envelope[shared.User](ctx, a.r, RequestOptions{
		Url:    "/api/users/" + url.PathEscape(id),
		Method: http.MethodGet,
	})
}

func (a *UsersApi) UpdateProfile(ctx context.Context, req shared.UpdateProfileRequest) (*shared.ApiResponse[shared.User], *shared.ApiError) {
	return envelope[shared.User](ctx, a.r, RequestOptions{
		Url:    "/api/users/profile",
		Method: http.MethodPut,
		Data:   req,
	})
}
