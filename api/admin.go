package api

import (
	"context"
	"net/http"
	"net/url"

	"ezforum-cli/shared"
)

// AdminApi wraps the moderation endpoints. The backend rejects callers
// without the ADMIN role.
type AdminApi struct {
	r Requester
}

func (a *AdminApi) GetAllPosts(ctx context.Context, params any) (*shared.ApiResponse[shared.PostList], *shared.ApiError) {
	return envelope[shared.PostList](ctx, a.r, RequestOptions{
		Url:    "/api/admin/posts",
		Method: http.MethodGet,
		Params: params,
	})
}

func (a *AdminApi) DeletePost(ctx context.Context, id string) (*shared.ApiResponse[any], *shared.ApiError) {
	return envelope[any](ctx, a.r, RequestOptions{
		Url:    "/api/admin/posts/" + url.PathEscape(id),
		Method: http.MethodDelete,
	})
}

func (a *AdminApi) GetAllUsers(ctx context.Context, params any) (*shared.ApiResponse[shared.UserList], *shared.ApiError) {
	return envelope[shared.UserList](ctx, a.r, RequestOptions{
		Url:    "/api/admin/users",
		Method: http.MethodGet,
		Params: params,
	})
}

func (a *AdminApi) UpdateUserRole(ctx context.Context, userId, role string) (*shared.ApiResponse[shared.User], *shared.ApiError) {
	return envelope[shared.User](ctx, a.r, RequestOptions{
		Url:    "/api/admin/users/" + url.PathEscape(userId) + "/role",
		Method: http.MethodPut,
		Data:   shared.UpdateUserRoleRequest{Role: role},
	})
}
