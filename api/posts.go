package api

import (
	"context"
	"net/http"
	"net/url"

	"ezforum-cli/shared"
)

// emptyBody is sent where the backend expects a JSON object but no fields.
var emptyBody = map[string]any{}

type PostsApi struct {
	r Requester
}

func (a *PostsApi) GetPosts(ctx context.Context, params any) (*shared.ApiResponse[shared.PostList], *shared.ApiError) {
	return envelope[shared.PostList](ctx, a.r, RequestOptions{
		Url:    "/api/posts",
		Method: http.MethodGet,
		Params: params,
	})
}

func (a *PostsApi) GetPostById(ctx context.Context, id string) (*shared.ApiResponse[shared.Post], *shared.ApiError) {
	return envelope[shared.Post](ctx, a.r, RequestOptions{
		Url:    "/api/posts/" + url.PathEscape(id),
		Method: http.MethodGet,
	})
}

func (a *PostsApi) CreatePost(ctx context.Context, req shared.CreatePostRequest) (*shared.ApiResponse[shared.Post], *shared.ApiError) {
	return envelope[shared.Post](ctx, a.r, RequestOptions{
		Url:    "/api/posts",
		Method: http.MethodPost,
		Data:   req,
	})
}

func (a *PostsApi) UpdatePost(ctx context.Context, id string, req shared.UpdatePostRequest) (*shared.ApiResponse[shared.Post], *shared.ApiError) {
	return envelope[shared.Post](ctx, a.r, RequestOptions{
		Url:    "/api/posts/" + url.PathEscape(id),
		Method: http.MethodPut,
		Data:   req,
	})
}

func (a *PostsApi) DeletePost(ctx context.Context, id string) (*shared.ApiResponse[any], *shared.ApiError) {
	return envelope[any](ctx, a.r, RequestOptions{
		Url:    "/api/posts/" + url.PathEscape(id),
		Method: http.MethodDelete,
		Data:   emptyBody,
	})
}

func (a *PostsApi) LikePost(ctx context.Context, postId string) (*shared.ApiResponse[any], *shared.ApiError) {
	return envelope[any](ctx, a.r, RequestOptions{
		Url:    "/api/posts/" + url.PathEscape(postId) + "/like",
		Method: http.MethodPost,
		Data:   emptyBody,
	})
}

func (a *PostsApi) UnlikePost(ctx context.Context, postId string) (*shared.ApiResponse[any], *shared.ApiError) {
	return envelope[any](ctx, a.r, RequestOptions{
		Url:    "/api/posts/" + url.PathEscape(postId) + "/like",
		Method: http.MethodDelete,
		Data:   emptyBody,
	})
}

func (a *PostsApi) GetUserPosts(ctx context.Context, userId string, params any) (*shared.ApiResponse[shared.PostList], *shared.ApiError) {
	return envelope[shared.PostList](ctx, a.r, RequestOptions{
		Url:    "/api/posts/user/" + url.PathEscape(userId),
		Method: http.MethodGet,
		Params: params,
	})
}

// GetLikedPosts lists the posts the signed-in user liked.
func (a *PostsApi) GetLikedPosts(ctx context.Context, params any) (*shared.ApiResponse[shared.PostList], *shared.ApiError) {
	return envelope[shared.PostList](ctx, a.r, RequestOptions{
		Url:    "/api/posts/liked",
		Method: http.MethodGet,
		Params: params,
	})
}
