package api

import (
	"context"
	"net/http"
	"net/url"

	"ezforum-cli/shared"
)

type CommentsApi struct {
	r Requester
}

func (a *CommentsApi) GetPostComments(ctx context.Context, postId string, params any) (*shared.ApiResponse[shared.CommentList], *shared.ApiError) {
	return envelope[shared.CommentList](ctx, a.r, RequestOptions{
		Url:    "/api/comments/post/" + url.PathEscape(postId),
		Method: http.MethodGet,
		Params: params,
	})
}

// CreateComment comments on a post, or replies to a comment when
// req.ParentId is set.
func (a *CommentsApi) CreateComment(ctx context.Context, postId string, req shared.CreateCommentRequest) (*shared.ApiResponse[shared.Comment], *shared.ApiError) {
	return envelope[shared.Comment](ctx, a.r, RequestOptions{
		Url:    "/api/comments/post/" + url.PathEscape(postId),
		Method: http.MethodPost,
		Data:   req,
	})
}

func (a *CommentsApi) UpdateComment(ctx context.Context, commentId string, req shared.UpdateCommentRequest) (*shared.ApiResponse[shared.Comment], *shared.ApiError) {
	return envelope[shared.Comment](ctx, a.r, RequestOptions{
		Url:    "/api/comments/" + url.PathEscape(commentId),
		Method: http.MethodPut,
		Data:   req,
	})
}

func (a *CommentsApi) DeleteComment(ctx context.Context, commentId string) (*shared.ApiResponse[any], *shared.ApiError) {
	return envelope[any](ctx, a.r, RequestOptions{
		Url:    "/api/comments/" + url.PathEscape(commentId),
		Method: http.MethodDelete,
	})
}

func (a *CommentsApi) GetCommentReplies(ctx context.Context, commentId string, params any) (*shared.ApiResponse[shared.CommentList], *shared.ApiError) {
	return envelope[shared.CommentList](ctx, a.r, RequestOptions{
		Url:    "/api/comments/" + url.PathEscape(commentId) + "/replies",
		Method: http.MethodGet,
		Params: params,
	})
}

func (a *CommentsApi) GetMyComments(ctx context.Context, params any) (*shared.ApiResponse[shared.CommentList], *shared.ApiError) {
	return envelope[shared.CommentList](ctx, a.r, RequestOptions{
		Url:    "/api/comments/me",
		Method: http.MethodGet,
		Params: params,
	})
}
