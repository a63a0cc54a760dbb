package shared

type ResponseCode string

const (
	ResponseCodeSuccess ResponseCode = "success"
	ResponseCodeError   ResponseCode = "error"
)

// ApiResponse is the envelope every backend endpoint responds with.
type ApiResponse[T any] struct {
	Code    ResponseCode `json:"code"`
	Message string       `json:"message"`
	Data    T            `json:"data"`
}

func (r *ApiResponse[T]) Ok() bool {
	return r.Code == ResponseCodeSuccess
}

type Paginated[T any] struct {
	Items      []T `json:"items"`
	Total      int `json:"total"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"totalPages"`
}

// ListParams are the paging query parameters accepted by every list endpoint.
type ListParams struct {
	Page  int `url:"page,omitempty"`
	Limit int `url:"limit,omitempty"`
}

type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthResponse struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

type CreatePostRequest struct {
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Images  []string `json:"images"`
}

type UpdatePostRequest struct {
	Title   *string  `json:"title,omitempty"`
	Content *string  `json:"content,omitempty"`
	Images  []string `json:"images,omitempty"`
}

type CreateCommentRequest struct {
	Content  string  `json:"content"`
	ParentId *string `json:"parentId,omitempty"`
}

type UpdateCommentRequest struct {
	Content string `json:"content"`
}

type UpdateProfileRequest struct {
	Username *string `json:"username,omitempty"`
	Bio      *string `json:"bio,omitempty"`
	Avatar   *string `json:"avatar,omitempty"`
}

type UpdateUserRoleRequest struct {
	Role string `json:"role"`
}

type UploadResult struct {
	Url      string `json:"url"`
	Filename string `json:"filename"`
	Mimetype string `json:"mimetype"`
}

type PostList = Paginated[*Post]
type CommentList = Paginated[*Comment]
type UserList = Paginated[*UserWithCounts]
