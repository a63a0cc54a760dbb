package shared

const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

type AuthorSummary struct {
	Id       string  `json:"id"`
	Username string  `json:"username"`
	Avatar   *string `json:"avatar"`
}

type Post struct {
	Id           string        `json:"id"`
	Title        string        `json:"title"`
	Content      string        `json:"content"`
	Images       []string      `json:"images"`
	Views        int           `json:"views"`
	CreatedAt    string        `json:"createdAt"`
	UpdatedAt    string        `json:"updatedAt"`
	Author       AuthorSummary `json:"author"`
	CommentCount int           `json:"commentCount"`
	LikeCount    int           `json:"likeCount"`
	IsLiked      bool          `json:"isLiked"`
}

// ParentSummary is the trimmed view of the comment being replied to.
type ParentSummary struct {
	Id      string        `json:"id"`
	Content string        `json:"content"`
	Author  AuthorSummary `json:"author"`
}

type Comment struct {
	Id        string         `json:"id"`
	Content   string         `json:"content"`
	CreatedAt string         `json:"createdAt"`
	UpdatedAt string         `json:"updatedAt"`
	PostId    string         `json:"postId"`
	ParentId  *string        `json:"parentId,omitempty"`
	Author    AuthorSummary  `json:"author"`
	Replies   []*Comment     `json:"replies,omitempty"`
	Parent    *ParentSummary `json:"parent,omitempty"`
}

func (c *Comment) IsReply() bool {
	return c.ParentId != nil && *c.ParentId != ""
}

type User struct {
	Id       string  `json:"id"`
	Username string  `json:"username"`
	Email    string  `json:"email"`
	Avatar   *string `json:"avatar"`
	Role     string  `json:"role"`
	Bio      *string `json:"bio,omitempty"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

type UserCounts struct {
	Posts    int `json:"posts"`
	Comments int `json:"comments"`
}

// UserWithCounts is the row shape of the admin user listing.
type UserWithCounts struct {
	User
	Count UserCounts `json:"_count"`
}
