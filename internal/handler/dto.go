package handler

import (
	"time"

	"blog-backend/internal/models"
)

type userResponse struct {
	ID          uint      `json:"id"`
	Username    string    `json:"username"`
	Email       string    `json:"email"`
	DisplayName string    `json:"displayName"`
	Role        string    `json:"role"`
	Points      int       `json:"points"`
	CreatedDate time.Time `json:"createdDate"`
}

func newUserResponse(u *models.User) userResponse {
	return userResponse{
		ID:          u.ID,
		Username:    u.Username,
		Email:       u.Email,
		DisplayName: u.DisplayName,
		Role:        u.Role,
		Points:      u.Points,
		CreatedDate: u.CreatedDate,
	}
}

type authResponse struct {
	Token string       `json:"token"`
	User  userResponse `json:"user"`
}

type attachmentResponse struct {
	ID           uint   `json:"id"`
	OriginalName string `json:"originalName"`
	ContentType  string `json:"contentType"`
	Size         int64  `json:"size"`
}

type postResponse struct {
	ID           uint                 `json:"id"`
	Title        string               `json:"title"`
	Content      string               `json:"content"`
	Category     string               `json:"category"`
	Author       string               `json:"author"`
	ViewCount    int64                `json:"viewCount"`
	LikeCount    int64                `json:"likeCount"`
	DislikeCount int64                `json:"dislikeCount"`
	Hidden       bool                 `json:"hidden"`
	HiddenBy     string               `json:"hiddenBy,omitempty"`
	HiddenDate   *time.Time           `json:"hiddenDate,omitempty"`
	HiddenReason string               `json:"hiddenReason,omitempty"`
	Attachments  []attachmentResponse `json:"attachments,omitempty"`
	CreatedDate  time.Time            `json:"createdDate"`
	ModifiedDate time.Time            `json:"modifiedDate"`
}

func newPostResponse(p *models.Post) postResponse {
	resp := postResponse{
		ID:           p.ID,
		Title:        p.Title,
		Content:      p.Content,
		Category:     p.Category,
		ViewCount:    p.ViewCount,
		LikeCount:    p.LikeCount,
		DislikeCount: p.DislikeCount,
		Hidden:       p.IsHidden,
		HiddenBy:     p.HiddenBy,
		HiddenDate:   p.HiddenDate,
		HiddenReason: p.HiddenReason,
		CreatedDate:  p.CreatedDate,
		ModifiedDate: p.ModifiedDate,
	}
	if p.User != nil {
		resp.Author = p.User.Username
	}
	for i := range p.Attachments {
		a := &p.Attachments[i]
		resp.Attachments = append(resp.Attachments, attachmentResponse{
			ID:           a.ID,
			OriginalName: a.OriginalName,
			ContentType:  a.ContentType,
			Size:         a.Size,
		})
	}
	return resp
}

func newPostListResponse(posts []*models.Post) []postResponse {
	resp := make([]postResponse, 0, len(posts))
	for _, p := range posts {
		resp = append(resp, newPostResponse(p))
	}
	return resp
}

type commentResponse struct {
	ID           uint      `json:"id"`
	Content      string    `json:"content"`
	Author       string    `json:"author"`
	PostID       uint      `json:"postId"`
	CreatedDate  time.Time `json:"createdDate"`
	ModifiedDate time.Time `json:"modifiedDate"`
}

func newCommentResponse(c *models.Comment) commentResponse {
	return commentResponse{
		ID:           c.ID,
		Content:      c.Content,
		Author:       c.Author,
		PostID:       c.PostID,
		CreatedDate:  c.CreatedDate,
		ModifiedDate: c.ModifiedDate,
	}
}

type suspensionResponse struct {
	ID          uint       `json:"id"`
	UserID      uint       `json:"userId"`
	SuspendedBy string     `json:"suspendedBy"`
	Reason      string     `json:"reason"`
	StartDate   time.Time  `json:"startDate"`
	EndDate     *time.Time `json:"endDate,omitempty"`
	Permanent   bool       `json:"permanent"`
}

func newSuspensionResponse(s *models.Suspension) suspensionResponse {
	return suspensionResponse{
		ID:          s.ID,
		UserID:      s.UserID,
		SuspendedBy: s.SuspendedBy,
		Reason:      s.Reason,
		StartDate:   s.StartDate,
		EndDate:     s.EndDate,
		Permanent:   s.Permanent(),
	}
}
