package post

import "time"

type PostRequest struct {
	Title         string     `json:"title" validate:"required,max=255"`
	Slug          string     `json:"slug" validate:"omitempty,max=255"` // Пустой - сгенерируется из заголовка
	PostType      string     `json:"post_type" validate:"omitempty,oneof=page post"`
	Body          string     `json:"body"`
	CategoryID    int        `json:"category_id" validate:"omitempty,gte=1"`
	OrderIndex    int        `json:"order_index"`
	PublishAt     *time.Time `json:"publish_at"` // null - черновик
	FeaturedImage string     `json:"featured_image" validate:"omitempty,max=500"`
}

type PostResponse struct {
	ID            int64      `json:"id"`
	Title         string     `json:"title"`
	Slug          string     `json:"slug"`
	PostType      string     `json:"post_type"`
	Body          string     `json:"body"`
	CategoryID    int        `json:"category_id"`
	OrderIndex    int        `json:"order_index"`
	PublishAt     *time.Time `json:"publish_at"`
	FeaturedImage string     `json:"featured_image,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

type MenuPageResponse struct {
	Title string `json:"title"`
	Slug  string `json:"slug"`
}

type LandingResponse struct {
	Locale string             `json:"locale"`
	Pages  []MenuPageResponse `json:"pages"`
}

type LocaleRequest struct {
	Locale string `json:"locale" validate:"required,oneof=en vi"`
}
