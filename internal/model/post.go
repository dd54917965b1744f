package model

import "time"

const (
	// PagesCategoryID - категория постов, которые показываются в меню как страницы
	PagesCategoryID = 1
	PostsCategoryID = 2

	PostTypePage = "page"
	PostTypePost = "post"
)

type Post struct {
	ID            int64
	Title         string
	Slug          string
	PostType      string
	Body          string
	CategoryID    int
	OrderIndex    int
	PublishAt     *time.Time
	FeaturedImage string
	CreatedBy     string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type MenuPage struct {
	Title      string
	Slug       string
	OrderIndex int
}

type Contact struct {
	Name    string
	Email   string
	Message string
}

type Landing struct {
	Locale string
	Pages  []MenuPage
}
