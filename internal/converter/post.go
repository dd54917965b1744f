package converter

import (
	"brand_site/internal/api/dto/contact"
	"brand_site/internal/api/dto/post"
	"brand_site/internal/model"
)

func ToPostModel(req post.PostRequest) *model.Post {
	return &model.Post{
		Title:         req.Title,
		Slug:          req.Slug,
		PostType:      req.PostType,
		Body:          req.Body,
		CategoryID:    req.CategoryID,
		OrderIndex:    req.OrderIndex,
		PublishAt:     req.PublishAt,
		FeaturedImage: req.FeaturedImage,
	}
}

func ToPostResponse(p model.Post) post.PostResponse {
	return post.PostResponse{
		ID:            p.ID,
		Title:         p.Title,
		Slug:          p.Slug,
		PostType:      p.PostType,
		Body:          p.Body,
		CategoryID:    p.CategoryID,
		OrderIndex:    p.OrderIndex,
		PublishAt:     p.PublishAt,
		FeaturedImage: p.FeaturedImage,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func ToLandingResponse(l model.Landing) post.LandingResponse {
	pages := make([]post.MenuPageResponse, len(l.Pages))
	for i, p := range l.Pages {
		pages[i] = post.MenuPageResponse{
			Title: p.Title,
			Slug:  p.Slug,
		}
	}

	return post.LandingResponse{
		Locale: l.Locale,
		Pages:  pages,
	}
}

func ToContactModel(req contact.ContactRequest) *model.Contact {
	return &model.Contact{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	}
}
