package post

import (
	"brand_site/internal/middleware"
	"brand_site/internal/model"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
)

type postStub struct {
	created *model.Post
	updated *model.Post
}

func (p *postStub) CreatePost(ctx context.Context, post *model.Post) (*model.Post, error) {
	if _, ok := middleware.UserIDFromContext(ctx); !ok {
		return nil, model.ErrUnauthenticated
	}
	if post.Title == "dup" {
		return nil, model.ErrSlugTaken
	}
	p.created = post
	cp := *post
	cp.ID = 7
	cp.Slug = "generated"
	return &cp, nil
}

func (p *postStub) UpdatePost(_ context.Context, post *model.Post) (*model.Post, error) {
	if post.ID != 7 {
		return nil, model.ErrPostNotFound
	}
	p.updated = post
	cp := *post
	return &cp, nil
}

func (p *postStub) GetPublishedPost(_ context.Context, slug string) (*model.Post, error) {
	if slug != "hello" {
		return nil, model.ErrPostNotFound
	}
	return &model.Post{ID: 1, Title: "Hello", Slug: "hello"}, nil
}

func (p *postStub) Landing(_ context.Context, locale string) (*model.Landing, error) {
	return &model.Landing{
		Locale: locale,
		Pages:  []model.MenuPage{{Title: "Giới thiệu", Slug: "gioi-thieu", OrderIndex: 1}},
	}, nil
}

func newRouter(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Locale)
	r.Get("/", h.Landing)
	r.Get("/pages", h.Pages)
	r.Post("/locale", h.SetLocale)
	r.Get("/posts/{slug}", h.GetPost)
	r.Post("/admin/posts", h.CreatePost)
	r.Put("/admin/posts/{id}", h.UpdatePost)
	return r
}

func TestLandingUsesLocaleCookie(t *testing.T) {
	router := newRouter(NewHandler(HandlerDeps{Serv: &postStub{}}))

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(&http.Cookie{Name: middleware.LocaleCookieName, Value: "en"})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var body struct {
		Locale string `json:"locale"`
		Pages  []struct {
			Slug string `json:"slug"`
		} `json:"pages"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body.Locale != "en" || len(body.Pages) != 1 || body.Pages[0].Slug != "gioi-thieu" {
		t.Errorf("body = %+v", body)
	}
}

func TestSetLocale(t *testing.T) {
	router := newRouter(NewHandler(HandlerDeps{Serv: &postStub{}}))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/locale", strings.NewReader(`{"locale":"en"}`)))
	if w.Code != http.StatusNoContent {
		t.Fatalf("status = %d", w.Code)
	}
	cookies := w.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != middleware.LocaleCookieName || cookies[0].Value != "en" {
		t.Errorf("cookies = %v", cookies)
	}

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/locale", strings.NewReader(`{"locale":"fr"}`)))
	if w.Code != http.StatusBadRequest {
		t.Errorf("unsupported locale status = %d", w.Code)
	}
}

func TestGetPost(t *testing.T) {
	router := newRouter(NewHandler(HandlerDeps{Serv: &postStub{}}))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/posts/hello", nil))
	if w.Code != http.StatusOK {
		t.Errorf("status = %d", w.Code)
	}

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/posts/missing", nil))
	if w.Code != http.StatusNotFound {
		t.Errorf("missing post status = %d", w.Code)
	}
}

func TestCreateAndUpdatePost(t *testing.T) {
	serv := &postStub{}
	router := newRouter(NewHandler(HandlerDeps{Serv: serv}))

	authed := func(r *http.Request) *http.Request {
		return r.WithContext(middleware.WithUserID(r.Context(), "admin-1"))
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, authed(httptest.NewRequest(http.MethodPost, "/admin/posts",
		strings.NewReader(`{"title":"Tin mới","category_id":2,"body":"..."}`))))
	if w.Code != http.StatusCreated {
		t.Fatalf("create status = %d, body %s", w.Code, w.Body.String())
	}
	if serv.created == nil || serv.created.Title != "Tin mới" || serv.created.CategoryID != 2 {
		t.Errorf("service got %+v", serv.created)
	}

	w = httptest.NewRecorder()
	router.ServeHTTP(w, authed(httptest.NewRequest(http.MethodPost, "/admin/posts", strings.NewReader(`{"title":"dup"}`))))
	if w.Code != http.StatusConflict {
		t.Errorf("duplicate slug status = %d", w.Code)
	}

	w = httptest.NewRecorder()
	router.ServeHTTP(w, authed(httptest.NewRequest(http.MethodPost, "/admin/posts", strings.NewReader(`{"post_type":"video"}`))))
	if w.Code != http.StatusBadRequest {
		t.Errorf("invalid body status = %d", w.Code)
	}

	w = httptest.NewRecorder()
	router.ServeHTTP(w, authed(httptest.NewRequest(http.MethodPut, "/admin/posts/7", strings.NewReader(`{"title":"Sửa"}`))))
	if w.Code != http.StatusOK || serv.updated == nil || serv.updated.ID != 7 {
		t.Errorf("update status = %d, got %+v", w.Code, serv.updated)
	}

	w = httptest.NewRecorder()
	router.ServeHTTP(w, authed(httptest.NewRequest(http.MethodPut, "/admin/posts/abc", strings.NewReader(`{"title":"x"}`))))
	if w.Code != http.StatusBadRequest {
		t.Errorf("bad id status = %d", w.Code)
	}

	w = httptest.NewRecorder()
	router.ServeHTTP(w, authed(httptest.NewRequest(http.MethodPut, "/admin/posts/8", strings.NewReader(`{"title":"x"}`))))
	if w.Code != http.StatusNotFound {
		t.Errorf("missing post status = %d", w.Code)
	}
}
