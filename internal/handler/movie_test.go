package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/user/kinohub/internal/config"
	"github.com/user/kinohub/internal/handler"
	"github.com/user/kinohub/internal/middleware"
	"github.com/user/kinohub/internal/model"
	"github.com/user/kinohub/internal/router"
	"github.com/user/kinohub/internal/service"
)

type memMovieStore struct {
	mu     sync.Mutex
	movies map[string]*model.Movie
}

func newMemMovieStore(movies ...*model.Movie) *memMovieStore {
	s := &memMovieStore{movies: make(map[string]*model.Movie)}
	for _, m := range movies {
		s.movies[m.ID] = m
	}
	return s
}

func (s *memMovieStore) FindAll(search string) ([]model.Movie, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []model.Movie{}
	for _, m := range s.movies {
		out = append(out, *m)
	}
	return out, nil
}

func (s *memMovieStore) FindBySlug(slug string) (*model.Movie, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, m := range s.movies {
		if m.Slug == slug {
			cp := *m
			return &cp, nil
		}
	}
	return nil, nil
}

func (s *memMovieStore) FindByActor(actorID string) ([]model.Movie, error) {
	return []model.Movie{}, nil
}

func (s *memMovieStore) FindByGenres(genreIDs []string) ([]model.Movie, error) {
	return []model.Movie{}, nil
}

func (s *memMovieStore) FindPopular() ([]model.Movie, error) {
	return []model.Movie{}, nil
}

func (s *memMovieStore) IncrementCountOpened(slug string) (*model.Movie, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, m := range s.movies {
		if m.Slug == slug {
			m.CountOpened++
			cp := *m
			return &cp, nil
		}
	}
	return nil, nil
}

func (s *memMovieStore) UpdateRating(id string, rating float64) (*model.Movie, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.movies[id]
	if !ok {
		return nil, nil
	}
	m.Rating = rating
	cp := *m
	return &cp, nil
}

func (s *memMovieStore) FindByID(id string) (*model.Movie, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.movies[id]
	if !ok {
		return nil, nil
	}
	cp := *m
	return &cp, nil
}

func (s *memMovieStore) Create() (*model.Movie, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m := &model.Movie{ID: "new-movie"}
	s.movies[m.ID] = m
	cp := *m
	return &cp, nil
}

func (s *memMovieStore) UpdateByID(id string, patch *model.MoviePatch) (*model.Movie, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.movies[id]
	if !ok {
		return nil, nil
	}
	m.Title = patch.Title
	m.Slug = patch.Slug
	m.Poster = patch.Poster
	m.IsSendTelegram = patch.IsSendTelegram
	cp := *m
	return &cp, nil
}

func (s *memMovieStore) DeleteByID(id string) (*model.Movie, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.movies[id]
	if !ok {
		return nil, nil
	}
	delete(s.movies, id)
	return m, nil
}

type stubNotifier struct {
	mu     sync.Mutex
	photos int
	texts  int
}

func (n *stubNotifier) SendPhoto(photoURL string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.photos++
	return nil
}

func (n *stubNotifier) SendMessage(text string, opts service.MessageOptions) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.texts++
	return nil
}

func setupServer(store service.MovieStore, notifier service.Notifier) (*gin.Engine, *config.Config) {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{
		AppSecret: "test-secret",
		JWTExpiry: time.Hour,
		Telegram: config.TelegramConfig{
			FallbackPoster: "https://example.com/fallback.jpg",
			ButtonLabel:    "watch",
			ButtonURL:      "https://example.com/watch",
		},
	}
	h := &handler.Handler{
		Config: cfg,
		Movies: service.NewMovieService(store, notifier, cfg.Telegram),
	}
	r := gin.New()
	router.RegisterRoutes(r, h)
	return r, cfg
}

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Success bool            `json:"success"`
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("解析响应失败: %v, body: %s", err, w.Body.String())
	}
	return env
}

func TestListMovies(t *testing.T) {
	r, _ := setupServer(newMemMovieStore(&model.Movie{ID: "m1", Title: "Free Guy", Slug: "free-guy"}), &stubNotifier{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/api/movies", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("状态码 = %d", w.Code)
	}
	env := decodeEnvelope(t, w)
	if !env.Success {
		t.Fatalf("success = false: %s", env.Message)
	}
	var movies []model.Movie
	if err := json.Unmarshal(env.Data, &movies); err != nil {
		t.Fatalf("解析 data 失败: %v", err)
	}
	if len(movies) != 1 || movies[0].Slug != "free-guy" {
		t.Errorf("movies = %+v", movies)
	}
}

func TestMovieBySlugNotFound(t *testing.T) {
	r, _ := setupServer(newMemMovieStore(), &stubNotifier{})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/api/movies/by-slug/missing", nil))

	if w.Code != http.StatusNotFound {
		t.Fatalf("状态码 = %d，期望 404", w.Code)
	}
	if env := decodeEnvelope(t, w); env.Success {
		t.Error("无记录时 success 应为 false")
	}
}

func TestUpdateCountOpened(t *testing.T) {
	store := newMemMovieStore(&model.Movie{ID: "m1", Slug: "free-guy", CountOpened: 5})
	r, _ := setupServer(store, &stubNotifier{})

	body := strings.NewReader(`{"slug":"free-guy"}`)
	req := httptest.NewRequest("PUT", "/api/movies/update-count-opened", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("状态码 = %d, body: %s", w.Code, w.Body.String())
	}
	var movie model.Movie
	json.Unmarshal(decodeEnvelope(t, w).Data, &movie)
	if movie.CountOpened != 6 {
		t.Errorf("CountOpened = %d，期望 6", movie.CountOpened)
	}
}

func TestAdminRoutesRequireAdmin(t *testing.T) {
	r, cfg := setupServer(newMemMovieStore(&model.Movie{ID: "m1"}), &stubNotifier{})

	// 未登录
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("POST", "/api/movies", nil))
	if w.Code != http.StatusUnauthorized {
		t.Errorf("未登录状态码 = %d，期望 401", w.Code)
	}

	// 普通用户
	userToken, _ := middleware.GenerateToken("u1", "a@b.c", false, cfg.AppSecret, cfg.JWTExpiry)
	req := httptest.NewRequest("POST", "/api/movies", nil)
	req.Header.Set("Authorization", "Bearer "+userToken)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusForbidden {
		t.Errorf("普通用户状态码 = %d，期望 403", w.Code)
	}

	// 管理员
	adminToken, _ := middleware.GenerateToken("u2", "admin@b.c", true, cfg.AppSecret, cfg.JWTExpiry)
	req = httptest.NewRequest("POST", "/api/movies", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("管理员状态码 = %d，期望 200, body: %s", w.Code, w.Body.String())
	}
}

func TestUpdateMovieSendsNotification(t *testing.T) {
	store := newMemMovieStore(&model.Movie{ID: "m1"})
	notifier := &stubNotifier{}
	r, cfg := setupServer(store, notifier)

	adminToken, _ := middleware.GenerateToken("u2", "admin@b.c", true, cfg.AppSecret, cfg.JWTExpiry)
	body := strings.NewReader(`{"title":"Free Guy","slug":"free-guy","poster":"https://example.com/p.jpg"}`)
	req := httptest.NewRequest("PUT", "/api/movies/m1", body)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+adminToken)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("状态码 = %d, body: %s", w.Code, w.Body.String())
	}
	var movie model.Movie
	json.Unmarshal(decodeEnvelope(t, w).Data, &movie)
	if !movie.IsSendTelegram {
		t.Error("更新后通知标志应为 true")
	}
	if notifier.photos != 2 || notifier.texts != 1 {
		t.Errorf("发送次数 photos=%d texts=%d，期望 2/1", notifier.photos, notifier.texts)
	}
}

func TestUpdateMovieValidation(t *testing.T) {
	r, cfg := setupServer(newMemMovieStore(&model.Movie{ID: "m1"}), &stubNotifier{})

	adminToken, _ := middleware.GenerateToken("u2", "admin@b.c", true, cfg.AppSecret, cfg.JWTExpiry)
	// 缺少必填的 title/slug
	body := strings.NewReader(`{"poster":"https://example.com/p.jpg"}`)
	req := httptest.NewRequest("PUT", "/api/movies/m1", body)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+adminToken)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("状态码 = %d，期望 400", w.Code)
	}
}
