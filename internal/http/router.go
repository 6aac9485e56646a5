package http

import (
	"net/http"
	"time"

	"lumina/internal/auth"
	"lumina/internal/config"
	"lumina/internal/content"
	"lumina/internal/feed"
	"lumina/internal/http/handler"
	mw "lumina/internal/http/middleware"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

func NewRouter(cfg config.Config, store *content.Store, users *auth.Registry, jwtSvc *auth.JWT, log *zap.Logger) http.Handler {
	if log == nil {
		log = zap.NewNop()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(mw.Logger(log))
	r.Use(chimw.Recoverer)

	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(mw.CORS(cfg.CORSAllowedOrigins, cfg.CORSAllowCredentials))
	}

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	requireAuth := auth.RequireAuth(jwtSvc)

	ah := &handler.AuthHandler{Users: users, JWT: jwtSvc, Log: log}
	r.Group(func(r chi.Router) {
		r.Use(mw.RateLimit(cfg.AuthRatePerSec, max(int(cfg.AuthRatePerSec), 1)))
		r.Post("/auth/register", ah.Register)
		r.Post("/auth/login", ah.Login)
	})
	r.With(requireAuth).Post("/auth/logout", ah.Logout)

	me := &handler.MeHandler{}
	r.With(requireAuth).Get("/me", me.Me)

	fh := &handler.FeedHandler{Store: store, Composer: feed.Composer{Now: time.Now}, PageSize: cfg.FeedPageSize}
	r.Get("/feed", fh.Feed)
	r.Get("/tags", fh.Tags)

	social := &handler.SocialHandler{Store: store, Log: log}
	admin := []func(http.Handler) http.Handler{requireAuth, auth.RequireAdmin}

	r.Route("/articles", func(r chi.Router) {
		handler.Articles(store, time.Now, log).Mount(r, admin...)
		r.With(requireAuth).Post("/{id}/like", social.Like(content.KindArticle))
		r.With(requireAuth).Post("/{id}/comments", social.Comment(content.KindArticle))
	})
	r.Route("/moments", func(r chi.Router) {
		handler.Moments(store, time.Now, log).Mount(r, admin...)
		r.With(requireAuth).Post("/{id}/like", social.Like(content.KindMoment))
		r.With(requireAuth).Post("/{id}/comments", social.Comment(content.KindMoment))
	})
	r.Route("/shares", func(r chi.Router) {
		handler.Shares(store, log).Mount(r, admin...)
		r.With(requireAuth).Post("/{id}/like", social.Like(content.KindShare))
	})
	r.Route("/projects", func(r chi.Router) {
		handler.Projects(store, time.Now, log).Mount(r, admin...)
	})
	r.Route("/gallery", func(r chi.Router) {
		handler.Gallery(store, time.Now, log).Mount(r, admin...)
	})

	lh := &handler.LifeLogHandler{Store: store}
	r.Get("/lifelog", lh.Get)
	r.Get("/lifelog/summary", lh.Summary)
	r.Get("/hero", lh.Hero)
	r.Group(func(r chi.Router) {
		r.Use(admin...)
		r.Put("/lifelog/{series}", lh.Replace)
		r.Put("/hero", lh.ReplaceHero)
	})

	return r
}
