package app

import (
	authAPI "brand_site/internal/api/auth"
	contactAPI "brand_site/internal/api/contact"
	postAPI "brand_site/internal/api/post"
	wheelAPI "brand_site/internal/api/wheel"
	"brand_site/internal/config"
	"brand_site/internal/config/env"
	"brand_site/internal/middleware"
	"brand_site/internal/repository"
	"brand_site/internal/repository/auth_repo"
	"brand_site/internal/repository/contact_repo"
	"brand_site/internal/repository/post_repo"
	"brand_site/internal/repository/profile_repo"
	"brand_site/internal/repository/user_repo"
	"brand_site/internal/service"
	"brand_site/internal/service/auth"
	"brand_site/internal/service/contact"
	"brand_site/internal/service/post"
	"brand_site/internal/service/wheel"
	"context"
	"net/http"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const wheelConfigPath = "config.yaml"

type ServiceProvider struct {
	//TXManager
	txManager trm.Manager

	// Database
	pgConfig config.PGConfig
	dbClient *pgxpool.Pool

	// Redis и ограничение частоты запросов
	redisConfig     config.RedisConfig
	redisClient     *redis.Client
	rateLimitConfig config.RateLimitConfig

	// Auth bits
	jwtConfig config.JWTConfig
	authRepo  repository.AuthRepository
	authServ  service.AuthService
	authHand  *authAPI.Handler

	// User bits
	userRepo    repository.UserRepository
	profileRepo repository.ProfileRepository

	// Wheel bits
	wheelCfg  config.WheelConfig
	wheelServ service.WheelService
	wheelHand *wheelAPI.Handler

	// CMS bits
	postRepo    repository.PostRepository
	postServ    service.PostService
	postHand    *postAPI.Handler
	contactRepo repository.ContactRepository
	contactServ service.ContactService
	contactHand *contactAPI.Handler

	// Router, HTTP and log config
	logCfg  config.LogConfig
	httpCfg config.HTTPConfig
	router  chi.Router
}

func newServiceProvider() *ServiceProvider {
	return &ServiceProvider{}
}

func (sp *ServiceProvider) LogCfg() config.LogConfig {
	if sp.logCfg == nil {
		sp.logCfg = env.NewLogConfig()
	}
	return sp.logCfg
}

func (sp *ServiceProvider) PgConfig() config.PGConfig {
	if sp.pgConfig == nil {
		cfg, err := env.NewPGConfig()
		if err != nil {
			panic("failed to get database config: " + err.Error())
		}
		sp.pgConfig = cfg
	}
	return sp.pgConfig
}

func (sp *ServiceProvider) DBClient(ctx context.Context) *pgxpool.Pool {
	if sp.dbClient == nil {
		dbc, err := pgxpool.New(ctx, sp.PgConfig().DSN())
		if err != nil {
			panic("failed to create db pool: " + err.Error())
		}
		err = dbc.Ping(ctx)
		if err != nil {
			panic("failed to ping db: " + err.Error())
		}
		sp.dbClient = dbc
	}
	return sp.dbClient
}

func (sp *ServiceProvider) TXManager(ctx context.Context) trm.Manager {
	if sp.txManager == nil {
		m, err := manager.New(trmpgx.NewDefaultFactory(sp.DBClient(ctx)))
		if err != nil {
			panic("failed to create tx manager: " + err.Error())
		}

		sp.txManager = m
	}

	return sp.txManager
}

func (sp *ServiceProvider) RedisConfig() config.RedisConfig {
	if sp.redisConfig == nil {
		cfg, err := env.NewRedisConfig()
		if err != nil {
			panic("failed to get redis config: " + err.Error())
		}
		sp.redisConfig = cfg
	}
	return sp.redisConfig
}

// RedisClient возвращает nil, если Redis не настроен
func (sp *ServiceProvider) RedisClient(ctx context.Context) *redis.Client {
	if sp.redisClient == nil && sp.RedisConfig().Enabled() {
		cfg := sp.RedisConfig()
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Address(),
			Password: cfg.Password(),
			DB:       cfg.DB(),
		})

		// Недоступный Redis не мешает старту: лимитер пропускает запросы
		err := rdb.Ping(ctx).Err()
		if err != nil {
			log.Warn().Err(err).Str("addr", cfg.Address()).Msg("redis is unavailable, rate limiting degraded")
		}
		sp.redisClient = rdb
	}
	return sp.redisClient
}

func (sp *ServiceProvider) RateLimitConfig() config.RateLimitConfig {
	if sp.rateLimitConfig == nil {
		cfg, err := env.NewRateLimitConfig()
		if err != nil {
			panic("failed to get rate limit config: " + err.Error())
		}
		sp.rateLimitConfig = cfg
	}
	return sp.rateLimitConfig
}

// RateLimit - middleware ограничения частоты для группы ручек scope
func (sp *ServiceProvider) RateLimit(ctx context.Context, scope string) func(next http.Handler) http.Handler {
	var counter middleware.Counter
	if rdb := sp.RedisClient(ctx); rdb != nil {
		counter = middleware.NewRedisCounter(rdb)
	}

	cfg := sp.RateLimitConfig()
	return middleware.RateLimit(counter, scope, cfg.Requests(), cfg.Window())
}

func (sp *ServiceProvider) JWTConfig() config.JWTConfig {
	if sp.jwtConfig == nil {
		cfg, err := env.NewJWTConfig()
		if err != nil {
			panic("failed to get jwt config: " + err.Error())
		}
		sp.jwtConfig = cfg
	}
	return sp.jwtConfig
}

func (sp *ServiceProvider) AuthRepo(ctx context.Context) repository.AuthRepository {
	if sp.authRepo == nil {
		sp.authRepo = auth_repo.NewAuthRepository(sp.DBClient(ctx))
	}
	return sp.authRepo
}

func (sp *ServiceProvider) UserRepo(ctx context.Context) repository.UserRepository {
	if sp.userRepo == nil {
		sp.userRepo = user_repo.NewUserRepository(sp.DBClient(ctx))
	}
	return sp.userRepo
}

func (sp *ServiceProvider) ProfileRepo(ctx context.Context) repository.ProfileRepository {
	if sp.profileRepo == nil {
		sp.profileRepo = profile_repo.NewProfileRepository(sp.DBClient(ctx))
	}
	return sp.profileRepo
}

func (sp *ServiceProvider) AuthService(ctx context.Context) service.AuthService {
	if sp.authServ == nil {
		sp.authServ = auth.NewService(
			sp.TXManager(ctx),
			sp.UserRepo(ctx),
			sp.AuthRepo(ctx),
			sp.ProfileRepo(ctx),
			sp.JWTConfig(),
		)
	}
	return sp.authServ
}

func (sp *ServiceProvider) AuthHandler(ctx context.Context) *authAPI.Handler {
	if sp.authHand == nil {
		sp.authHand = authAPI.NewHandler(authAPI.HandlerDeps{
			Serv:          sp.AuthService(ctx),
			SessionTTL:    sp.JWTConfig().RefreshTokenDuration(),
			SecureCookies: sp.HTTPCfg().SecureCookies(),
		})
	}
	return sp.authHand
}

func (sp *ServiceProvider) WheelCfg() config.WheelConfig {
	if sp.wheelCfg == nil {
		cfg, err := env.NewWheelConfigFromYAML(wheelConfigPath)
		if err != nil {
			panic("failed to get wheel config: " + err.Error())
		}
		sp.wheelCfg = cfg
	}
	return sp.wheelCfg
}

func (sp *ServiceProvider) WheelService(ctx context.Context) service.WheelService {
	if sp.wheelServ == nil {
		sp.wheelServ = wheel.NewWheelService(sp.WheelCfg(), sp.ProfileRepo(ctx))
	}
	return sp.wheelServ
}

func (sp *ServiceProvider) WheelHandler(ctx context.Context) *wheelAPI.Handler {
	if sp.wheelHand == nil {
		sp.wheelHand = wheelAPI.NewHandler(wheelAPI.HandlerDeps{Serv: sp.WheelService(ctx)})
	}
	return sp.wheelHand
}

func (sp *ServiceProvider) PostRepo(ctx context.Context) repository.PostRepository {
	if sp.postRepo == nil {
		sp.postRepo = post_repo.NewPostRepository(sp.DBClient(ctx))
	}
	return sp.postRepo
}

func (sp *ServiceProvider) PostService(ctx context.Context) service.PostService {
	if sp.postServ == nil {
		sp.postServ = post.NewPostService(sp.TXManager(ctx), sp.PostRepo(ctx))
	}
	return sp.postServ
}

func (sp *ServiceProvider) PostHandler(ctx context.Context) *postAPI.Handler {
	if sp.postHand == nil {
		sp.postHand = postAPI.NewHandler(postAPI.HandlerDeps{Serv: sp.PostService(ctx)})
	}
	return sp.postHand
}

func (sp *ServiceProvider) ContactRepo(ctx context.Context) repository.ContactRepository {
	if sp.contactRepo == nil {
		sp.contactRepo = contact_repo.NewContactRepository(sp.DBClient(ctx))
	}
	return sp.contactRepo
}

func (sp *ServiceProvider) ContactService(ctx context.Context) service.ContactService {
	if sp.contactServ == nil {
		sp.contactServ = contact.NewContactService(sp.ContactRepo(ctx))
	}
	return sp.contactServ
}

func (sp *ServiceProvider) ContactHandler(ctx context.Context) *contactAPI.Handler {
	if sp.contactHand == nil {
		sp.contactHand = contactAPI.NewHandler(contactAPI.HandlerDeps{Serv: sp.ContactService(ctx)})
	}
	return sp.contactHand
}

func (sp *ServiceProvider) HTTPCfg() config.HTTPConfig {
	if sp.httpCfg == nil {
		cfg, err := env.NewHTTPConfig()
		if err != nil {
			panic("failed to get http config: " + err.Error())
		}
		sp.httpCfg = cfg
	}

	return sp.httpCfg
}

func (sp *ServiceProvider) Router(ctx context.Context) chi.Router {
	if sp.router == nil {
		r := chi.NewRouter()

		r.Use(chimw.RequestID)
		r.Use(chimw.RealIP)
		r.Use(middleware.Logger)
		r.Use(chimw.Recoverer)

		// CORS middleware
		origins := sp.HTTPCfg().AllowedOrigins()
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   origins,
			AllowedMethods:   []string{"GET", "POST", "PUT", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
			ExposedHeaders:   []string{"Link", "Retry-After"},
			AllowCredentials: !(len(origins) == 1 && origins[0] == "*"),
			MaxAge:           60 * 15,
		}))

		r.Use(middleware.Locale)
		r.Use(middleware.Auth(sp.JWTConfig().AccessTokenSecretKey()))

		// Landing, CMS and contact endpoints
		postHandler := sp.PostHandler(ctx)
		r.Get("/", postHandler.Landing)
		r.Post("/locale", postHandler.SetLocale)
		r.Get("/pages", postHandler.Pages)
		r.Get("/posts/{slug}", postHandler.GetPost)
		r.With(sp.RateLimit(ctx, "contact")).Post("/contact", sp.ContactHandler(ctx).Submit)

		// Auth endpoints
		authHandler := sp.AuthHandler(ctx)
		r.Route("/auth", func(rr chi.Router) {
			rr.Post("/register", authHandler.Register)
			rr.With(sp.RateLimit(ctx, "login")).Post("/login", authHandler.Login)
			rr.Post("/refresh", authHandler.Refresh)
			rr.Post("/logout", authHandler.Logout)
		})

		// Wheel endpoints
		wheelHandler := sp.WheelHandler(ctx)
		r.Route("/wheel", func(rr chi.Router) {
			rr.Get("/", wheelHandler.Wheel)
			rr.Get("/result", wheelHandler.Result)
			rr.With(sp.RateLimit(ctx, "spin")).Post("/spin", wheelHandler.Spin)
		})

		// Admin endpoints
		r.Route("/admin", func(rr chi.Router) {
			rr.Use(middleware.RequireAdmin(sp.ProfileRepo(ctx)))
			rr.Post("/posts", postHandler.CreatePost)
			rr.Put("/posts/{id}", postHandler.UpdatePost)
			rr.Get("/wheel/stats", wheelHandler.Stats)
		})

		sp.router = r
	}

	return sp.router
}

// Close освобождает соединения с Postgres и Redis
func (sp *ServiceProvider) Close() {
	if sp.dbClient != nil {
		sp.dbClient.Close()
	}
	if sp.redisClient != nil {
		err := sp.redisClient.Close()
		if err != nil {
			log.Warn().Err(err).Msg("failed to close redis client")
		}
	}
}
