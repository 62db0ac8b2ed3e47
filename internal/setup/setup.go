package setup

import (
	"github.com/campusboard/campusboard/internal/config"
	"github.com/campusboard/campusboard/internal/email"
	"github.com/campusboard/campusboard/internal/handler"
	"github.com/campusboard/campusboard/internal/jwt"
	"github.com/campusboard/campusboard/internal/middleware"
	"github.com/campusboard/campusboard/internal/service"
	"github.com/campusboard/campusboard/internal/storage/pg"
)

// Dependencies struct to hold all initialized dependencies.
type Dependencies struct {
	Storage *pg.Storage
	Handler *handler.Handler
	Auth    *middleware.Auth
	Jwt     jwt.JwtService
}

// SetupDependencies initializes all dependencies required for the application.
func SetupDependencies(cfg *config.Config) (*Dependencies, error) {
	storage, err := pg.New(cfg)
	if err != nil {
		return nil, err
	}

	mail := email.New(cfg.EmailConfig())
	jwtService := jwt.New(cfg.JwtKey(), cfg.JwtTTL())

	auth := service.NewAuth(storage, mail, jwtService, &cfg.Public)
	profile := service.NewProfile(storage)
	thread := service.NewThread(storage)
	reply := service.NewReply(storage)

	h := handler.New(auth, profile, thread, reply, storage)

	return &Dependencies{
		Storage: storage,
		Handler: h,
		Auth:    middleware.NewAuth(jwtService),
		Jwt:     jwtService,
	}, nil
}
