package cmd

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"piquante/internal/config"
	"piquante/internal/core"
	"piquante/internal/db"
	"piquante/internal/http/handler"
	"piquante/internal/http/handler/middleware"
	"piquante/internal/http/payload"
	"piquante/internal/http/server"
	"piquante/internal/repository"
	"piquante/internal/upload"
	"piquante/pkg/jwt"
	"piquante/pkg/log"

	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"go.uber.org/zap/zapcore"
)

func Start() error {
	// .env is a convenience for local runs; absence is fine
	_ = godotenv.Load()

	logger := log.NewZapLogger("piquante", zapcore.InfoLevel)

	config, err := config.NewApp()
	if err != nil {
		logger.Errorw("failed to create config", "error", err)
		return err
	}

	dbConn, err := db.NewPostgresDB(config.DBConnectionURL)
	if err != nil {
		logger.Errorw("failed to connect to database", "error", err)
		return err
	}

	// jwt service
	jwtService := jwt.NewJWTService([]byte(config.JWTSecret))

	// repository
	repo := repository.NewSauceRepository(dbConn)

	err = repo.MigrateTables()
	if err != nil {
		logger.Errorw("failed to migrate tables to database", "error", err)
		return err
	}

	// image intake
	receiver, err := upload.NewReceiver(logger, config.ImageDir, config.MaxUploadBytes)
	if err != nil {
		logger.Errorw("failed to prepare image directory", "error", err)
		return err
	}

	// core service
	piquante := core.NewPiquante(
		logger,
		repo,
		jwtService,
		receiver)

	// handlers
	userHlr := handler.NewUserHandler(
		logger,
		payload.DecodeValidator{},
		piquante)

	sauceHlr := handler.NewSauceHandler(
		logger,
		payload.DecodeValidator{},
		piquante,
		receiver)

	// middleware
	auth := middleware.NewAuthMiddleware(logger, jwtService)

	// register routes
	mux := http.NewServeMux()
	mux.HandleFunc(handler.Signup, userHlr.HandleSignup)
	mux.HandleFunc(handler.Login, userHlr.HandleLogin)
	mux.Handle(handler.ListSauces, auth.Guard(http.HandlerFunc(sauceHlr.HandleList)))
	mux.Handle(handler.GetSauce, auth.Guard(http.HandlerFunc(sauceHlr.HandleGet)))
	mux.Handle(handler.CreateSauce, auth.Guard(http.HandlerFunc(sauceHlr.HandleCreate)))
	mux.Handle(handler.UpdateSauce, auth.Guard(http.HandlerFunc(sauceHlr.HandleUpdate)))
	mux.Handle(handler.DeleteSauce, auth.Guard(http.HandlerFunc(sauceHlr.HandleDelete)))
	mux.Handle(handler.RateSauce, auth.Guard(http.HandlerFunc(sauceHlr.HandleRate)))
	mux.Handle("GET /images/", http.StripPrefix("/images/", http.FileServer(http.Dir(config.ImageDir))))

	corsLayer := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedHeaders: []string{"Origin", "X-Requested-With", "Content", "Accept", "Content-Type", "Authorization"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
	})

	hdlr := corsLayer.Handler(mux)
	hdlr = middleware.NewLoggingMiddleware(logger).Logging(hdlr)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)

	srv := server.NewHTTP(logger, hdlr, config.Port)
	return run(srv)
}

func run(server *server.HTTPServer) error {
	// expect a signal to gracefully shutdown the server
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	errChan := server.Run()

	var err error
	select {
	case <-sig:
	case err = <-errChan:
	}

	sdErr := server.Shutdown()
	if err == http.ErrServerClosed && sdErr != nil {
		return fmt.Errorf("server shutdown: %w", sdErr)
	}

	return err
}
