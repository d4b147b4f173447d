package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bagdasarian/group-service/internal/config"
	"github.com/bagdasarian/group-service/internal/db"
	"github.com/bagdasarian/group-service/internal/handler"
	"github.com/bagdasarian/group-service/internal/handler/server"
	"github.com/bagdasarian/group-service/internal/repository/postgres"
	"github.com/bagdasarian/group-service/internal/service"
)

func main() {
	cfg := config.Load()

	database := db.MustLoad(cfg)
	log.Println("Successfully connected to database!")
	defer database.Close()

	if err := db.RunMigrations(database); err != nil {
		log.Fatalf("Migrations failed: %v", err)
	}

	userRepo := postgres.NewUserRepository(database)
	groupRepo := postgres.NewGroupRepository(database)
	memberRepo := postgres.NewMemberRepository(database)
	inviteRepo := postgres.NewInviteRepository(database)
	blockRepo := postgres.NewBlockRepository(database)
	resetRepo := postgres.NewResetRepository(database)

	tokens := service.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	authService := service.NewAuthService(userRepo, resetRepo, tokens, cfg.Auth.BcryptCost, cfg.Auth.OTPTTL)
	groupService := service.NewGroupService(groupRepo, memberRepo)
	inviteService := service.NewInviteService(inviteRepo, memberRepo, userRepo, cfg.Invite.TTL)
	moderationService := service.NewModerationService(blockRepo, memberRepo)

	h := handler.NewHandler(authService, groupService, inviteService, moderationService, tokens)
	srv := server.NewServer(h, cfg.HTTP.Addr)

	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
}
