package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gvsu-realestate/clubsite/internal/api"
	"github.com/gvsu-realestate/clubsite/internal/auth"
	"github.com/gvsu-realestate/clubsite/internal/config"
	"github.com/gvsu-realestate/clubsite/internal/mailer"
	"github.com/gvsu-realestate/clubsite/internal/pkg/logger"
	"github.com/gvsu-realestate/clubsite/internal/service/announcement"
	"github.com/gvsu-realestate/clubsite/internal/service/home"
	"github.com/gvsu-realestate/clubsite/internal/service/member"
	"github.com/gvsu-realestate/clubsite/internal/service/publish"
	"github.com/gvsu-realestate/clubsite/internal/service/recipient"
	"github.com/gvsu-realestate/clubsite/internal/service/resource"
	"github.com/gvsu-realestate/clubsite/internal/service/syndication"
	"github.com/gvsu-realestate/clubsite/internal/store"
)

func main() {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config/config.yaml"
	}

	cfg, err := config.LoadFromEnv(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx := context.Background()

	var docs store.DocumentStore
	var objects store.ObjectStore
	var ping func(ctx context.Context) error

	// STORAGE_MODE=memory runs everything in-process for front-end
	// development with no AWS account.
	if os.Getenv("STORAGE_MODE") == "memory" {
		logger.Warn("running with in-memory storage, nothing will persist")
		docs = store.NewMemoryStore()
		objects = store.NewMemoryObjectStore()
	} else {
		dynamo, err := store.NewDynamoStore(ctx, cfg.Database)
		if err != nil {
			log.Fatalf("Failed to initialize DynamoDB store: %v", err)
		}
		docs = dynamo
		ping = dynamo.Ping

		s3store, err := store.NewS3Store(ctx, cfg.Storage)
		if err != nil {
			log.Fatalf("Failed to initialize S3 store: %v", err)
		}
		objects = s3store
	}

	sesMailer, err := mailer.NewSESMailer(ctx, cfg.SES)
	if err != nil {
		log.Fatalf("Failed to initialize mailer: %v", err)
	}

	anns := announcement.NewService(announcement.NewRepository(docs))
	recs := recipient.NewService(recipient.NewRepository(docs))
	pub := publish.NewService(anns, recs, sesMailer)
	res := resource.NewService(resource.NewRepository(docs), objects)
	members := member.NewService(member.NewRepository(docs), objects)
	homeSvc := home.NewService(docs)
	news := syndication.NewNewsFetcher(
		cfg.Syndication.NewsFeedURL,
		cfg.Syndication.NewsMaxItems,
		time.Duration(cfg.Syndication.TimeoutSeconds)*time.Second,
	)
	synd := syndication.NewService(docs, objects, news)
	authSvc := auth.NewService(docs, cfg.Auth.AdminPassword)

	handlers := api.NewHandlers(anns, recs, pub, res, members, homeSvc, synd, authSvc, ping)
	server := api.NewServer(cfg.Server, handlers)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("club site server starting", "addr", addr)

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.ListenAndServe(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	<-done
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "error", err.Error())
	}
}
