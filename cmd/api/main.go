package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/njprem/Holiday_planner_BackEnd/internal/config"
	"github.com/njprem/Holiday_planner_BackEnd/internal/logging"
	"github.com/njprem/Holiday_planner_BackEnd/internal/media"
	"github.com/njprem/Holiday_planner_BackEnd/internal/repository/memory"
	"github.com/njprem/Holiday_planner_BackEnd/internal/repository/minio"
	"github.com/njprem/Holiday_planner_BackEnd/internal/repository/ports"
	"github.com/njprem/Holiday_planner_BackEnd/internal/repository/postgres"
	"github.com/njprem/Holiday_planner_BackEnd/internal/repository/redis"
	"github.com/njprem/Holiday_planner_BackEnd/internal/service"
	"github.com/njprem/Holiday_planner_BackEnd/internal/transport/ai"
	"github.com/njprem/Holiday_planner_BackEnd/internal/transport/geoip"
	httpx "github.com/njprem/Holiday_planner_BackEnd/internal/transport/http"
	"github.com/njprem/Holiday_planner_BackEnd/internal/transport/mail"
	"github.com/njprem/Holiday_planner_BackEnd/internal/transport/places"
	"github.com/njprem/Holiday_planner_BackEnd/internal/util"
)

func main() {
	cfg := config.Load()

	logCloser := logging.Setup(cfg.LogstashTCPAddr)
	defer logCloser.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// hotels: postgres when configured, the built-in catalogue otherwise
	var hotels ports.HotelRepository = memory.NewHotelRepo()
	if cfg.DatabaseURL != "" {
		db, err := postgres.New(cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("db connect: %v", err)
		}
		defer db.Close()
		hotels = postgres.NewHotelRepo(db)
	}

	// suggestion cache
	var cache ports.SuggestionCache
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		defer rdb.Close()
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Printf("redis ping %s: %v (suggestions will not be cached)", cfg.RedisAddr, err)
		} else {
			cache = redis.NewSuggestionCache(rdb)
		}
	}

	// generated image storage
	var storage ports.ObjectStorage
	if cfg.MinIOEndpoint != "" {
		mc, err := minio.NewClient(cfg.MinIOEndpoint, cfg.MinIOAccessKey, cfg.MinIOSecretKey, cfg.MinIOUseSSL)
		if err != nil {
			log.Fatalf("minio: %v", err)
		}
		store := minio.NewStorage(mc, cfg.MinIOPublicURL)
		if err := store.EnsureBucket(ctx, cfg.MinIOBucketImages); err != nil {
			log.Fatalf("minio bucket %s: %v", cfg.MinIOBucketImages, err)
		}
		storage = store
	}

	// AI
	var (
		suggester ports.SuggestionProvider
		generator ports.ImageGenerator
	)
	if cfg.OpenAIAPIKey != "" {
		oc := ai.NewOpenAIClient(ai.Config{APIKey: cfg.OpenAIAPIKey, BaseURL: cfg.OpenAIBaseURL})
		suggester = ai.NewSuggestionClient(oc, cfg.OpenAIChatModel)
		generator = ai.NewImageClient(oc, cfg.OpenAIImageModel)
	} else {
		log.Printf("OPENAI_API_KEY not set; suggestions and image generation disabled")
	}

	var photos ports.PhotoResolver
	if cfg.GoogleMapsAPIKey != "" {
		pc, err := places.NewPhotoClient(ctx, cfg.GoogleMapsAPIKey)
		if err != nil {
			log.Fatalf("places: %v", err)
		}
		photos = pc
	}

	var mailer ports.ContactMailer
	if m := mail.NewContactMailer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.SMTPFrom, cfg.ContactInbox, cfg.SMTPUseTLS); m.Configured() {
		mailer = m
	}

	var verifier service.IdentityVerifier
	if cfg.GoogleAudience != "" {
		verifier = service.NewGoogleIdentityVerifier(cfg.GoogleAudience)
	}

	// services
	sessions := service.NewSessionService(util.NewJWTManager(cfg.JWTSecret, cfg.SessionTTL), verifier)
	resolver := service.NewBookingResolver(service.BookingTargets{
		TaxiURL:   cfg.BookingTaxiURL,
		FoodURL:   cfg.BookingFoodURL,
		MovieURL:  cfg.BookingMovieURL,
		FlightURL: cfg.BookingFlightURL,
		TrainURL:  cfg.BookingTrainURL,
		BusURL:    cfg.BookingBusURL,
	})
	itinerary := service.NewItineraryService(sessions, resolver)
	planner := service.NewPlannerService(suggester, cache, geoip.NewClient(cfg.GeoIPBaseURL), service.PlannerConfig{
		CacheTTL: cfg.SuggestionCacheTTL,
	})
	images := service.NewImageService(generator, storage, service.ImageServiceConfig{
		Bucket:         cfg.MinIOBucketImages,
		MaxDimension:   cfg.ImageMaxDimension,
		ImageProcessor: media.NewImagingProcessor(cfg.ImageMaxDimension),
	})
	limiter := httpx.NewRateLimiter(cfg.RateLimitPerMinute, cfg.RateLimitBurst)

	go sessions.RunJanitor(ctx, cfg.SessionSweepInterval)

	// routes
	e := httpx.NewRouter(cfg.AllowOrigins)
	httpx.RegisterPages(e)
	httpx.RegisterSwagger(e)
	httpx.RegisterSessions(e, sessions)
	httpx.RegisterPlanner(e, planner, images, sessions, limiter)
	httpx.RegisterItinerary(e, sessions, itinerary)
	httpx.RegisterHotels(e, service.NewHotelService(hotels))
	httpx.RegisterPhotos(e, service.NewPhotoService(photos))
	httpx.RegisterContact(e, service.NewContactService(mailer), limiter)

	go func() {
		log.Printf("HTTP server listening on :%s", cfg.Port)
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("start: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("server shutdown: %v", err)
	}
	log.Println("Server stopped.")
}
