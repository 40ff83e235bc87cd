package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rachell444/nova-ecommerce/internal/cart"
	"github.com/rachell444/nova-ecommerce/internal/catalog"
	"github.com/rachell444/nova-ecommerce/internal/checkout"
	h "github.com/rachell444/nova-ecommerce/internal/http"
)

type Config struct {
	HTTPPort        string
	RedisAddr       string
	RedisPassword   string
	KafkaBrokers    []string
	KafkaTopic      string
	PaymentDelay    time.Duration
	SearchDelay     time.Duration
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
}

func loadConfig() *Config {
	return &Config{
		HTTPPort:        getEnv("HTTP_PORT", "8080"),
		RedisAddr:       getEnv("REDIS_ADDR", ""),
		RedisPassword:   getEnv("REDIS_PASSWORD", ""),
		KafkaBrokers:    splitList(getEnv("KAFKA_BROKERS", "")),
		KafkaTopic:      getEnv("KAFKA_TOPIC", "order-completed"),
		PaymentDelay:    getDurationEnv("PAYMENT_DELAY", 1500*time.Millisecond),
		SearchDelay:     getDurationEnv("SEARCH_DELAY", 500*time.Millisecond),
		RequestTimeout:  30 * time.Second,
		ShutdownTimeout: 10 * time.Second,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
		log.Printf("invalid duration for %s, using default %v", key, defaultValue)
	}
	return defaultValue
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	result := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			result = append(result, p)
		}
	}
	return result
}

func main() {
	cfg := loadConfig()
	ctx := context.Background()

	repo, err := catalog.NewMemoryRepository(catalog.SeedProducts())
	if err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}
	searcher := catalog.NewSearcher(repo, cfg.SearchDelay)

	var cartCache cart.Cache = cart.NopCache{}
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       0,
		})
		defer redisClient.Close()
		if err := redisClient.Ping(ctx).Err(); err != nil {
			log.Fatal("Redis connection failed:", err)
		}
		log.Printf("Redis ping succeeded")
		cartCache = cart.NewRedisCache(redisClient)
	}

	cartService := cart.NewService(cart.NewMemoryStore(), cartCache)

	var publisher checkout.OrderPublisher = checkout.NopPublisher{}
	if len(cfg.KafkaBrokers) > 0 {
		kafkaPublisher := checkout.NewKafkaPublisher(cfg.KafkaTopic, cfg.KafkaBrokers...)
		defer kafkaPublisher.Close()
		publisher = kafkaPublisher
		log.Printf("Publishing completed orders to %s on %v", cfg.KafkaTopic, cfg.KafkaBrokers)
	}

	checkoutService := checkout.NewService(
		cartService,
		checkout.SimulatedGateway{Delay: cfg.PaymentDelay},
		publisher,
	)

	router := h.NewRouter(
		h.RouterConfig{RequestTimeout: cfg.RequestTimeout},
		h.NewProductHandler(repo, cfg.RequestTimeout),
		h.NewSearchHandler(searcher, cfg.RequestTimeout),
		h.NewCartHandler(cartService, repo, cfg.RequestTimeout),
		h.NewCheckoutHandler(checkoutService, cfg.RequestTimeout),
	)

	srv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Storefront listening on :%s", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("HTTP server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Shutdown error: %v", err)
	}
}
