package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"medrental/internal/auth"
	"medrental/internal/cart"
	"medrental/internal/catalog"
	"medrental/internal/checkout"
	"medrental/internal/config"
	"medrental/internal/db"
	"medrental/internal/httpserver"
	"medrental/internal/order"
	"medrental/internal/store"
)

func main() {
	_ = godotenv.Load()
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()
	kv, dbpool, err := buildStore(ctx, cfg, logger)
	if err != nil {
		logger.Fatalf("init store: %v", err)
	}
	if dbpool != nil {
		defer dbpool.Close()
	}

	ledger := order.NewLedger(kv, logger)
	if err := ledger.Load(ctx); err != nil {
		logger.Fatalf("load orders: %v", err)
	}
	cartSvc := cart.New(kv, ledger, logger)
	if err := cartSvc.Load(ctx); err != nil {
		logger.Fatalf("load cart: %v", err)
	}

	machine := checkout.NewMachine(cartSvc, checkout.NewSimulatedProcessor(cfg.PaymentDelay), logger)
	authSvc, err := auth.New(auth.DefaultCredentials)
	if err != nil {
		logger.Fatalf("init auth: %v", err)
	}

	srv, err := httpserver.New(cfg.HTTPAddr, logger, dbpool, cfg.CORSOrigins, httpserver.Deps{
		Catalog:  catalog.Default(),
		Cart:     cartSvc,
		Checkout: machine,
		Ledger:   ledger,
		Auth:     authSvc,
	})
	if err != nil {
		logger.Fatalf("init server: %v", err)
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}

// buildStore selects the persistence backend. The pool is non-nil only for
// postgres; /readyz pings it when present.
func buildStore(ctx context.Context, cfg config.Config, logger *log.Logger) (store.Store, *pgxpool.Pool, error) {
	switch cfg.StoreBackend {
	case "redis":
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := client.Ping(ctx).Err(); err != nil {
			return nil, nil, err
		}
		logger.Printf("using redis store at %s", cfg.RedisAddr)
		return store.NewRedis(client), nil, nil
	case "postgres":
		pool, err := db.Connect(ctx, cfg.DBConnString)
		if err != nil {
			return nil, nil, err
		}
		logger.Printf("using postgres store")
		return store.NewPostgres(pool), pool, nil
	default:
		logger.Printf("using in-memory store")
		return store.NewMemory(), nil, nil
	}
}
