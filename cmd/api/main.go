package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"gorm.io/gorm"

	cacheadp "publizon-loans/internal/adapter/cache"
	httpadp "publizon-loans/internal/adapter/http"
	idemp "publizon-loans/internal/adapter/middleware"
	"publizon-loans/internal/adapter/repository/mysql"
	"publizon-loans/internal/config"
	"publizon-loans/internal/infrastructure/cache"
	"publizon-loans/internal/infrastructure/cover"
	"publizon-loans/internal/infrastructure/db"
	ucloan "publizon-loans/internal/usecase/loan"
	"publizon-loans/internal/view/loancard"
)

func main() {
	// .env is optional; real deployments set the environment directly
	if err := godotenv.Load(); err == nil {
		log.Println("loaded .env")
	}

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	gdb, err := openDB(cfg)
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}
	defer rdb.Close()

	cards, err := loancard.New(loancard.WithBasePath(cfg.SiteBasePath))
	if err != nil {
		log.Fatalf("templates: %v", err)
	}

	opts := []ucloan.Option{}
	if ttl := cfg.CardCacheTTL(); ttl > 0 {
		opts = append(opts, ucloan.WithCache(cacheadp.NewCardCache(rdb, ttl)))
	}
	loans := ucloan.NewUsecase(
		mysql.NewLoanRepository(gdb),
		cover.NewStyler(cfg.CoverBaseURL, cfg.CoverPlaceholder),
		cards,
		opts...,
	)

	h := httpadp.NewHandler().
		WithCheck("db", func(ctx context.Context) error {
			sqlDB, err := gdb.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		}).
		WithCheck("redis", func(ctx context.Context) error { return rdb.Ping(ctx).Err() })
	lh := httpadp.NewLoanHandler(loans)

	e := echo.New()
	e.HideBanner = true
	e.Validator = httpadp.NewValidator()
	e.Use(middleware.Logger(), middleware.Recover())

	// routes
	e.GET("/health", h.Health)
	e.GET("/loans/:loan_id", lh.GetLoan)
	e.GET("/loans/:loan_id/card", lh.GetLoanCard)
	e.DELETE("/loans/:loan_id/card", lh.InvalidateLoanCard, idemp.IdempotencyMiddleware(rdb, cfg.IdempotencyTTL()))
	e.GET("/patrons/:patron_id/loans", lh.ListPatronLoanCards)
	e.POST("/loan-cards/preview", lh.PreviewCard)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}

func openDB(cfg *config.Config) (*gorm.DB, error) {
	if cfg.DBDriver == "sqlite" {
		gdb, err := db.OpenSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		return gdb, mysql.AutoMigrate(gdb)
	}
	return db.OpenGorm(cfg.MySQLDSN())
}
