package main

import (
	"context"
	"log"
	"os"

	"log/slog"

	"github.com/joho/godotenv"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"

	"github.com/chetanraj-2002/portfolio/internal/config"
	apphttp "github.com/chetanraj-2002/portfolio/internal/http"
	"github.com/chetanraj-2002/portfolio/internal/mailer"
	"github.com/chetanraj-2002/portfolio/internal/storage"
)

func main() {
	// .env is for development; prod uses real env vars
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := gorm.Open(mysql.Open(cfg.DBDSN), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	st, err := storage.FromEnv(context.Background())
	if err != nil {
		log.Fatalf("failed to init storage: %v", err)
	}
	logger.Info("storage ready", "driver", st.Driver)

	mail := mailer.NewSMTPMailer(cfg.SMTP)

	r := apphttp.NewRouter(logger, db, cfg, st.Storage, mail)
	logger.Info("listening", "addr", cfg.Addr)
	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal(err)
	}
}
