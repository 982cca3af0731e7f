// Command createsuperuser creates an active staff account with superuser
// rights.
//
//	createsuperuser -email admin@example.com -password s3cret-pass
//
// The password may also be supplied through SUPERUSER_PASSWORD.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/beauty-booking/internal/config"
	dbpkg "github.com/BruksfildServices01/beauty-booking/internal/db"
	infraRepo "github.com/BruksfildServices01/beauty-booking/internal/infra/repository"
	"github.com/BruksfildServices01/beauty-booking/internal/logger"
	"github.com/BruksfildServices01/beauty-booking/internal/models"
	ucIdentity "github.com/BruksfildServices01/beauty-booking/internal/usecase/identity"
)

func main() {
	email := flag.String("email", "", "email address of the new superuser")
	password := flag.String("password", os.Getenv("SUPERUSER_PASSWORD"), "password (defaults to $SUPERUSER_PASSWORD)")
	flag.Parse()

	cfg := config.MustLoad()

	log, err := logger.Init(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	u, err := run(context.Background(), cfg, *email, *password)
	if err != nil {
		log.Error("create superuser failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}

	fmt.Printf("superuser %s created (id %d)\n", u.Email, u.ID)
}

func run(ctx context.Context, cfg *config.Config, email, password string) (*models.User, error) {
	db, err := dbpkg.NewDB(cfg)
	if err != nil {
		return nil, err
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}

	users := ucIdentity.NewCreateUser(infraRepo.NewUserGormRepository(db), nil)
	return ucIdentity.NewCreateSuperuser(users).Execute(ctx, email, password)
}
