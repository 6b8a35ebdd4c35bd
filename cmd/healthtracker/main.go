package main

import (
	"errors"
	"log"
	"net/http"

	adapthttp "healthtracker/internal/adapter/http"
	"healthtracker/internal/adapter/memory"
	"healthtracker/internal/adapter/postgres"
	"healthtracker/internal/app"
	"healthtracker/internal/config"
	"healthtracker/internal/domain"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment variables")
	}
	cfg := config.Load()

	var (
		users domain.UserRepository
		bmis  domain.BmiRepository
		sleep domain.SleepRepository
		water domain.WaterRepository
		tips  domain.HealthTipRepository
	)

	switch cfg.DBType {
	case "memory":
		log.Println("using in-memory database")
		mdb := memory.New()
		users = memory.NewUserRepo(mdb)
		bmis = memory.NewBmiRepo(mdb)
		sleep = memory.NewSleepRepo(mdb)
		water = memory.NewWaterRepo(mdb)
		tips = memory.NewHealthTipRepo(mdb)
	default:
		log.Printf("connecting to postgres at %s:%s/%s", cfg.PGHost, cfg.PGPort, cfg.PGDatabase)
		db, err := postgres.Open(cfg.ConnString())
		if err != nil {
			log.Fatalf("db open: %v", err)
		}
		defer func() { _ = db.Close() }()
		users = postgres.NewUserRepo(db)
		bmis = postgres.NewBmiRepo(db)
		sleep = postgres.NewSleepRepo(db)
		water = postgres.NewWaterRepo(db)
		tips = postgres.NewHealthTipRepo(db)
	}

	userSvc := app.NewUserService(users)
	bmiSvc := app.NewBmiService(bmis, users)
	sleepSvc := app.NewSleepService(sleep, users)
	waterSvc := app.NewWaterService(water, users)
	tipSvc := app.NewHealthTipService(tips)

	h := adapthttp.New(userSvc, bmiSvc, sleepSvc, waterSvc, tipSvc).Handler()
	log.Printf("listening on %s", cfg.Addr)
	if err := http.ListenAndServe(cfg.Addr, h); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}
