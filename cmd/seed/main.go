package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/AnasIqbal56/Banking-App/internal/configs"
	"github.com/AnasIqbal56/Banking-App/pkg"
	"github.com/AnasIqbal56/Banking-App/pkg/database"
	"github.com/AnasIqbal56/Banking-App/pkg/models"
	"github.com/AnasIqbal56/Banking-App/pkg/repositories"
	"github.com/AnasIqbal56/Banking-App/pkg/utils"
)

var billTypes = []pkg.BillType{
	pkg.BillTypeElectricity,
	pkg.BillTypeWater,
	pkg.BillTypeInternet,
	pkg.BillTypePhone,
	pkg.BillTypeGas,
}

// main seeds demo users, accounts, and bills into the database.
// It initializes logging, loads config, connects to the database, runs
// migrations, and performs the inserts.
func main() {
	noOfUsers := flag.Int("noOfUsers", 10, "Number of users to seed")
	maxAccountsPerUser := flag.Int("maxAccounts", 2, "Max accounts per user")
	billsPerUser := flag.Int("billsPerUser", 3, "Bills per user")
	minAccountBalance := flag.Float64("minBalance", 700.0, "Min account balance")
	maxAccountBalance := flag.Float64("maxBalance", 1000.0, "Max account balance")
	password := flag.String("password", "changeme123", "Password for seeded users")

	flag.Parse()

	// Initialize logger
	pkg.InitLogger()
	logger := pkg.Logger
	defer logger.Sync()

	cfg, err := configs.Load(logger)
	if err != nil {
		logger.Fatal("failed to load config", zap.Error(err))
	}

	// Initialize postgres db
	dbConfig := database.Config{
		PrimaryDSN: cfg.PrimaryDbAddr,
		MaxConns:   cfg.MaxDbCons,
		MinConns:   cfg.MinDbCons,
	}
	if !utils.IsEmpty(cfg.ReplicaDbAddr) {
		dbConfig.ReplicaDSNs = []string{cfg.ReplicaDbAddr}
	}

	ctx := context.Background()
	db, closer, err := database.New(ctx, logger, dbConfig)
	if err != nil {
		logger.Fatal("failed to init DB", zap.Error(err))
	}
	defer closer()

	// Initialize db migrations
	if err = database.RunMigrations(logger, cfg.PrimaryDbAddr); err != nil {
		logger.Fatal("failed to run database migrations", zap.Error(err))
	}

	userRepo := repositories.NewUserRepository(db)
	accountRepo := repositories.NewAccountRepository(db)
	billRepo := repositories.NewBillRepository(db)

	minBal := *minAccountBalance
	maxBal := *maxAccountBalance
	if minBal > maxBal {
		// swap to be safe
		minBal, maxBal = maxBal, minBal
	}

	passwordHash, err := utils.HashPassword(*password)
	if err != nil {
		logger.Fatal("failed to hash password", zap.Error(err))
	}

	for i := 1; i <= *noOfUsers; i++ {
		userID := uuid.New()
		logger.Info("Creating user", zap.Int("i", i), zap.Any("userId", userID))

		err = userRepo.Create(ctx, models.User{
			ID:           userID,
			Email:        fmt.Sprintf("user_%d@example.com", i),
			FullName:     fmt.Sprintf("Demo User %d", i),
			PasswordHash: passwordHash,
			CreatedAt:    time.Now().UTC(),
		})
		if err != nil {
			logger.Fatal("failed to seed user", zap.Error(err))
		}

		noOfAccounts := rand.Intn(*maxAccountsPerUser) + 1
		var firstAccountNumber string
		for j := 1; j <= noOfAccounts; j++ {
			number, err := utils.RandomAccountNumber()
			if err != nil {
				logger.Fatal("failed to generate account number", zap.Error(err))
			}
			if firstAccountNumber == "" {
				firstAccountNumber = number
			}

			bal := minBal + rand.Float64()*(maxBal-minBal)
			err = accountRepo.Create(ctx, models.Account{
				ID:            uuid.New(),
				UserID:        userID,
				AccountNumber: number,
				AccountName:   fmt.Sprintf("Checking %d", j),
				Balance:       decimal.NewFromFloat(bal).Round(2),
				CreatedAt:     time.Now().UTC(),
			})
			if err != nil {
				logger.Fatal("failed to seed account", zap.Error(err))
			}
		}

		for k := 0; k < *billsPerUser; k++ {
			// Mix of upcoming and already-due bills so the overdue flip has work to do.
			dueDate := time.Now().UTC().AddDate(0, 0, rand.Intn(30)-7)
			err = billRepo.Create(ctx, models.Bill{
				ID:            uuid.New(),
				UserID:        userID,
				BillType:      billTypes[rand.Intn(len(billTypes))],
				ProviderName:  fmt.Sprintf("Provider %d", k+1),
				Amount:        decimal.NewFromFloat(20.0 + rand.Float64()*180.0).Round(2),
				DueDate:       dueDate,
				AccountNumber: firstAccountNumber,
				Status:        pkg.BillStatusPending,
				CreatedAt:     time.Now().UTC(),
			})
			if err != nil {
				logger.Fatal("failed to seed bill", zap.Error(err))
			}
		}
	}

	logger.Info("Data seeded successfully")
}
