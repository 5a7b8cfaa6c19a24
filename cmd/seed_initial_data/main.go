package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"quiz-room/cmd/seed_initial_data/internal/seedmodels"
	"quiz-room/internal/config"
	"quiz-room/internal/database"
	"quiz-room/internal/domain"
	"quiz-room/internal/logger"
	"quiz-room/internal/repository"
)

const (
	defaultSeedFilePath = "configs/seed_data/quizzes.yaml"
)

func main() {
	seedFilePath := flag.String("file", defaultSeedFilePath, "path to the YAML seed file")
	flag.Parse()

	ctx := context.Background()
	cfg, err := config.LoadConfig()
	if err != nil {
		// If logger is not initialized yet, use fmt
		fmt.Printf("Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Initialize(cfg.Logger); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	log := logger.Get()

	log.Info("Starting initial data seeding process...")
	db, err := database.NewSQLXPostgresDB(cfg.DB, cfg.GetDSN())
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	log.Info("Loading seed data from file", zap.String("path", *seedFilePath))
	byteValue, err := os.ReadFile(*seedFilePath)
	if err != nil {
		log.Fatal("Failed to read seed file", zap.String("path", *seedFilePath), zap.Error(err))
	}
	seedFile, err := seedmodels.Parse(byteValue)
	if err != nil {
		log.Fatal("Failed to unmarshal seed data", zap.Error(err))
	}
	log.Info("Successfully parsed seed data", zap.Int("quizzes_loaded", len(seedFile.Quizzes)))

	txManager := repository.NewTxManager(db)
	seedRepo := repository.NewSeedRepository(db)

	failed := 0
	for _, sq := range seedFile.Quizzes {
		if err := seedQuiz(ctx, txManager, seedRepo, log, sq); err != nil {
			failed++
			log.Error("Error seeding quiz, transaction rolled back", zap.String("title", sq.Title), zap.Error(err))
		}
	}
	if failed > 0 {
		log.Fatal("Initial data seeding finished with errors", zap.Int("failed", failed))
	}
	log.Info("Initial data seeding process completed.")
}

// seedQuiz writes one quiz and its questions in a single transaction.
func seedQuiz(
	ctx context.Context,
	txManager domain.TransactionManager,
	seedRepo *repository.SeedRepository,
	log *zap.Logger,
	sq seedmodels.SeedQuiz,
) error {
	quiz, questions, err := sq.ToDomain()
	if err != nil {
		return err
	}

	return txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		quizID, err := seedRepo.UpsertQuiz(txCtx, quiz)
		if err != nil {
			return err
		}
		if err := seedRepo.ReplaceQuestions(txCtx, quizID, questions); err != nil {
			return err
		}
		log.Info("Seeded quiz",
			zap.String("id", quizID),
			zap.String("title", quiz.Title),
			zap.Int("questions", len(questions)))
		return nil
	})
}
