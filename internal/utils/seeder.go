package utils

import (
	"fmt"
	"log"
	mathrand "math/rand"
	"os"
	"time"

	"fitcoach/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const (
	DefaultNumUsers    = 50
	DefaultLogsPerUser = 10
)

var demoGeographies = []string{"Jakarta", "Singapore", "Bandung", "Kuala Lumpur", "Surabaya", "Bangkok"}

var demoGoals = []string{"lose weight", "build muscle", "improve endurance", "stay active"}

func connectToDatabase() (*gorm.DB, error) {
	dbHost := getEnv("DB_HOST", "localhost")
	dbPort := getEnv("DB_PORT", "5432")
	dbUser := getEnv("DB_USER", "postgres")
	dbPassword := getEnv("DB_PASSWORD", "postgres")
	dbName := getEnv("DB_NAME", "fitcoach")
	dbSSLMode := getEnv("DB_SSLMODE", "disable")

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		dbHost, dbUser, dbPassword, dbName, dbPort, dbSSLMode)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database connection: %v", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(50)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	return db, nil
}

// SeedUsers creates numUsers demo users, each with a randomized recent log
// history and a coaching profile, so the plan pipeline has data to chew on.
func SeedUsers(numUsers, logsPerUser int) error {
	db, err := connectToDatabase()
	if err != nil {
		return err
	}

	log.Println("Connected to database successfully")
	log.Printf("Starting to seed %d users with %d logs each", numUsers, logsPerUser)

	startTime := time.Now()
	r := mathrand.New(mathrand.NewSource(time.Now().UnixNano()))

	batchSize := 100
	for i := 0; i < numUsers; i += batchSize {
		end := i + batchSize
		if end > numUsers {
			end = numUsers
		}

		var users []models.User
		for j := i; j < end; j++ {
			users = append(users, generateUser(logsPerUser, r))
		}

		if err := db.CreateInBatches(&users, 100).Error; err != nil {
			return fmt.Errorf("failed to create users batch %d-%d: %v", i, end-1, err)
		}

		for _, user := range users {
			profile := generateProfile(user.ID, r)
			if err := db.Create(&profile).Error; err != nil {
				return fmt.Errorf("failed to create profile for user %d: %v", user.ID, err)
			}
		}

		log.Printf("Created users %d-%d", i, end-1)
	}

	elapsed := time.Since(startTime)
	log.Printf("✅ Successfully created %d users in %s", numUsers, elapsed)
	return nil
}

// DeleteUsers removes users in the given id range together with their logs,
// profiles and recommendations. Children go first; migrations run without
// foreign key constraints, so nothing cascades on its own.
func DeleteUsers(startID, endID int) error {
	db, err := connectToDatabase()
	if err != nil {
		return err
	}

	if err := db.Unscoped().Where("user_id BETWEEN ? AND ?", startID, endID).Delete(&models.Recommendation{}).Error; err != nil {
		return fmt.Errorf("error deleting recommendations: %v", err)
	}
	if err := db.Unscoped().Where("user_id BETWEEN ? AND ?", startID, endID).Delete(&models.DailyLog{}).Error; err != nil {
		return fmt.Errorf("error deleting daily logs: %v", err)
	}
	if err := db.Unscoped().Where("user_id BETWEEN ? AND ?", startID, endID).Delete(&models.UserProfile{}).Error; err != nil {
		return fmt.Errorf("error deleting profiles: %v", err)
	}

	result := db.Unscoped().Where("id BETWEEN ? AND ?", startID, endID).Delete(&models.User{})
	if result.Error != nil {
		return fmt.Errorf("error deleting users: %v", result.Error)
	}

	log.Printf("✅ Deleted %d users", result.RowsAffected)
	return nil
}

// ClearAllData wipes every table. Delete order respects ownership.
func ClearAllData() error {
	db, err := connectToDatabase()
	if err != nil {
		return err
	}

	tables := []interface{}{
		&models.Recommendation{},
		&models.DailyLog{},
		&models.UserProfile{},
		&models.User{},
	}

	for _, table := range tables {
		if err := db.Unscoped().Where("1 = 1").Delete(table).Error; err != nil {
			return fmt.Errorf("error clearing table %T: %v", table, err)
		}
	}

	log.Println("✅ All tables cleared successfully")
	return nil
}

func GetUserCount() (int64, error) {
	db, err := connectToDatabase()
	if err != nil {
		return 0, err
	}

	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count users: %v", err)
	}

	return count, nil
}

// ==================== HELPER FUNCTIONS ====================

func generateUser(logsPerUser int, r *mathrand.Rand) models.User {
	return models.User{
		Weight:    55 + r.Float64()*40,
		Height:    150 + r.Float64()*45,
		Age:       18 + r.Intn(48),
		Geography: demoGeographies[r.Intn(len(demoGeographies))],
		DailyLogs: generateLogs(logsPerUser, r),
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

func generateLogs(count int, r *mathrand.Rand) []models.DailyLog {
	logs := make([]models.DailyLog, 0, count)
	for i := count; i > 0; i-- {
		logs = append(logs, models.DailyLog{
			Calories:      1500 + r.Intn(1500),
			ActivityLevel: 20 + r.Intn(70),
			LoggedAt:      time.Now().AddDate(0, 0, -i),
		})
	}
	return logs
}

func generateProfile(userID uint, r *mathrand.Rand) models.UserProfile {
	goal := demoGoals[r.Intn(len(demoGoals))]
	targetWeight := 50 + r.Float64()*40

	return models.UserProfile{
		UserID:       userID,
		Goal:         &goal,
		TargetWeight: &targetWeight,
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
