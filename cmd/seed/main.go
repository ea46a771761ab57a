package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"fitcoach/internal/utils"

	"github.com/joho/godotenv"
)

func init() {
	// Load .env file from project root
	if err := godotenv.Load(); err != nil {
		// Try loading from parent directory (in case running from cmd/seed/)
		if err := godotenv.Load("../../.env"); err != nil {
			log.Printf("Warning: No .env file found: %v", err)
		}
	}
}

func main() {
	seedCmd := flag.NewFlagSet("seed", flag.ExitOnError)
	numUsers := seedCmd.Int("users", utils.DefaultNumUsers, "Number of demo users to create")
	logsPerUser := seedCmd.Int("logs", utils.DefaultLogsPerUser, "Number of daily logs per demo user")

	deleteCmd := flag.NewFlagSet("delete", flag.ExitOnError)
	deleteStart := deleteCmd.Int("start", 0, "Start user ID for deletion")
	deleteEnd := deleteCmd.Int("end", 1000, "End user ID for deletion")

	if len(os.Args) < 2 {
		printHelp()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "seed":
		seedCmd.Parse(os.Args[2:])

		log.Printf("Starting demo seeder with %d users", *numUsers)
		if err := utils.SeedUsers(*numUsers, *logsPerUser); err != nil {
			log.Fatalf("Error seeding users: %v", err)
		}

	case "delete":
		deleteCmd.Parse(os.Args[2:])

		log.Printf("Deleting demo users in range %d-%d", *deleteStart, *deleteEnd)
		if err := utils.DeleteUsers(*deleteStart, *deleteEnd); err != nil {
			log.Fatalf("Error deleting users: %v", err)
		}

	case "clear":
		log.Println("Clearing all data...")
		if err := utils.ClearAllData(); err != nil {
			log.Fatalf("Error clearing data: %v", err)
		}

	case "stats":
		count, err := utils.GetUserCount()
		if err != nil {
			log.Fatalf("Error getting stats: %v", err)
		}
		log.Printf("Total users: %d", count)

	case "help":
		printHelp()

	default:
		fmt.Printf("Unknown subcommand: %s\n", os.Args[1])
		printHelp()
		os.Exit(1)
	}
}

func printHelp() {
	fmt.Println("Database utility tool for FitCoach")
	fmt.Println("\nUsage:")
	fmt.Println("  db-tool COMMAND [OPTIONS]")
	fmt.Println("\nCommands:")
	fmt.Println("  seed         Create demo users with randomized log history")
	fmt.Println("               Options:")
	fmt.Println("                 --users=N  Number of demo users to create (default: 50)")
	fmt.Println("                 --logs=N   Number of daily logs per user (default: 10)")
	fmt.Println("")
	fmt.Println("  delete       Delete users (and their data) by ID range")
	fmt.Println("               Options:")
	fmt.Println("                 --start=N  Start user ID (default: 0)")
	fmt.Println("                 --end=N    End user ID (default: 1000)")
	fmt.Println("")
	fmt.Println("  clear        Clear all data from the database")
	fmt.Println("")
	fmt.Println("  stats        Show user count")
	fmt.Println("")
	fmt.Println("  help         Show this help message")
	fmt.Println("")
	fmt.Println("Examples:")
	fmt.Println("  db-tool seed --users=100 --logs=14")
	fmt.Println("  db-tool delete --start=1 --end=100")
	fmt.Println("")
	fmt.Println("Environment variables:")
	fmt.Println("  DB_HOST      Database host (default: localhost)")
	fmt.Println("  DB_PORT      Database port (default: 5432)")
	fmt.Println("  DB_USER      Database user (default: postgres)")
	fmt.Println("  DB_PASSWORD  Database password (default: postgres)")
	fmt.Println("  DB_NAME      Database name (default: fitcoach)")
	fmt.Println("  DB_SSLMODE   Database SSL mode (default: disable)")
}
