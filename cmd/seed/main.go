// Command seed populates the database with demo data for development.
package main

import (
	"flag"
	"log"

	"github.com/sid2487/Instagram-Clone/internal/config"
	"github.com/sid2487/Instagram-Clone/internal/database"
	"github.com/sid2487/Instagram-Clone/internal/middleware"
	"github.com/sid2487/Instagram-Clone/internal/seed"
)

func main() {
	numUsers := flag.Int("users", 0, "number of users to create (0 uses the preset)")
	numPosts := flag.Int("posts", 0, "number of posts to create (0 uses the preset)")
	clean := flag.Bool("clean", false, "truncate existing data before seeding")
	dryRun := flag.Bool("dry-run", false, "log what would be created without writing")
	skipBcrypt := flag.Bool("skip-bcrypt", false, "store plaintext passwords (dev only)")
	maxDays := flag.Int("max-days", 90, "spread post timestamps over this many days")
	presetPath := flag.String("preset", "", "path to a YAML preset file")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if cfg.Env == "production" || cfg.Env == "prod" {
		log.Fatal("Refusing to seed a production database")
	}

	middleware.InitMiddleware(cfg)

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	preset := seed.DefaultPreset()
	if *presetPath != "" {
		preset, err = seed.LoadPreset(*presetPath)
		if err != nil {
			log.Fatalf("Failed to load preset: %v", err)
		}
		log.Printf("Using preset %q", preset.Name)
	}

	opts := seed.Options{
		NumUsers:    *numUsers,
		NumPosts:    *numPosts,
		ShouldClean: *clean,
		DryRun:      *dryRun,
		SkipBcrypt:  *skipBcrypt,
		MaxDays:     *maxDays,
	}

	if err := seed.SeedWithPreset(db, opts, preset); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
}
