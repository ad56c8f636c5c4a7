// Command seed fills the configured store with fake users and posts.
package main

import (
	"context"
	"flag"
	"log"
	"os"

	"postboard/internal/auth"
	"postboard/internal/bootstrap"
	"postboard/internal/config"
	"postboard/internal/middleware"
	"postboard/internal/seed"
	"postboard/internal/service"
)

func main() {
	numUsers := flag.Int("users", 10, "Number of users to create")
	numPosts := flag.Int("posts", 40, "Number of posts to create")
	password := flag.String("password", seed.DefaultPassword, "Password for every seeded user")
	randSeed := flag.Int64("seed", 0, "Random seed for reproducible data (0 = random)")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	middleware.SetupLogger(cfg.Env, os.Stdout)

	ctx := context.Background()
	rt, err := bootstrap.InitRuntime(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize runtime: %v", err)
	}
	defer func() { _ = rt.Close(ctx) }()

	tokens := auth.NewJWTCodec(cfg.JWTSecret, cfg.TokenTTL)
	authSvc := service.NewAuthService(rt.Users, auth.NewBcryptHasher(cfg.BcryptCost), tokens)
	postSvc := service.NewPostService(rt.Posts, rt.Users)

	log.Printf("Target: %d users, %d posts", *numUsers, *numPosts)
	if _, err := seed.NewSeeder(authSvc, postSvc).Run(ctx, seed.Options{
		NumUsers: *numUsers,
		NumPosts: *numPosts,
		Password: *password,
		Seed:     *randSeed,
	}); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Printf("All seeded users have the password: %s", *password)
}
