// Command tokengen mints bearer tokens for local development against the
// same HMAC secret the server reads.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/GlebRadaev/wagerhall/internal/domain"
	"github.com/GlebRadaev/wagerhall/pkg/auth"
)

type options struct {
	Secret  string        `env:"JWT_SECRET" envDefault:"wagerhall-dev-secret"`
	Account string        `env:"TOKEN_ACCOUNT"`
	Role    string        `env:"TOKEN_ROLE" envDefault:"user"`
	TTL     time.Duration `env:"TOKEN_TTL"  envDefault:"24h"`
}

func main() {
	opts := options{}
	if err := env.Parse(&opts); err != nil {
		log.Fatal().Err(err).Msg("Can't read environment")
	}
	flag.StringVar(&opts.Secret, "s", opts.Secret, "HMAC secret")
	flag.StringVar(&opts.Account, "account", opts.Account, "account id, random when empty")
	flag.StringVar(&opts.Role, "role", opts.Role, "user or admin")
	flag.DurationVar(&opts.TTL, "ttl", opts.TTL, "token lifetime")
	flag.Parse()

	accountID := uuid.New()
	if opts.Account != "" {
		id, err := uuid.Parse(opts.Account)
		if err != nil {
			log.Fatal().Err(err).Msg("Invalid account id")
		}
		accountID = id
	}
	if opts.Role != domain.RoleUser && opts.Role != domain.RoleAdmin {
		log.Fatal().Str("role", opts.Role).Msg("Unsupported role")
	}

	token, err := auth.NewJWTService(opts.Secret).GenerateJWT(accountID, opts.Role, time.Now().Add(opts.TTL))
	if err != nil {
		log.Fatal().Err(err).Msg("Can't sign token")
	}
	fmt.Fprintln(os.Stderr, "account:", accountID)
	fmt.Println(token)
}
