// Command editor-token prints a signed bearer token that unlocks question
// creation and deletion.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/gokatarajesh/trivia-api/internal/auth/jwt"
	"github.com/gokatarajesh/trivia-api/internal/config"
)

func main() {
	var (
		subject = flag.String("subject", "editor", "Token subject, usually the editor's handle")
		ttl     = flag.Duration("ttl", 0, "Token lifetime; defaults to EDITOR_TOKEN_TTL")
	)
	flag.Parse()

	log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()

	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load("configs/.env")
	}

	issuer, editor, err := config.LoadEditor()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load editor configuration")
	}

	lifetime := editor.TokenTTL
	if *ttl > 0 {
		lifetime = *ttl
	}

	tokens := jwt.NewManager(jwt.TokenConfig{
		Secret: []byte(editor.JWTSecret),
		TTL:    lifetime,
		Issuer: issuer,
	})
	token, err := tokens.Generate(*subject, jwt.RoleEditor)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to sign token")
	}

	log.Info().
		Str("subject", *subject).
		Time("expires_at", time.Now().Add(lifetime)).
		Msg("editor token issued")
	fmt.Println(token)
}
