// Command admintoken issues a bearer token for the admin API.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"product-relations-backend/internal/auth"
	"product-relations-backend/internal/config"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	subject := flag.String("subject", "", "token subject, usually the operator's email")
	ttl := flag.Duration("ttl", auth.DefaultTokenTTL, "token lifetime")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatal("Failed to load configuration: ", err)
	}

	service, err := auth.NewAuthService(auth.NewAuthConfig(cfg.JWTSecret))
	if err != nil {
		logrus.Fatal("Failed to create auth service: ", err)
	}

	token, err := service.GenerateToken(*subject, auth.RoleAdmin, *ttl)
	if err != nil {
		logrus.Fatal("Failed to issue token: ", err)
	}

	fmt.Fprintln(os.Stdout, token)
	logrus.WithFields(logrus.Fields{
		"subject":    *subject,
		"expires_at": time.Now().Add(*ttl).Format(time.RFC3339),
	}).Info("Issued admin token")
}
