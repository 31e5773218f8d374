package main

import (
	"context"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/somework/landing-api/infrastructure/database/postgres"
	"github.com/somework/landing-api/infrastructure/repository"
	"github.com/somework/landing-api/internal/config"
	"github.com/somework/landing-api/internal/usecases/authenticating"
)

const (
	passwordLength     = 16
	passwordCharacters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789!@#$%&*"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
	logrus.Info("Iniciando script de migração...")

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}
	defer conn.Close()

	startTime := time.Now()
	applied, err := postgres.Migrate(ctx, conn, postgres.Migrations)
	if err != nil {
		logrus.WithError(err).WithField("applied", applied).Fatal("Erro ao aplicar migrations")
	}

	logrus.WithFields(logrus.Fields{
		"applied":  applied,
		"duration": time.Since(startTime).String(),
	}).Info("Migrations aplicadas")

	seedAdmin(cfg, conn)
}

// seedAdmin cria o primeiro administrador a partir de ADMIN_NAME, ADMIN_EMAIL e ADMIN_PASSWORD.
// Sem ADMIN_PASSWORD uma senha aleatória é gerada e exibida uma única vez.
func seedAdmin(cfg *config.Config, conn *postgres.Connection) {
	email := viper.GetString("ADMIN_EMAIL")
	if email == "" {
		logrus.Info("ADMIN_EMAIL não informado, nenhum administrador criado")
		return
	}

	name := viper.GetString("ADMIN_NAME")
	if name == "" {
		name = "Admin"
	}

	password := viper.GetString("ADMIN_PASSWORD")
	generated := false
	if password == "" {
		var err error
		password, err = gonanoid.Generate(passwordCharacters, passwordLength)
		if err != nil {
			logrus.WithError(err).Fatal("Erro ao gerar senha do administrador")
		}
		generated = true
	}

	authenticator := authenticating.NewService(repository.NewUserRepository(conn), cfg)

	user, created, err := authenticator.SeedAdmin(name, email, password)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao criar administrador")
	}

	if !created {
		logrus.WithField("user_id", user.ID).Info("Administrador já existe, nada a fazer")
		return
	}

	fields := logrus.Fields{"user_id": user.ID, "email": user.Email}
	if generated {
		fields["password"] = password
	}
	logrus.WithFields(fields).Info("Administrador criado")
}
