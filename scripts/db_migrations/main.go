package main

import (
	"github.com/sirupsen/logrus"

	server_config "github.com/carson-networks/ledger-server/internal/config"
	"github.com/carson-networks/ledger-server/internal/storage"
)

func main() {
	env, err := server_config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("ProcessEnvironmentVariables")
		return
	}

	if err := storage.RunMigrations(env.PostgresConnectionString()); err != nil {
		logrus.WithError(err).Fatal("storage.RunMigrations")
		return
	}
}
