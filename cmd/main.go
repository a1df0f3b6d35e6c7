package main

import (
	"github.com/Techlead-ANKAN/WeightTracker/config"
	"github.com/Techlead-ANKAN/WeightTracker/routes"
	"github.com/Techlead-ANKAN/WeightTracker/services"

	"github.com/sirupsen/logrus"
)

func main() {
	config.LoadEnv()
	config.InitDB()

	authSvc, err := services.NewAuthService()
	if err != nil {
		logrus.WithError(err).Fatal("auth setup failed")
	}

	r := routes.SetupRouter(config.DB, authSvc)
	addr := config.Port()
	logrus.WithField("addr", addr).Info("starting server")
	if err := r.Run(addr); err != nil {
		logrus.WithError(err).Fatal("server exited")
	}
}
