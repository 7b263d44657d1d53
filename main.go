package main

import (
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/banking-server/api"
	"github.com/carson-networks/banking-server/internal/auth"
	"github.com/carson-networks/banking-server/internal/config"
	"github.com/carson-networks/banking-server/internal/ledger"
	"github.com/carson-networks/banking-server/internal/logging"
	"github.com/carson-networks/banking-server/internal/operator"
)

func main() {
	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}

	logger := logging.SetupLogging(envConfig.LogLevel)
	logger.Info("banking-server starting")

	store := ledger.NewStore()

	delegator := operator.NewOperatorDelegator(store, 1)
	delegator.Start()
	defer delegator.Stop()

	authService := auth.NewService(store)

	wg := sync.WaitGroup{}
	wg.Add(1)

	go func() {
		httpRest := api.Rest{
			Logger:   logger,
			Port:     envConfig.Port,
			Store:    store,
			Operator: delegator,
			Auth:     authService,
		}
		httpRest.Serve()
	}()

	wg.Wait()
}
