package api

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/banking-server/internal/auth"
	"github.com/carson-networks/banking-server/internal/handlers/v1/account"
	authv1 "github.com/carson-networks/banking-server/internal/handlers/v1/auth"
	"github.com/carson-networks/banking-server/internal/handlers/v1/dashboard"
	"github.com/carson-networks/banking-server/internal/handlers/v1/status"
	"github.com/carson-networks/banking-server/internal/handlers/v1/transaction"
	"github.com/carson-networks/banking-server/internal/handlers/v1/transfer"
	"github.com/carson-networks/banking-server/internal/handlers/v1/user"
	"github.com/carson-networks/banking-server/internal/ledger"
	"github.com/carson-networks/banking-server/internal/logging"
	"github.com/carson-networks/banking-server/internal/operator"
)

type Rest struct {
	Logger   *logrus.Logger
	Port     string
	Store    *ledger.Store
	Operator *operator.OperatorDelegator
	Auth     *auth.Service
}

// logDataMiddleware attaches a fresh LogData to every request and emits
// one structured entry per operation on completion.
func logDataMiddleware(logger *logrus.Logger) func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		logData := logging.NewLogData(logger)

		endTimer := logData.AddTiming("duration")
		next(huma.WithValue(ctx, logging.LogDataKey, logData))
		endTimer()

		logData.Log().Infof("Handler.%v.Complete", ctx.Operation().OperationID)
	}
}

func (r *Rest) Serve() {
	statusHandler := status.NewHandler()

	mux := http.NewServeMux()
	mux.HandleFunc("/status", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))

	humaAPI := humago.New(mux, huma.DefaultConfig("banking-server", "1.0.0"))
	humaAPI.UseMiddleware(logDataMiddleware(r.Logger))

	account.NewListAccountsHandler(r.Store).Register(humaAPI)
	account.NewGetAccountHandler(r.Store).Register(humaAPI)
	account.NewUpdateAccountHandler(r.Operator).Register(humaAPI)

	transaction.NewListTransactionsHandler(r.Store).Register(humaAPI)
	transaction.NewCreateTransactionHandler(r.Operator).Register(humaAPI)

	transfer.NewCreateTransferHandler(r.Operator).Register(humaAPI)

	dashboard.NewGetSummaryHandler(r.Store).Register(humaAPI)

	user.NewUpdateUserHandler(r.Operator).Register(humaAPI)

	authv1.NewRegisterHandler(r.Auth).Register(humaAPI)
	authv1.NewLoginHandler(r.Auth).Register(humaAPI)
	authv1.NewUsernameAvailabilityHandler(r.Auth).Register(humaAPI)

	server := http.Server{
		Addr:              ":" + r.Port,
		Handler:           mux,
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	r.Logger.Info("HttpServer.Serve.listening")
	err := server.ListenAndServe()
	if err != nil {
		r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
	}
	r.Logger.Info("HttpServer.Serve.shutting down")
}
