package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	alertDeliveryPkg "github.com/SNEHARUTH11/fina/pkg/alert/delivery"
	alertUsecasePkg "github.com/SNEHARUTH11/fina/pkg/alert/usecase"
	assetPkg "github.com/SNEHARUTH11/fina/pkg/asset"
	botDeliveryPkg "github.com/SNEHARUTH11/fina/pkg/bot/delivery"
	botUsecasePkg "github.com/SNEHARUTH11/fina/pkg/bot/usecase"
	generatorPkg "github.com/SNEHARUTH11/fina/pkg/candle/generator"
	configPkg "github.com/SNEHARUTH11/fina/pkg/config"
	"github.com/SNEHARUTH11/fina/pkg/logging"
	marketDeliveryPkg "github.com/SNEHARUTH11/fina/pkg/market/delivery"
	marketUsecasePkg "github.com/SNEHARUTH11/fina/pkg/market/usecase"
	"github.com/SNEHARUTH11/fina/pkg/metrics"
	orderDeliveryPkg "github.com/SNEHARUTH11/fina/pkg/order/delivery"
	orderUsecasePkg "github.com/SNEHARUTH11/fina/pkg/order/usecase"
	sessionDeliveryPkg "github.com/SNEHARUTH11/fina/pkg/session/delivery"
	sessionRepoPkg "github.com/SNEHARUTH11/fina/pkg/session/repo"
	sessionUsecasePkg "github.com/SNEHARUTH11/fina/pkg/session/usecase"
	"github.com/SNEHARUTH11/fina/pkg/simulation"
	watchlistDeliveryPkg "github.com/SNEHARUTH11/fina/pkg/watchlist/delivery"
	watchlistUsecasePkg "github.com/SNEHARUTH11/fina/pkg/watchlist/usecase"
)

var appName = "simulator"

func main() {
	ctx, finish := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer finish()

	config := &configPkg.Config{}
	if err := configPkg.Read(appName, config); err != nil {
		log.Fatalln(err)
	}

	logger := logging.New()
	defer logger.Zap.Sync()

	if err := startSimulator(ctx, config, logger); err != nil {
		logger.Zap.Fatal("simulator",
			zap.String("logger", "main"),
			zap.String("err", err.Error()),
		)
	}
}

func startSimulator(ctx context.Context, config *configPkg.Config, logger *logging.Logger) error {
	market := marketUsecasePkg.NewMarketManager(generatorPkg.New(nil))
	if tf := assetPkg.Timeframe(config.Simulation.Timeframe); tf.Valid() {
		market.SetTimeframe(tf)
	}
	market.Initialize(config.Simulation.HistoryCount)

	ledger := orderUsecasePkg.NewLedger(config.Simulation.InitialBalance)
	alerts := alertUsecasePkg.NewAlertsManager()
	bots := botUsecasePkg.NewBotsManager(market, ledger, config.Bot.TradeAmount, logger)
	watchlist := watchlistUsecasePkg.NewWatchlistManager()

	var sessRepo sessionUsecasePkg.SessRepo
	if config.Redis.Addr != "" {
		redisRepo, err := sessionRepoPkg.NewDB(config.Redis.Addr)
		if err != nil {
			return err
		}
		sessRepo = redisRepo
	} else {
		sessRepo = sessionRepoPkg.NewMemDB()
	}
	sessions := sessionUsecasePkg.NewSessionsManager(sessRepo)

	var notifier alertDeliveryPkg.Notifier
	if config.Telegram.Token != "" {
		tgNotifier, err := alertDeliveryPkg.NewTgNotifier(config.Telegram.Token, config.Telegram.ChatID, logger)
		if err != nil {
			return err
		}
		notifier = tgNotifier
	} else {
		notifier = alertDeliveryPkg.NewLogNotifier(logger)
	}

	driver := &simulation.Driver{
		Market:   market,
		Ledger:   ledger,
		Alerts:   alerts,
		Bots:     bots,
		Notifier: notifier,
		Gate:     sessions,
		Logger:   logger,
	}
	go driver.Run(ctx, time.Duration(config.Simulation.TickInterval)*time.Second)

	marketHandler := &marketDeliveryPkg.MarketHandler{Market: market}
	streamHandler := &marketDeliveryPkg.StreamHandler{Market: market, Logger: logger}
	ordersHandler := &orderDeliveryPkg.OrdersHandler{Ledger: ledger}
	alertsHandler := &alertDeliveryPkg.AlertsHandler{Alerts: alerts}
	botsHandler := &botDeliveryPkg.BotsHandler{Bots: bots}
	watchlistHandler := &watchlistDeliveryPkg.WatchlistHandler{Watchlist: watchlist}
	sessionHandler := &sessionDeliveryPkg.SessionHandler{SessionsManager: sessions}

	r := mux.NewRouter()
	r.Use(metrics.TimeTrackingMiddleware)

	r.HandleFunc("/api/v1/assets", marketHandler.Assets).Methods("GET")
	r.HandleFunc("/api/v1/assets/{asset}/candles", marketHandler.Candles).Methods("GET")
	r.HandleFunc("/api/v1/assets/{asset}/patterns", marketHandler.Patterns).Methods("GET")
	r.HandleFunc("/api/v1/timeframe", marketHandler.Timeframe).Methods("GET")
	r.HandleFunc("/api/v1/timeframe", marketHandler.SetTimeframe).Methods("PUT")

	r.HandleFunc("/api/v1/orders", ordersHandler.PlaceOrder).Methods("POST")
	r.HandleFunc("/api/v1/orders", ordersHandler.Orders).Methods("GET")
	r.HandleFunc("/api/v1/orders/{order}", ordersHandler.CancelOrder).Methods("DELETE")
	r.HandleFunc("/api/v1/portfolio", ordersHandler.Portfolio).Methods("GET")
	r.HandleFunc("/api/v1/balance", ordersHandler.Balance).Methods("GET")

	r.HandleFunc("/api/v1/alerts", alertsHandler.AddAlert).Methods("POST")
	r.HandleFunc("/api/v1/alerts", alertsHandler.ListAlerts).Methods("GET")
	r.HandleFunc("/api/v1/alerts/{alert}", alertsHandler.RemoveAlert).Methods("DELETE")

	r.HandleFunc("/api/v1/bots/{asset}", botsHandler.Config).Methods("GET")
	r.HandleFunc("/api/v1/bots/{asset}", botsHandler.UpdateConfig).Methods("PATCH")
	r.HandleFunc("/api/v1/bots/{asset}/run", botsHandler.Run).Methods("POST")

	r.HandleFunc("/api/v1/watchlist", watchlistHandler.List).Methods("GET")
	r.HandleFunc("/api/v1/watchlist/{asset}", watchlistHandler.Add).Methods("POST")
	r.HandleFunc("/api/v1/watchlist/{asset}", watchlistHandler.Remove).Methods("DELETE")

	r.HandleFunc("/api/v1/session", sessionHandler.Login).Methods("POST")
	r.HandleFunc("/api/v1/session", sessionHandler.CheckAuth).Methods("GET")

	r.HandleFunc("/ws/market", streamHandler.Stream)
	r.Handle("/metrics", promhttp.Handler())

	server := &http.Server{
		Addr:    ":" + strconv.Itoa(config.HTTP.Port),
		Handler: r,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(shutdownCtx)
	}()

	logger.Zap.Info("simulator started",
		zap.String("logger", "main"),
		zap.Int("port", config.HTTP.Port),
	)

	err := server.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}
