package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/mgoncalo/centavo/internal/budget"
	budgetStore "github.com/mgoncalo/centavo/internal/budget/store"
	"github.com/mgoncalo/centavo/internal/category"
	categoryStore "github.com/mgoncalo/centavo/internal/category/store"
	"github.com/mgoncalo/centavo/internal/config"
	"github.com/mgoncalo/centavo/internal/database"
	centavoHttp "github.com/mgoncalo/centavo/internal/http"
	budgetHandler "github.com/mgoncalo/centavo/internal/http/budget"
	categoryHandler "github.com/mgoncalo/centavo/internal/http/category"
	importHandler "github.com/mgoncalo/centavo/internal/http/importcsv"
	insightHandler "github.com/mgoncalo/centavo/internal/http/insight"
	ledgerHandler "github.com/mgoncalo/centavo/internal/http/ledger"
	"github.com/mgoncalo/centavo/internal/importer"
	"github.com/mgoncalo/centavo/internal/insight"
	"github.com/mgoncalo/centavo/internal/ledger"
	ledgerStore "github.com/mgoncalo/centavo/internal/ledger/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		slog.Error("failed to migrate database", "error", err)
		os.Exit(1)
	}

	var (
		categoryService = category.NewService(categoryStore.New(db))
		ledgerService   = ledger.NewService(ledgerStore.New(db))
		budgetService   = budget.NewService(budgetStore.New(db))
		insightService  = insight.NewService(ledgerService, budgetService, ledgerService)
		importService   = importer.NewService()
	)

	var (
		categoryH = categoryHandler.NewHandler(categoryService)
		incomeH   = ledgerHandler.NewHandler(ledgerService, ledger.TypeIncome)
		expenseH  = ledgerHandler.NewHandler(ledgerService, ledger.TypeExpense)
		budgetH   = budgetHandler.NewHandler(budgetService)
		insightH  = insightHandler.NewHandler(insightService)
		importH   = importHandler.NewHandler(importService, ledgerService, categoryService)
	)

	router := centavoHttp.New(centavoHttp.Options{
		JWTSecret:      cfg.Auth.JWTSecret,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		RequestTimeout: cfg.Server.Timeout,
	}, categoryH, incomeH, expenseH, budgetH, insightH, importH)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "app", cfg.App.Name, "port", port)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
