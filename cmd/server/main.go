package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"dues_tracker/internal/config"
	"dues_tracker/internal/controllers"
	"dues_tracker/internal/identity"
	"dues_tracker/internal/logger"
	"dues_tracker/internal/repository"
	"dues_tracker/internal/routes"
	"dues_tracker/internal/storage"
	"dues_tracker/internal/subscription"
)

func main() {
	logger.Setup()

	db, err := config.InitDB()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to initialize database")
	}

	hub := subscription.NewHub()

	users := repository.NewUserRepository(db)
	orgs := repository.NewOrganizationRepository(db)
	members := repository.NewMemberRepository(db)
	transactions := repository.NewTransactionRepository(db, hub)
	fees := repository.NewFeeRepository(db, transactions)

	ident := identity.NewService(db, users, orgs)

	uploadDir := config.GetEnv("UPLOAD_DIR", "./uploads")
	baseURL := config.GetEnv("PUBLIC_BASE_URL", "http://localhost:8080")
	receipts, err := storage.NewLocalStore(uploadDir, baseURL)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to initialize upload storage")
	}

	r := routes.SetupRouter(routes.Controllers{
		Auth:          controllers.NewAuthController(ident, users, orgs),
		Members:       controllers.NewMemberController(members, orgs),
		Fees:          controllers.NewFeeController(fees, orgs),
		Transactions:  controllers.NewTransactionController(transactions, orgs, receipts),
		Organizations: controllers.NewOrganizationController(orgs),
		Dashboard:     controllers.NewDashboardController(transactions, fees, orgs),
		Feed:          controllers.NewFeedController(transactions, orgs),
		UploadDir:     uploadDir,
	})

	addr := "0.0.0.0:" + config.GetEnv("PORT", "8080")
	srv := &http.Server{
		Addr:    addr,
		Handler: r,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logrus.WithField("addr", addr).Info("Server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logrus.WithError(err).Fatal("Server exited with error")
	}
	logrus.Info("Server stopped")
}
