package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"clinic-api/internal/config"
	"clinic-api/internal/database"
	"clinic-api/internal/handlers"
	"clinic-api/internal/models"
	"clinic-api/internal/repository"
	"clinic-api/internal/store"
	"clinic-api/internal/testrun"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE:  runServe,
}

const shutdownTimeout = 10 * time.Second

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	h, err := buildHandler(cfg, logger)
	if err != nil {
		return err
	}

	gin.SetMode(gin.ReleaseMode)
	srv := &http.Server{
		Addr:    ":" + cfg.ListenPort,
		Handler: handlers.NewRouter(h, logger),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("Clinic API listening",
			zap.String("addr", "http://localhost:"+cfg.ListenPort),
			zap.String("api", "http://localhost:"+cfg.ListenPort+"/api"),
			zap.String("store", cfg.StoreDriver))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

// buildHandler wires repositories over the configured store driver together
// with the test runner service.
func buildHandler(cfg *config.Config, log *zap.Logger) (*handlers.Handler, error) {
	deps := handlers.Deps{Logger: log}

	switch cfg.StoreDriver {
	case config.DriverMemory:
		deps.Doctors = repository.NewDoctorRepository(store.NewMemory[models.Doctor]())
		deps.Patients = repository.NewPatientRepository(store.NewMemory[models.Patient]())
		deps.Medicines = repository.NewMedicineRepository(store.NewMemory[models.Medicine]())
		deps.Specialties = repository.NewSpecialtyRepository(store.NewMemory[models.Specialty]())
	default:
		db, err := database.Open(cfg, log)
		if err != nil {
			return nil, err
		}
		deps.Doctors = repository.NewDoctorRepository(store.NewGorm[models.Doctor](db))
		deps.Patients = repository.NewPatientRepository(store.NewGorm[models.Patient](db))
		deps.Medicines = repository.NewMedicineRepository(store.NewGorm[models.Medicine](db))
		deps.Specialties = repository.NewSpecialtyRepository(store.NewGorm[models.Specialty](db))
	}

	runner, err := testrun.FromConfig(cfg.TestRunner, log)
	if err != nil {
		return nil, err
	}
	deps.Tests = runner

	return handlers.New(deps), nil
}
