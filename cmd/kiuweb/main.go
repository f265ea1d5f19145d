package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/psidex/kiu/internal/config"
	"github.com/psidex/kiu/internal/lib"
	"github.com/psidex/kiu/internal/webserver"
)

func main() {
	cfgPath := flag.String("config", "", "path to a toml, yaml or json config file")
	address := flag.String("b", "", "the ip:port to bind the webserver to")
	grpcAddress := flag.String("g", "", "the ip:port to bind the grpc health server to")
	staticDir := flag.String("d", "", "the directory to serve /static/ from")

	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if *address != "" {
		cfg.Server.Bind = *address
	}
	if *grpcAddress != "" {
		cfg.Server.GRPCBind = *grpcAddress
	}
	if *staticDir != "" {
		cfg.Server.StaticDir = *staticDir
	}

	logger := lib.LevelLogger(os.Stderr, cfg.LogLevel)

	srv, err := webserver.NewServer(cfg, logger)
	if err != nil {
		log.Fatalf("server: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.Server.GRPCBind != "" {
		lis, err := net.Listen("tcp", cfg.Server.GRPCBind)
		if err != nil {
			log.Fatalf("failed to listen: %v", err)
		}
		g := webserver.NewGRPC(logger)
		defer g.Stop()
		go func() {
			if err := g.Serve(lis); err != nil {
				logger.Error("gRPC serve failed", "error", err)
			}
		}()
	}

	httpServer := &http.Server{
		Addr:              cfg.Server.Bind,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Warn("Shutdown failed", "error", err)
		}
	}()

	logger.Info("Listening", "address", cfg.Server.Bind, "version", lib.Version)
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}
