package main

import (
	"fmt"
	"net/http"

	"go.uber.org/zap"
	"golang.org/x/crypto/acme/autocert"

	"github.com/advrk/shortener/internal/app/server"
	"github.com/advrk/shortener/internal/app/service"
	"github.com/advrk/shortener/internal/config"
	"github.com/advrk/shortener/internal/generator"
	"github.com/advrk/shortener/internal/logger"
	"github.com/advrk/shortener/internal/repository"
	"github.com/advrk/shortener/internal/storage"

	_ "net/http/pprof"
)

var buildVersion string
var buildDate string
var buildCommit string

func main() {
	options, err := config.Parse()
	if err != nil {
		panic(err)
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)

	log := logger.New()
	defer func() {
		_ = log.Log.Sync()
	}()

	if err := log.Init(options.LogLevel); err != nil {
		panic(err)
	}
	zapLogger := log.Log

	if options.EnablePprof {
		go func() {
			zapLogger.Info("Starting pprof server", zap.String("addr", "localhost:6060"))
			if err := http.ListenAndServe("localhost:6060", nil); err != nil {
				zapLogger.Error("pprof server error", zap.Error(err))
			}
		}()
	}

	var s storage.Store

	if options.DatabaseDSN != "" {
		zapLogger.Info("using db", zap.String("dsn", options.DatabaseDSN))
		db := repository.InitDB(options.DatabaseDSN, zapLogger)
		s = repository.CreateURLRepository(db, zapLogger)
		zapLogger.Info("Database connected and table ready.")
	} else if options.FilePath != "" {
		zapLogger.Info("using file", zap.String("filePath", options.FilePath))

		s, err = storage.NewFileStorage(options.FilePath, zapLogger)
		if err != nil {
			panic(err)
		}
	} else {
		zapLogger.Info("using in memory storage")

		s, err = storage.CreateMemoryStorage()
		if err != nil {
			panic(err)
		}
	}
	defer s.Close()

	gen := generator.New(options.IDLength)
	shortener := service.NewShortener(s, gen, zapLogger, options.BaseURL)
	defer shortener.Close()
	resolver := service.NewResolver(shortener, shortener.BaseURL())
	auth := service.NewAuth(options.SessionSecret)

	r := server.Init(zapLogger, shortener, resolver, auth, options.TrustedSubnet)

	if options.EnableHTTPS {
		manager := &autocert.Manager{
			Cache:      autocert.DirCache("cache-dir"),
			Prompt:     autocert.AcceptTOS,
			HostPolicy: autocert.HostWhitelist("advrk.io", "www.advrk.io"),
		}
		srv := &http.Server{
			Addr:      ":443",
			Handler:   r,
			TLSConfig: manager.TLSConfig(),
		}
		zapLogger.Info("Server is running with TLS", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServeTLS("", ""); err != nil {
			panic(err)
		}
	} else {
		zapLogger.Info("Server is running", zap.String("addr", options.Address))
		if err := http.ListenAndServe(options.Address, r); err != nil {
			panic(err)
		}
	}
}
