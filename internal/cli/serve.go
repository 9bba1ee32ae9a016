// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package cli

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"github.com/alvinbaena/pwd-tool/internal/api"
	"github.com/alvinbaena/pwd-tool/internal/util"
	"github.com/alvinbaena/pwd-tool/pkg/generator"
	"github.com/alvinbaena/pwd-tool/pkg/strength"
	"github.com/gin-contrib/logger"
	"github.com/gin-gonic/gin"
	"github.com/likexian/selfca"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

var (
	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Serve the API for checking and generating passwords",
		Long: "Serve the password strength and generation API. Every flag can also be set with the " +
			"environment variable of the same name in SCREAMING_SNAKE_CASE (PORT, SELF_TLS, TLS_CERT...).",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serveCommand(cmd)
		},
	}

	// flag name -> config key
	serveFlags = map[string]string{
		"port":            "PORT",
		"self-tls":        "SELF_TLS",
		"tls-cert":        "TLS_CERT",
		"tls-key":         "TLS_KEY",
		"min-length":      "MIN_LENGTH",
		"max-length":      "MAX_LENGTH",
		"default-length":  "DEFAULT_LENGTH",
		"default-symbols": "DEFAULT_SYMBOLS",
		"cache-size":      "CACHE_SIZE",
	}
)

func init() {
	serveCmd.Flags().Bool("self-tls", false,
		"If the server should use a self-signed certificate when starting. The certificate is renewed on each server restart")
	serveCmd.Flags().String("tls-cert", "", "Path to the PEM encoded TLS certificate to be used by the server")
	serveCmd.Flags().String("tls-key", "", "Path to the PEM encoded TLS private key to be used by the server")
	serveCmd.Flags().Uint16P("port", "p", api.DefaultPort, "Port to be used by the server")
	serveCmd.Flags().Int("min-length", api.DefaultMinLength, "Minimum length accepted by the generate endpoint")
	serveCmd.Flags().Int("max-length", api.DefaultMaxLength, "Maximum length accepted by the generate endpoint")
	serveCmd.Flags().Int("default-length", api.DefaultLength, "Length used when a generate request has none")
	serveCmd.Flags().Bool("default-symbols", true, "Include symbols when a generate request does not say")
	serveCmd.Flags().Int64("cache-size", api.DefaultCacheSize, "Number of zxcvbn estimates kept in memory. 0 disables the cache")

	rootCmd.AddCommand(serveCmd)
}

func loadServeConfig(cmd *cobra.Command) (api.Config, error) {
	v := viper.New()
	for flag, key := range serveFlags {
		if err := v.BindPFlag(key, cmd.Flags().Lookup(flag)); err != nil {
			return api.Config{}, fmt.Errorf("error binding flag %s: %w", flag, err)
		}
	}

	return api.LoadConfig(v)
}

func serveCommand(cmd *cobra.Command) error {
	util.ApplyCliSettings(verbose, profile, pprofPort)

	cfg, err := loadServeConfig(cmd)
	if err != nil {
		return err
	}

	if !verbose && !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	estimator, err := strength.NewEstimator(cfg.CacheSize)
	if err != nil {
		return fmt.Errorf("error initializing API: %w", err)
	}
	defer estimator.Close()

	router, err := api.NewRouter(cfg, generator.NewRandom(), estimator,
		logger.SetLogger(logger.WithLogger(func(c *gin.Context, z zerolog.Logger) zerolog.Logger {
			return zerolog.New(gin.DefaultWriter).With().Timestamp().Logger()
		})),
	)
	if err != nil {
		return fmt.Errorf("error initializing API: %w", err)
	}

	srvAddr := fmt.Sprintf(":%d", cfg.Port)
	srv := &http.Server{
		Addr:              srvAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Msgf("starting TLS Server on address: %s", srvAddr)
		if cfg.TLSCert != "" && cfg.TLSKey != "" {
			// service connections with tls certs
			if err := srv.ListenAndServeTLS(cfg.TLSCert, cfg.TLSKey); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Fatal().Err(err).Msg("error starting server")
			}
		} else if cfg.SelfTLS {
			log.Warn().Msgf("using auto self-signed certificate for TLS. This is not recommended for production. Please consider using your own certificates.")
			pair, err := selfSignedCertificate()
			if err != nil {
				log.Fatal().Err(err).Msg("error generating auto self-signed certificate")
			}

			srv.TLSConfig = &tls.Config{
				Certificates: []tls.Certificate{pair},
				MinVersion:   tls.VersionTLS12,
			}

			// service connections with tls config, no need to pass files
			if err = srv.ListenAndServeTLS("", ""); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Fatal().Err(err).Msg("error starting server")
			}
		} else {
			log.Fatal().Msg("server requires TLS configuration to start. " +
				"Please use either the --self-tls flag or set a certificate with the --tls-cert and --tls-key flags")
		}
	}()

	gracefulShutdown(srv)
	return nil
}

func selfSignedCertificate() (tls.Certificate, error) {
	caConfig := selfca.Certificate{
		IsCA:      true,
		KeySize:   2048,
		NotBefore: time.Now(),
		// 30 day self-signed cert.
		NotAfter: time.Now().Add(time.Duration(30*24) * time.Hour),
	}

	certificate, key, err := selfca.GenerateCertificate(caConfig)
	if err != nil {
		return tls.Certificate{}, err
	}

	return tls.X509KeyPair(
		pem.EncodeToMemory(&pem.Block{Type: "CERTIFICATE", Bytes: certificate}),
		pem.EncodeToMemory(&pem.Block{Type: "RSA PRIVATE KEY", Bytes: x509.MarshalPKCS1PrivateKey(key)}),
	)
}

func gracefulShutdown(srv *http.Server) {
	// Wait for interrupt signal to gracefully shut down the server with
	// a timeout.
	quit := make(chan os.Signal, 1)
	// kill (no param) default send syscall.SIGTERM
	// kill -2 is syscall.SIGINT
	// kill -9 is syscall. SIGKILL but can't be a catch, so don't need to add it
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Warn().Err(err).Msg("server Shutdown.")
	}
	log.Info().Msg("server exiting...")
}
