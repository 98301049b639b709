package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	chiadapter "github.com/awslabs/aws-lambda-go-api-proxy/chi"
	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"

	_ "github.com/saulo-duarte/statbook-lambda/docs"
	"github.com/saulo-duarte/statbook-lambda/internal/config"
	"github.com/saulo-duarte/statbook-lambda/internal/container"
	"github.com/saulo-duarte/statbook-lambda/internal/router"
)

const shutdownTimeout = 15 * time.Second

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		config.Logger.WithError(err).Warn("Failed to read .env")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	c := container.New(ctx)
	defer c.Close()

	handler := router.New(router.RouterConfig{
		CORSOrigins:     c.Settings.CORSOrigins,
		ContentHandler:  c.ContentContainer.Handler,
		GameHandler:     c.GameContainer.Handler,
		ActivityHandler: c.ActivityContainer.Handler,
		AIQuizHandler:   c.AIQuizContainer.Handler,
		AuthHandler:     c.AuthHandler,
	})

	if os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != "" {
		startLambda(handler)
		return
	}
	serve(ctx, c.Settings.HTTPAddr, handler)
}

func startLambda(handler http.Handler) {
	config.Logger.Warn("Quiz sessions live in this instance's memory; Lambda gives no affinity, use HTTP mode for live quizzes")
	adapter := chiadapter.New(handler.(*chi.Mux))
	lambda.Start(func(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
		return adapter.ProxyWithContext(ctx, req)
	})
}

func serve(ctx context.Context, addr string, handler http.Handler) {
	log := config.Logger.WithField("addr", addr)
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		log.Info("HTTP server listening")
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("HTTP server failed")
		}
		return
	case <-ctx.Done():
	}

	log.Info("Shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("Graceful shutdown failed")
	}
}
