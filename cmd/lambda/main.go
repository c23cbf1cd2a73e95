// Command lambda serves the GraphQL API from AWS Lambda behind API Gateway.
package main

import (
	"fmt"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/awslabs/aws-lambda-go-api-proxy/httpadapter"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/prakasham-tecinyaw/serverless-api/internal/config"
	"github.com/prakasham-tecinyaw/serverless-api/internal/obs"
	"github.com/prakasham-tecinyaw/serverless-api/internal/server"
)

func main() {
	app := &cli.App{
		Name:   "serverless-api-lambda",
		Usage:  "serve the products and sellers GraphQL API from AWS Lambda",
		Flags:  config.Flags(),
		Action: run,
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	cfg, err := config.FromContext(c)
	if err != nil {
		return err
	}
	logger, err := obs.InitLogger(cfg.LogLevel, cfg.LogJSON)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	adapter, err := newHandler(cfg, logger)
	if err != nil {
		return err
	}
	logger.Info("lambda handler ready", zap.String("graphql_path", cfg.GraphQLPath))

	lambda.StartWithOptions(adapter.ProxyWithContext, lambda.WithContext(c.Context))
	return nil
}

// newHandler adapts the HTTP handler to API Gateway REST proxy events. The
// store lives as long as the execution environment, so writes are visible to
// later invocations served by the same instance only.
func newHandler(cfg config.Config, logger *zap.Logger) (*httpadapter.HandlerAdapter, error) {
	h, err := server.New(cfg, logger, prometheus.NewRegistry())
	if err != nil {
		return nil, err
	}
	return httpadapter.New(h), nil
}
