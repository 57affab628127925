package main

import (
	"context"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	awslambda "github.com/aws/aws-lambda-go/lambda"

	"items-api/internal/config"
	"items-api/pkg/lambda"
	"items-api/pkg/server"
)

func init() {
	cfg, err := config.GetOptimizedConfig()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	if err := server.GetConnectionManager().Initialize(cfg); err != nil {
		panic("Failed to initialize container: " + err.Error())
	}
}

func handler(ctx context.Context, event lambda.Event) (events.APIGatewayProxyResponse, error) {
	container, err := server.GetConnectionManager().GetContainer(ctx)
	if err != nil {
		return lambda.NewJSONResponse(http.StatusInternalServerError, map[string]string{"error": err.Error()}).ToProxyResponse(), nil
	}

	resp, err := container.ItemHandler.HandleDelete(ctx, event.ToRequest())
	if err != nil {
		return lambda.NewJSONResponse(http.StatusInternalServerError, map[string]string{"error": err.Error()}).ToProxyResponse(), nil
	}

	return resp.ToProxyResponse(), nil
}

func main() {
	awslambda.Start(handler)
}
