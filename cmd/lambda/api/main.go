package main

import (
	"context"

	"btl-run-api/internal/config"
	"btl-run-api/internal/handlers"
	"btl-run-api/pkg/lambda"

	"github.com/aws/aws-lambda-go/events"
	awslambda "github.com/aws/aws-lambda-go/lambda"
	"github.com/sirupsen/logrus"
)

var apiHandler *handlers.APIHandler

func init() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	config.SetupLogging(cfg)
	apiHandler = handlers.NewAPIHandler(cfg)
}

func handler(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	// Convert API Gateway event to generic request
	req := &lambda.Request{
		Method:      event.HTTPMethod,
		Path:        event.Path,
		Headers:     event.Headers,
		QueryParams: event.QueryStringParameters,
		Body:        []byte(event.Body),
	}

	resp, err := apiHandler.Route(ctx, req)
	if err != nil {
		// Envelope serialization failed; abort the response.
		logrus.WithFields(logrus.Fields{
			"method": req.Method,
			"path":   req.Path,
			"error":  err.Error(),
		}).Error("Handler failed")

		return events.APIGatewayProxyResponse{
			StatusCode: 500,
			Headers:    map[string]string{"Content-Type": "application/json"},
			Body:       `{"success":false,"error":"Internal server error"}`,
		}, nil
	}

	return events.APIGatewayProxyResponse{
		StatusCode: resp.StatusCode,
		Headers:    resp.Headers,
		Body:       string(resp.Body),
	}, nil
}

func main() {
	sc := config.GetServerlessConfig()
	logrus.WithFields(logrus.Fields{
		"function": sc.FunctionName,
		"region":   sc.Region,
		"stage":    sc.Stage,
	}).Info("Starting btl.run API Lambda")

	awslambda.Start(handler)
}
