package config

import (
	"os"
	"sync"
)

// ServerlessConfig holds serverless-specific configuration
type ServerlessConfig struct {
	IsLambda     bool
	FunctionName string
	Region       string
	Stage        string
}

var (
	serverlessConfig *ServerlessConfig
	serverlessOnce   sync.Once
)

// GetServerlessConfig returns the serverless configuration
func GetServerlessConfig() *ServerlessConfig {
	serverlessOnce.Do(func() {
		stage := os.Getenv("STAGE")
		if stage == "" {
			stage = "dev"
		}

		serverlessConfig = &ServerlessConfig{
			IsLambda:     isRunningInLambda(),
			FunctionName: os.Getenv("AWS_LAMBDA_FUNCTION_NAME"),
			Region:       os.Getenv("AWS_REGION"),
			Stage:        stage,
		}
	})
	return serverlessConfig
}

// isRunningInLambda detects if the application is running in AWS Lambda
func isRunningInLambda() bool {
	return os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != ""
}

// IsServerlessMode returns true if running in serverless mode
func IsServerlessMode() bool {
	return GetServerlessConfig().IsLambda
}

// GetDeploymentMode returns the current deployment mode
func GetDeploymentMode() string {
	if IsServerlessMode() {
		return "serverless"
	}
	return "server"
}
