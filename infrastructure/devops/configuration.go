package devops

import (
	"context"
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
)

// ServiceConfig is stored as a yaml SSM parameter in deployed environments.
// Locally the DSN env var short-circuits the lookup.
type ServiceConfig struct {
	DSN            string `yaml:"dsn"`
	SigningSecret  string `yaml:"signingSecret"`
	InfoChannelID  string `yaml:"infoChannel"`
	ErrorChannelID string `yaml:"errorChannel"`
}

var (
	once    sync.Once
	cfg     ServiceConfig
	loadErr error
)

func LoadServiceConfig(ctx context.Context) (ServiceConfig, error) {
	once.Do(func() {
		if dsn := os.Getenv("DSN"); dsn != "" {
			cfg = ServiceConfig{
				DSN:           dsn,
				SigningSecret: os.Getenv("PULSEHR_SIGNING_SECRET"),
			}
			return
		}

		paramName := "pulsehr-service"
		if name := os.Getenv("PULSEHR_CONFIG_PARAM"); name != "" {
			paramName = name
		}

		awsCfg, err := config.LoadDefaultConfig(ctx)
		if err != nil {
			loadErr = fmt.Errorf("load aws config: %w", err)
			return
		}

		client := ssm.NewFromConfig(awsCfg)

		out, err := client.GetParameter(ctx, &ssm.GetParameterInput{
			Name:           aws.String(paramName),
			WithDecryption: aws.Bool(true),
		})
		if err != nil {
			loadErr = fmt.Errorf("get parameter: %w", err)
			return
		}

		var parsed ServiceConfig
		if err := yaml.Unmarshal([]byte(*out.Parameter.Value), &parsed); err != nil {
			loadErr = fmt.Errorf("unmarshal yaml: %w", err)
			return
		}

		cfg = parsed
	})

	return cfg, loadErr
}
