package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/aws/aws-lambda-go/lambda"

	"pulsehr.com/pulsehr/core"
	"pulsehr.com/pulsehr/infrastructure/communication"
	"pulsehr.com/pulsehr/infrastructure/devops"
	"pulsehr.com/pulsehr/lambdas/payrollrun/helper"
	"pulsehr.com/pulsehr/payroll"
	"pulsehr.com/pulsehr/utils"
)

func HandleRequest(ctx context.Context, event helper.RunEvent) (*payroll.BatchResult, error) {
	now := utils.BrisbaneNow()

	month, year, err := helper.ResolvePeriod(event, now)
	if err != nil {
		return nil, err
	}
	fmt.Printf("[INFO] Running payroll for %02d/%d\n", month, year)

	cfg, err := devops.LoadServiceConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load service config: %w", err)
	}

	db := core.ConnectDB(cfg.DSN)

	result, err := payroll.GenerateBatch(db, month, year, now)
	if err != nil {
		return nil, err
	}
	fmt.Printf("[INFO] Run %s: %d created, %d skipped, %d failed\n",
		result.RunID, result.Created, result.Skipped, result.Failed)

	if slack := communication.ConnectSlack(); slack != nil {
		msg := fmt.Sprintf("payroll run %s for %02d/%d: %d created, %d skipped, %d failed",
			result.RunID, month, year, result.Created, result.Skipped, result.Failed)
		if err := slack.Info(msg); err != nil {
			fmt.Printf("[ERROR] slack notify failed: %v\n", err)
		}
	}

	return result, nil
}

func main() {
	if os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != "" {
		lambda.Start(HandleRequest)
	} else {
		result, err := HandleRequest(context.Background(), helper.RunEvent{})
		if err != nil {
			fmt.Printf("[ERROR] %v\n", err)
			os.Exit(1)
		}
		resJson, _ := json.MarshalIndent(result, "", "  ")
		fmt.Printf("[SUCCESS] Results:\n%s\n", string(resJson))
	}
}
