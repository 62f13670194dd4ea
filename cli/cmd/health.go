// ABOUTME: Health command for the studytime CLI
// ABOUTME: Checks API connectivity and model load state

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/studyplanner/study-time-api/cli/internal/client"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check API connectivity",
	Long:  `Check connectivity to the Study Time Prediction API and verify the model is loaded.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runHealth(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(healthCmd)
}

// runHealth executes the health check and returns exit code
func runHealth(ctx context.Context, w io.Writer) int {
	url := GetAPIURL()
	c := client.New(url)

	resp, err := c.Health(ctx)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	if IsJSONOutput() {
		fmt.Fprintln(w, formatHealthJSON(url, resp))
	} else {
		fmt.Fprintln(w, formatHealthHuman(url, resp))
	}

	// Non-zero exit when the model never loaded, so CI gates can fail
	if !resp.ModelLoaded {
		return 1
	}
	return 0
}

// formatHealthHuman formats health response for human readability
func formatHealthHuman(url string, resp *client.HealthResponse) string {
	return fmt.Sprintf(`API:          %s
Status:       %s
Model Loaded: %t
Model File:   %t`, url, resp.Status, resp.ModelLoaded, resp.ModelFileExists)
}

// formatHealthJSON formats health response as JSON
func formatHealthJSON(url string, resp *client.HealthResponse) string {
	output := map[string]interface{}{
		"api":               url,
		"status":            resp.Status,
		"model_loaded":      resp.ModelLoaded,
		"model_file_exists": resp.ModelFileExists,
	}
	data, _ := json.MarshalIndent(output, "", "  ")
	return string(data)
}
