// ABOUTME: Predict command for the studytime CLI
// ABOUTME: Sends feature flags to /predict and formats the result

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/studyplanner/study-time-api/cli/internal/client"
)

var predictInput client.PredictionRequest

var predictCmd = &cobra.Command{
	Use:   "predict",
	Short: "Request a study time prediction",
	Long: `Request a study time prediction for a set of student features.

All 13 features have sensible defaults, so "studytime predict" alone works
against a running API; override individual features with flags.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runPredict(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(predictCmd)

	// Defaults mirror the documented example request.
	predictCmd.Flags().IntVar(&predictInput.Failures, "failures", 0, "Past class failures (0-4)")
	predictCmd.Flags().IntVar(&predictInput.Higher, "higher", 1, "Wants higher education (0/1)")
	predictCmd.Flags().IntVar(&predictInput.Absences, "absences", 3, "School absences (0-93)")
	predictCmd.Flags().IntVar(&predictInput.FreeTime, "freetime", 2, "Free time after school (1-5)")
	predictCmd.Flags().IntVar(&predictInput.GoOut, "goout", 3, "Going out with friends (1-5)")
	predictCmd.Flags().IntVar(&predictInput.FamRel, "famrel", 4, "Family relationship quality (1-5)")
	predictCmd.Flags().IntVar(&predictInput.FamSup, "famsup", 1, "Family educational support (0/1)")
	predictCmd.Flags().IntVar(&predictInput.SchoolSup, "schoolsup", 0, "Extra school support (0/1)")
	predictCmd.Flags().IntVar(&predictInput.Paid, "paid", 1, "Extra paid classes (0/1)")
	predictCmd.Flags().IntVar(&predictInput.TravelTime, "traveltime", 2, "Home-to-school travel time (1-4)")
	predictCmd.Flags().IntVar(&predictInput.Health, "health", 5, "Current health status (1-5)")
	predictCmd.Flags().IntVar(&predictInput.Internet, "internet", 1, "Internet access at home (0/1)")
	predictCmd.Flags().IntVar(&predictInput.Age, "age", 17, "Student age (15-22)")
}

// runPredict executes the prediction request and returns exit code
func runPredict(ctx context.Context, w io.Writer) int {
	c := client.New(GetAPIURL())

	resp, err := c.Predict(ctx, predictInput)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	if IsJSONOutput() {
		fmt.Fprintln(w, formatPredictionJSON(resp))
	} else {
		fmt.Fprintln(w, formatPredictionHuman(resp))
	}

	return 0
}

// formatPredictionHuman formats a prediction for human readability
func formatPredictionHuman(resp *client.PredictionResponse) string {
	factors := strings.Join(resp.KeyInfluencingFactors, ", ")
	if factors == "" {
		factors = "(none)"
	}
	return fmt.Sprintf(`Study Time:     %s
Confidence:     %s
Key Factors:    %s
Recommendation: %s`, resp.PredictedStudyTime, resp.ConfidenceLevel, factors, resp.Recommendation)
}

// formatPredictionJSON formats a prediction as JSON
func formatPredictionJSON(resp *client.PredictionResponse) string {
	data, _ := json.MarshalIndent(resp, "", "  ")
	return string(data)
}
