package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/iho/gobudget/internal/adapter/http/dto"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

type apiClient struct {
	baseURL string
	http    *http.Client
}

func newRootCmd() *cobra.Command {
	var (
		baseURL string
		timeout time.Duration
	)

	rootCmd := &cobra.Command{
		Use:           "gobudget-cli",
		Short:         "GoBudget CLI tool",
		Long:          `A command line interface for asking the GoBudget API about your finances.`,
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the GoBudget API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	client := func() *apiClient {
		return &apiClient{
			baseURL: strings.TrimRight(baseURL, "/"),
			http:    &http.Client{Timeout: timeout},
		}
	}

	rootCmd.AddCommand(
		&cobra.Command{
			Use:   "advice <question...>",
			Short: "Ask the financial mentor a question",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return client().advice(cmd.OutOrStdout(), strings.Join(args, " "))
			},
		},
		&cobra.Command{
			Use:   "summary",
			Short: "Show income, allocation and this month's budget",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return client().summary(cmd.OutOrStdout())
			},
		},
		&cobra.Command{
			Use:   "health",
			Short: "Check that the API and its dependencies are ready",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return client().health(cmd.OutOrStdout())
			},
		},
	)

	return rootCmd
}

func (c *apiClient) advice(out io.Writer, query string) error {
	body, err := json.Marshal(dto.AdviceRequest{Query: query})
	if err != nil {
		return err
	}

	var resp dto.AdviceResponse
	if err := c.do(http.MethodPost, "/api/v1/mentor/advice", body, &resp); err != nil {
		return err
	}

	_, err = fmt.Fprintln(out, resp.Advice)
	return err
}

func (c *apiClient) summary(out io.Writer) error {
	var s dto.SummaryResponse
	if err := c.do(http.MethodGet, "/api/v1/dashboard/summary", nil, &s); err != nil {
		return err
	}

	m := s.Metrics
	_, err := fmt.Fprintf(out, `Income:            %s
Allocation:        %d%% savings / %d%% needs / %d%% wants
Total budget:      %s
Spent this month:  %s
Remaining:         %s
Daily budget:      %s (%d days left)
Monthly savings:   %s
Finance score:     %d
`,
		s.Income.StringFixed(2),
		s.Allocation.Savings, s.Allocation.Needs, s.Allocation.Wants,
		m.TotalBudget.StringFixed(2),
		m.TotalSpent.StringFixed(2),
		m.RemainingBudget.StringFixed(2),
		m.DailyBudget.StringFixed(2), m.DaysRemainingInMonth,
		m.MonthlySavings.StringFixed(2),
		m.FinanceScore,
	)
	return err
}

func (c *apiClient) health(out io.Writer) error {
	var status map[string]string
	if err := c.do(http.MethodGet, "/ready", nil, &status); err != nil {
		return fmt.Errorf("health check FAILED: %w", err)
	}

	_, err := fmt.Fprintf(out, "Health check PASSED (status: %s)\n", status["status"])
	return err
}

func (c *apiClient) do(method, path string, body []byte, v any) error {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequest(method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request %s: %w", path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr dto.ErrorResponse
		if json.Unmarshal(raw, &apiErr) == nil && apiErr.Error != "" {
			if apiErr.Message != "" {
				return fmt.Errorf("status %d: %s: %s", resp.StatusCode, apiErr.Error, apiErr.Message)
			}
			return fmt.Errorf("status %d: %s", resp.StatusCode, apiErr.Error)
		}
		return fmt.Errorf("status %d: %s", resp.StatusCode, strings.TrimSpace(string(raw)))
	}

	return json.Unmarshal(raw, v)
}
