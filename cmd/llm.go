package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shirley/readingcoach/internal/llm"
	"github.com/shirley/readingcoach/internal/store"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect recorded LLM requests",
}

// openEventLog opens the store named by --db or the default path.
func openEventLog(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return s, nil
}

var llmListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent LLM requests",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		purpose, _ := cmd.Flags().GetString("purpose")

		s, err := openEventLog(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		events, err := s.EventRepo().QueryLLMEvents(cmd.Context(), store.QueryOpts{
			Limit:   limit,
			Purpose: purpose,
		})
		if err != nil {
			return fmt.Errorf("query events: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(events) == 0 {
			fmt.Fprintln(out, "No LLM requests recorded.")
			return nil
		}

		fmt.Fprintf(out, "%-5s  %-19s  %-9s  %-26s  %-8s  %-6s  %-6s  %-6s  %s\n",
			"ID", "Timestamp", "Provider", "Model", "Purpose", "In", "Out", "Ms", "OK")
		fmt.Fprintln(out, strings.Repeat("─", 104))

		for _, e := range events {
			ok := "✓"
			if !e.Success {
				ok = "✗"
			}
			fmt.Fprintf(out, "%-5d  %-19s  %-9s  %-26s  %-8s  %-6d  %-6d  %-6d  %s\n",
				e.ID,
				e.Timestamp.Local().Format("2006-01-02 15:04:05"),
				truncate(e.Provider, 9),
				truncate(e.Model, 26),
				truncate(e.Purpose, 8),
				e.InputTokens,
				e.OutputTokens,
				e.LatencyMs,
				ok,
			)
		}
		return nil
	},
}

var llmViewCmd = &cobra.Command{
	Use:   "view <id>",
	Short: "Show the full prompt and raw reply of one request",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid ID %q: %w", args[0], err)
		}

		s, err := openEventLog(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		e, err := s.EventRepo().GetLLMEvent(cmd.Context(), id)
		if err != nil {
			return fmt.Errorf("get event: %w", err)
		}
		if e == nil {
			return fmt.Errorf("event %d not found", id)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "ID:        %d\n", e.ID)
		fmt.Fprintf(out, "Time:      %s\n", e.Timestamp.Local().Format("2006-01-02 15:04:05"))
		fmt.Fprintf(out, "Provider:  %s\n", e.Provider)
		fmt.Fprintf(out, "Model:     %s\n", e.Model)
		fmt.Fprintf(out, "Purpose:   %s\n", e.Purpose)
		fmt.Fprintf(out, "Tokens:    %d in / %d out\n", e.InputTokens, e.OutputTokens)
		fmt.Fprintf(out, "Latency:   %dms\n", e.LatencyMs)
		fmt.Fprintf(out, "Success:   %v\n", e.Success)
		if e.ErrorMessage != "" {
			fmt.Fprintf(out, "Error:     %s\n", e.ErrorMessage)
		}

		printBody(out, "REQUEST", e.RequestBody)
		printBody(out, "RESPONSE", e.ResponseBody)
		return nil
	},
}

func printBody(w io.Writer, title, body string) {
	sep := strings.Repeat("─", 60)
	fmt.Fprintln(w)
	fmt.Fprintln(w, sep)
	fmt.Fprintln(w, title)
	fmt.Fprintln(w, sep)
	if body == "" {
		body = "(not captured)"
	}
	fmt.Fprintln(w, body)
}

var llmStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show aggregated token usage and estimated cost",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openEventLog(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := cmd.Context()
		out := cmd.OutOrStdout()

		stats, err := s.EventRepo().LLMUsageByPurpose(ctx)
		if err != nil {
			return fmt.Errorf("query usage: %w", err)
		}
		if len(stats) == 0 {
			fmt.Fprintln(out, "No LLM usage recorded yet.")
			return nil
		}

		rule := strings.Repeat("─", 72)
		fmt.Fprintln(out, "Usage by Purpose")
		fmt.Fprintln(out, rule)
		fmt.Fprintf(out, "%-16s  %6s  %10s  %10s  %10s  %8s\n",
			"Purpose", "Calls", "Input", "Output", "Total", "Avg Ms")
		fmt.Fprintln(out, rule)

		var totalCalls, totalIn, totalOut int
		for _, st := range stats {
			fmt.Fprintf(out, "%-16s  %6d  %10d  %10d  %10d  %8d\n",
				truncate(st.Purpose, 16), st.Calls, st.InputTokens, st.OutputTokens,
				st.InputTokens+st.OutputTokens, st.AvgLatencyMs)
			totalCalls += st.Calls
			totalIn += st.InputTokens
			totalOut += st.OutputTokens
		}
		fmt.Fprintln(out, rule)
		fmt.Fprintf(out, "%-16s  %6d  %10d  %10d  %10d\n",
			"TOTAL", totalCalls, totalIn, totalOut, totalIn+totalOut)

		modelUsage, err := s.EventRepo().LLMUsageByModel(ctx)
		if err != nil {
			return fmt.Errorf("query model usage: %w", err)
		}
		if len(modelUsage) == 0 {
			return nil
		}

		fmt.Fprintln(out)
		fmt.Fprintln(out, "Estimated Cost (USD)")
		fmt.Fprintln(out, rule)
		fmt.Fprintf(out, "%-32s  %6s  %10s  %10s  %10s\n", "Model", "Calls", "Input", "Output", "Cost")
		fmt.Fprintln(out, rule)

		var totalCost float64
		var unknown []string
		for _, mu := range modelUsage {
			cost := llm.LookupCost(mu.Model)
			if cost == nil {
				unknown = append(unknown, mu.Model)
				fmt.Fprintf(out, "%-32s  %6d  %10d  %10d  %10s\n",
					truncate(mu.Model, 32), mu.Calls, mu.InputTokens, mu.OutputTokens, "?")
				continue
			}
			c := cost.Cost(mu.InputTokens, mu.OutputTokens)
			totalCost += c
			fmt.Fprintf(out, "%-32s  %6d  %10d  %10d  %10s\n",
				truncate(mu.Model, 32), mu.Calls, mu.InputTokens, mu.OutputTokens, formatCost(c))
		}

		fmt.Fprintln(out, rule)
		label := "TOTAL"
		if len(unknown) > 0 {
			label = "TOTAL (partial)"
		}
		fmt.Fprintf(out, "%-32s  %6s  %10s  %10s  %10s\n", label, "", "", "", formatCost(totalCost))
		if len(unknown) > 0 {
			fmt.Fprintf(out, "\nPricing unavailable for: %s\n", strings.Join(unknown, ", "))
		}
		return nil
	},
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}

func formatCost(usd float64) string {
	if usd < 0.01 {
		return fmt.Sprintf("$%.4f", usd)
	}
	return fmt.Sprintf("$%.2f", usd)
}

func init() {
	llmListCmd.Flags().IntP("limit", "n", 20, "Number of requests to show")
	llmListCmd.Flags().StringP("purpose", "p", "", "Filter by purpose (e.g. lesson)")

	llmCmd.AddCommand(llmListCmd)
	llmCmd.AddCommand(llmViewCmd)
	llmCmd.AddCommand(llmStatsCmd)
}
