// nagrikctl is a small operator CLI for the RAG service. It talks to a
// running server over HTTP, mirroring the /v1/rag endpoints.
package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"nagrik-rag/internal/infra/httpclient"
)

var (
	serverURL string
	client    *http.Client
)

var rootCmd = &cobra.Command{
	Use:   "nagrikctl",
	Short: "Operator CLI for the Nagrik RAG service",
	Long: `nagrikctl exercises a running RAG server over HTTP.

Example usage:
  nagrikctl ask "why do potholes form"     # RAG answer with sources
  nagrikctl ask --voice "water supply"     # short, spoken-style answer
  nagrikctl analytics                      # report corpus breakdown
  nagrikctl search --category roads        # filtered report documents`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		client = httpclient.NewPooledClient(90 * time.Second)
		return nil
	},
}

var askCmd = &cobra.Command{
	Use:   "ask [query]",
	Short: "Answer a question over the knowledge base",
	Args:  cobra.ExactArgs(1),
	RunE:  runAsk,
}

var analyticsCmd = &cobra.Command{
	Use:   "analytics",
	Short: "Show report corpus analytics",
	Args:  cobra.NoArgs,
	RunE:  runAnalytics,
}

var searchCmd = &cobra.Command{
	Use:   "search",
	Short: "Search report documents by filter",
	Args:  cobra.NoArgs,
	RunE:  runSearch,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "http://localhost:9020", "RAG server base URL")

	askCmd.Flags().Bool("voice", false, "voice mode: shorter answers, fewer sources")
	askCmd.Flags().String("category", "", "restrict report retrieval to a category")
	askCmd.Flags().String("location", "", "restrict report retrieval to a location")
	askCmd.Flags().Float64("temperature", 0, "override generation temperature")

	searchCmd.Flags().String("category", "", "report category")
	searchCmd.Flags().String("location", "", "report location substring")
	searchCmd.Flags().String("status", "", "report status")
	searchCmd.Flags().Int("limit", 0, "maximum documents (server default when 0)")

	rootCmd.AddCommand(askCmd, analyticsCmd, searchCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	voice, _ := cmd.Flags().GetBool("voice")
	category, _ := cmd.Flags().GetString("category")
	location, _ := cmd.Flags().GetString("location")
	temperature, _ := cmd.Flags().GetFloat64("temperature")

	body := map[string]interface{}{
		"query": args[0],
		"config": map[string]interface{}{
			"voice":       voice,
			"category":    category,
			"location":    location,
			"temperature": temperature,
		},
	}

	return postJSON("/v1/rag/query", body)
}

func runAnalytics(cmd *cobra.Command, args []string) error {
	resp, err := client.Get(serverURL + "/v1/rag/analytics")
	if err != nil {
		return fmt.Errorf("requesting analytics: %w", err)
	}
	defer resp.Body.Close()
	return printResponse(resp)
}

func runSearch(cmd *cobra.Command, args []string) error {
	category, _ := cmd.Flags().GetString("category")
	location, _ := cmd.Flags().GetString("location")
	status, _ := cmd.Flags().GetString("status")
	limit, _ := cmd.Flags().GetInt("limit")

	body := map[string]interface{}{
		"category": category,
		"location": location,
		"status":   status,
		"limit":    limit,
	}

	return postJSON("/v1/rag/search", body)
}

func postJSON(path string, body interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encoding request: %w", err)
	}

	resp, err := client.Post(serverURL+path, "application/json", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("requesting %s: %w", path, err)
	}
	defer resp.Body.Close()
	return printResponse(resp)
}

func printResponse(resp *http.Response) error {
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	var pretty bytes.Buffer
	if err := json.Indent(&pretty, raw, "", "  "); err != nil {
		// Not JSON, print as-is.
		fmt.Println(string(raw))
	} else {
		fmt.Println(pretty.String())
	}

	if resp.StatusCode >= 400 {
		return fmt.Errorf("server returned %s", resp.Status)
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
