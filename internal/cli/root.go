// Package cli implements the companion command line front-end.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/easeaico/companion-web/internal/client"
	"github.com/easeaico/companion-web/internal/store"
)

const version = "0.1.0"

var (
	storeDSN   string
	serverURL  string
	formatFlag string
	verbose    bool
)

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "companion",
	Short: "Create and chat with a personality-configurable AI companion",
	Long: "companion keeps one companion profile and its chat history in a local store " +
		"and talks to a companion server for replies, avatars, images and videos.",
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	},
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&storeDSN, "store", "s", "", "Store path or postgres:// URL (default: $COMPANION_STORE or ~/.companion/companion.db)")
	RootCmd.PersistentFlags().StringVar(&serverURL, "server", "", "Companion server URL (default: $COMPANION_SERVER or http://localhost:3000)")
	RootCmd.PersistentFlags().StringVarP(&formatFlag, "format", "f", "text", "Output format: text or json")
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose logging")
}

func getStoreDSN() string {
	if storeDSN != "" {
		return storeDSN
	}
	if env := os.Getenv("COMPANION_STORE"); env != "" {
		return env
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".companion", "companion.db")
}

func getServerURL() string {
	if serverURL != "" {
		return serverURL
	}
	if env := os.Getenv("COMPANION_SERVER"); env != "" {
		return env
	}
	return "http://localhost:3000"
}

func openStore(cmd *cobra.Command) (store.KV, *store.Session, error) {
	kv, err := store.Open(cmd.Context(), getStoreDSN())
	if err != nil {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}
	return kv, store.NewSession(kv), nil
}

func newClient() *client.Client {
	return client.New(getServerURL(), nil)
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func jsonOutput() bool {
	return formatFlag == "json"
}
