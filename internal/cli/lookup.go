package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"oto2mcp/internal/config"
	"oto2mcp/internal/fetch"
	"oto2mcp/internal/forvo"
)

var lookupCmd = &cobra.Command{
	Use:   "lookup [word]",
	Short: "Local convenience: list pronunciations via the same client (no MCP)",
	Args:  cobra.ExactArgs(1),
	RunE:  runLookup,
}

var (
	lookupLang  string
	lookupLimit int
)

func init() {
	lookupCmd.Flags().StringVar(&lookupLang, "lang", "", "provider language code (default from config)")
	lookupCmd.Flags().IntVar(&lookupLimit, "limit", 10, "maximum results")
}

func runLookup(_ *cobra.Command, args []string) error {
	cfg, err := config.Load(config.Options{
		ConfigPath: globalFlags.ConfigPath,
	})
	if err != nil {
		exitWith(ExitConfigInvalid, "ERROR: "+err.Error())
	}

	language := lookupLang
	if language == "" {
		language = cfg.DefaultLanguage
	}

	fetcher := fetch.New(time.Duration(cfg.RequestTimeoutSeconds)*time.Second, cfg.MaxRedirects)
	client := forvo.NewClient(cfg.ForvoAPIKey, fetcher)
	if cfg.ForvoBaseURL != "" {
		client.BaseURL = cfg.ForvoBaseURL
	}

	word := args[0]
	items, err := client.WordPronunciations(context.Background(), word, forvo.Query{
		Language: language,
		Order:    "rate-desc",
		Limit:    lookupLimit,
	})
	if err != nil {
		exitWith(ExitLookupFailure, "ERROR: "+err.Error())
	}

	st := newStyles(os.Stdout, globalFlags.JSON)
	if len(items) == 0 {
		fmt.Println(st.dim(fmt.Sprintf("no pronunciations found for %q in language %q", word, language)))
		return nil
	}

	fmt.Println(st.sectionHeader(fmt.Sprintf("%d pronunciation(s) for %q", len(items), word)))
	for _, item := range items {
		fmt.Printf("  %s %s %s\n",
			st.stat("rate", item.Rate),
			st.stat("by", item.Username),
			st.dim(item.AudioURL()),
		)
	}
	return nil
}
