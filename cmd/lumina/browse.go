package main

import (
	"errors"
	"os"
	"strings"

	"lumina/internal/auth"
	"lumina/internal/feed"
	"lumina/internal/i18n"
	"lumina/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

var (
	browseUser     string
	browsePassword string
	browseLang     string
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse the mixed feed in the terminal",
	Long: `Opens the feed with one page visible.

Keys: tab switches filter, m loads more, l likes the selected item (needs
--user), arrows move, q quits.`,
	RunE: runBrowse,
}

func init() {
	browseCmd.Flags().StringVar(&browseUser, "user", "", "sign in as this user")
	browseCmd.Flags().StringVar(&browsePassword, "password", "", "password for --user")
	browseCmd.Flags().StringVar(&browseLang, "lang", os.Getenv("LANG"), "display language")
}

func runBrowse(cmd *cobra.Command, args []string) error {
	store, err := newStore()
	if err != nil {
		return err
	}
	users, err := newRegistry()
	if err != nil {
		return err
	}

	gate := auth.NewGate(users)
	if browseUser != "" && !gate.Login(browseUser, browsePassword) {
		return errors.New(i18n.For(langTag(browseLang)).T("Invalid credentials"))
	}

	pager := feed.NewPager(store, feed.Composer{},
		feed.WithPageSize(cfg.FeedPageSize),
		feed.WithDelay(cfg.FeedLoadDelay),
		feed.WithPagerLogger(logger.Named("feed")),
	)
	defer pager.Close()

	b := ui.NewBrowser(pager, store, gate, i18n.For(langTag(browseLang)))
	_, err = tea.NewProgram(b, tea.WithContext(cmd.Context())).Run()
	return err
}

// langTag turns a POSIX locale such as "zh_CN.UTF-8" into "zh-CN".
func langTag(locale string) string {
	locale, _, _ = strings.Cut(locale, ".")
	return strings.ReplaceAll(locale, "_", "-")
}
