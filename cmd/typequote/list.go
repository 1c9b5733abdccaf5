package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"github.com/verte-zerg/typequote/internal/config"
	"github.com/verte-zerg/typequote/internal/stats"
	"github.com/verte-zerg/typequote/internal/store"
	"github.com/verte-zerg/typequote/internal/theme"
)

const passagePreviewWidth = 60

func newThemesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "themes",
		Short: "List color themes",
		Args:  cobra.NoArgs,
		RunE:  runThemesCmd,
	}
}

func runThemesCmd(cmd *cobra.Command, _ []string) error {
	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()

	current, ok, err := st.Theme(context.Background())
	if err != nil {
		return fmt.Errorf("failed to load saved theme: %w", err)
	}
	if !ok {
		current = theme.DefaultName
	}
	for _, line := range themeLines(current) {
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), line); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func themeLines(current string) []string {
	names := theme.Names()
	lines := make([]string, len(names))
	for i, name := range names {
		marker := "  "
		if strings.EqualFold(name, current) {
			marker = "* "
		}
		lines[i] = marker + name
	}
	return lines
}

func newPassagesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "passages",
		Short: "List practice passages",
		Args:  cobra.NoArgs,
		RunE:  runPassagesCmd,
	}
	cmd.Flags().StringVar(&listPassages, "passages", "", "passage file (default: built-in set)")
	return cmd
}

func runPassagesCmd(cmd *cobra.Command, _ []string) error {
	if !cmd.Flags().Changed("passages") {
		fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if fileCfg.Practice.Passages != nil {
			listPassages = *fileCfg.Practice.Passages
		}
	}
	set, err := loadPassageSet(listPassages)
	if err != nil {
		return err
	}
	headers, rows := passageRows(set.All())
	if err := stats.RenderTable(cmd.OutOrStdout(), headers, rows, map[int]bool{0: true, 1: true, 2: true}); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func passageRows(passages []string) ([]string, [][]string) {
	headers := []string{"#", "WORDS", "CHARS", "PASSAGE"}
	rows := make([][]string, len(passages))
	for i, p := range passages {
		rows[i] = []string{
			strconv.Itoa(i + 1),
			strconv.Itoa(len(strings.Fields(p))),
			strconv.Itoa(len([]rune(p))),
			runewidth.Truncate(p, passagePreviewWidth, "..."),
		}
	}
	return headers, rows
}
