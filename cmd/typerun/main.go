// Package main provides the CLI entrypoint for typerun.
package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/typerun/internal/config"
	"github.com/verte-zerg/typerun/internal/generator"
	"github.com/verte-zerg/typerun/internal/match"
	"github.com/verte-zerg/typerun/internal/model"
	"github.com/verte-zerg/typerun/internal/session"
	"github.com/verte-zerg/typerun/internal/stats"
	"github.com/verte-zerg/typerun/internal/tui"
	"github.com/verte-zerg/typerun/internal/vocab"
)

var (
	practiceWords     int
	practiceExtend    int
	practiceWindow    int
	practiceBehind    int
	practiceVocab     string
	practiceVocabFile string
	practiceSeed      int64
	practiceDebugLog  string
)

var errNotTerminal = errors.New("typerun needs an interactive terminal")

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "typerun",
		Short:         "Terminal typing-speed practice",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runPracticeCmd,
	}

	rootCmd.Flags().IntVar(&practiceWords, "words", generator.DefaultWords, "words in a freshly generated text")
	rootCmd.Flags().IntVar(&practiceExtend, "extend", generator.DefaultExtendWords, "words appended when the text runs low")
	rootCmd.Flags().IntVar(&practiceWindow, "window", match.DefaultWindowSize, "words shown in the visible line")
	rootCmd.Flags().IntVar(&practiceBehind, "behind", match.DefaultWindowBack, "typed words kept visible before the current one")
	rootCmd.Flags().StringVar(&practiceVocab, "vocab", vocab.DefaultName, "embedded vocabulary name")
	rootCmd.Flags().StringVar(&practiceVocabFile, "vocab-file", "", "word list file (overrides --vocab)")
	rootCmd.Flags().Int64Var(&practiceSeed, "seed", 0, "shuffle seed (0 = random)")
	rootCmd.Flags().StringVar(&practiceDebugLog, "debug-log", "", "write debug log to this file")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newVocabCmd())

	return rootCmd
}

func runPracticeCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := resolvePracticeConfig(cmd)
	if err != nil {
		return err
	}
	if err := validateConfig(cfg); err != nil {
		return err
	}
	words, err := loadVocab(cfg)
	if err != nil {
		return err
	}
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return errNotTerminal
	}

	closeLog, err := setupLogging(practiceDebugLog)
	if err != nil {
		return err
	}
	defer closeLog()

	gen := generator.New()
	if cfg.Seed != 0 {
		gen = generator.NewWithSeed(cfg.Seed)
	}
	s := session.New(gen, words, session.Options{
		Words:       cfg.Words,
		ExtendWords: cfg.ExtendWords,
		Window:      match.Options{Size: cfg.WindowSize, Back: cfg.WindowBack},
	})
	log.Printf("session started: vocab=%q words=%d seed=%d", cfg.Vocab, len(words), cfg.Seed)

	m := tui.NewModel(s, nil)
	program := tea.NewProgram(m, tea.WithAltScreen())
	final, err := program.Run()
	if err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	if fm, ok := final.(*tui.Model); ok {
		metrics, elapsed, started := fm.Summary()
		if started {
			return stats.RenderSummary(cmd.OutOrStdout(), metrics, elapsed)
		}
	}
	return nil
}

func resolvePracticeConfig(cmd *cobra.Command) (model.Config, error) {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return model.Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	applyConfig(cmd, "words", &practiceWords, fileCfg.Practice.Words)
	applyConfig(cmd, "extend", &practiceExtend, fileCfg.Practice.ExtendWords)
	applyConfig(cmd, "window", &practiceWindow, fileCfg.Practice.WindowSize)
	applyConfig(cmd, "behind", &practiceBehind, fileCfg.Practice.WindowBack)
	applyConfig(cmd, "vocab", &practiceVocab, fileCfg.Practice.Vocab)
	applyConfig(cmd, "vocab-file", &practiceVocabFile, fileCfg.Practice.VocabFile)
	applyConfig(cmd, "seed", &practiceSeed, fileCfg.Practice.Seed)

	return model.Config{
		Words:       practiceWords,
		ExtendWords: practiceExtend,
		WindowSize:  practiceWindow,
		WindowBack:  practiceBehind,
		Vocab:       practiceVocab,
		VocabFile:   practiceVocabFile,
		Seed:        practiceSeed,
	}, nil
}

func setupLogging(path string) (func(), error) {
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}, nil
	}
	f, err := tea.LogToFile(path, "typerun")
	if err != nil {
		return nil, fmt.Errorf("failed to open debug log: %w", err)
	}
	return func() {
		if cerr := f.Close(); cerr != nil {
			logErrf("failed to close debug log: %v\n", cerr)
		}
	}, nil
}

func loadVocab(cfg model.Config) ([]string, error) {
	if cfg.VocabFile != "" {
		words, err := vocab.LoadWords(cfg.VocabFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load word list %s: %w", cfg.VocabFile, err)
		}
		return words, nil
	}
	return vocab.Embedded(cfg.Vocab)
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func newVocabCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vocab",
		Short: "List embedded vocabularies",
		Args:  cobra.NoArgs,
		RunE:  runVocabListCmd,
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "show <name>",
		Short: "Print an embedded vocabulary",
		Args:  cobra.ExactArgs(1),
		RunE:  runVocabShowCmd,
	})
	return cmd
}

func runVocabListCmd(cmd *cobra.Command, _ []string) error {
	for _, name := range vocab.Names() {
		words, err := vocab.Embedded(name)
		if err != nil {
			return err
		}
		marker := " "
		if name == vocab.DefaultName {
			marker = "*"
		}
		if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s %-10s %d words\n", marker, name, len(words)); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func runVocabShowCmd(cmd *cobra.Command, args []string) error {
	words, err := vocab.Embedded(args[0])
	if err != nil {
		return err
	}
	for _, word := range words {
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), word); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func applyConfig[T any](cmd *cobra.Command, name string, target, value *T) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# typerun configuration
# Uncomment a value to enable it. CLI flags override config values.

[practice]
# words = %d             # Words in a freshly generated text
# extend = %d            # Words appended when the text runs low
# window = %d             # Words shown in the visible line
# behind = %d             # Typed words kept visible before the current one
# vocab = %q        # Embedded vocabulary (see: typerun vocab)
# vocab-file = ""         # Word list file, one word per line (overrides vocab)
# seed = 0                # Shuffle seed (0 = random)
`,
		generator.DefaultWords,
		generator.DefaultExtendWords,
		match.DefaultWindowSize,
		match.DefaultWindowBack,
		vocab.DefaultName,
	)
}

func validateConfig(cfg model.Config) error {
	if cfg.Words <= 0 {
		return fmt.Errorf("--words must be > 0")
	}
	if cfg.ExtendWords <= 0 {
		return fmt.Errorf("--extend must be > 0")
	}
	if cfg.WindowSize <= 0 {
		return fmt.Errorf("--window must be > 0")
	}
	if cfg.WindowBack < 0 {
		return fmt.Errorf("--behind must be >= 0")
	}
	if cfg.WindowBack >= cfg.WindowSize {
		return fmt.Errorf("--behind must be less than --window")
	}
	return nil
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
