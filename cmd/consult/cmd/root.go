package cmd

import (
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sant0-9/consult/internal/advisor"
	"github.com/sant0-9/consult/internal/config"
	"github.com/sant0-9/consult/internal/llm"
	"github.com/sant0-9/consult/internal/tui"
	"github.com/spf13/cobra"
)

const debugLogFile = "consult-debug.log"

type rootOptions struct {
	cfgFile string
	debug   bool
}

// Execute runs the CLI and returns the process exit code
func Execute(version string) int {
	root := NewRootCmd(version)
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "エラー: %v\n", err)
		return 1
	}
	return 0
}

// NewRootCmd builds the command tree
func NewRootCmd(version string) *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "consult",
		Short: "Ask an industry expert persona for advice",
		Long: `consult sends your question, framed by one of four industry expert
personas (aviation, rail, hotel, automotive), to a chat-completion model
and shows the answer.

Run without a subcommand to open the interactive form.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(opts)
		},
	}

	root.PersistentFlags().StringVar(&opts.cfgFile, "config", "", "config file (default $XDG_CONFIG_HOME/consult/config.yaml)")
	root.PersistentFlags().BoolVar(&opts.debug, "debug", os.Getenv("CONSULT_DEBUG") != "", "write debug logs")

	root.AddCommand(
		newAskCmd(opts),
		newPersonasCmd(),
		newConfigCmd(opts),
	)

	return root
}

func runTUI(opts *rootOptions) error {
	if opts.debug {
		f, err := tea.LogToFile(debugLogFile, "consult")
		if err != nil {
			return fmt.Errorf("open debug log: %w", err)
		}
		defer f.Close()
	} else {
		// the terminal belongs to the UI
		log.SetOutput(io.Discard)
	}

	adv, cfg, err := newAdvisor(opts)
	if err != nil {
		return err
	}

	var keyEnv string
	if info := config.GetProvider(cfg.Provider); info != nil {
		keyEnv = info.APIKeyEnv
	}

	app := tui.NewApp(adv, adv.Catalog(), fmt.Sprintf("%s via %s", adv.Model(), cfg.Provider), keyEnv)
	p := tea.NewProgram(
		app,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

// newAdvisor wires config, provider and personas together
func newAdvisor(opts *rootOptions) (*advisor.Advisor, *config.Config, error) {
	cfg, err := config.Resolve(opts.cfgFile)
	if err != nil {
		return nil, nil, err
	}

	provider, err := llm.NewProvider(cfg)
	if err != nil {
		return nil, nil, err
	}
	log.Printf("provider=%s model=%s base_url=%s", provider.Name(), cfg.Model, cfg.BaseURL)

	return advisor.New(provider, nil, cfg.Model), cfg, nil
}
