package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/spf13/cobra"
)

var errEmptyInput = errors.New("入力テキストを入れてください。")

func newAskCmd(root *rootOptions) *cobra.Command {
	var personaName string

	cmd := &cobra.Command{
		Use:   "ask [text...]",
		Short: "Ask a single question and print the answer",
		Long: `Ask a single question and print the answer.

The question is taken from the arguments, or from standard input when no
arguments are given. --persona accepts a persona label or its short key
(aviation, rail, hotel, automotive); unknown values use the default persona.`,
		Example: `  consult ask --persona hotel "繁忙期の料金設定を見直したい"
  echo "EV の販売戦略を教えて" | consult ask --persona automotive`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if root.debug {
				log.SetOutput(cmd.ErrOrStderr())
			} else {
				log.SetOutput(io.Discard)
			}

			text := strings.Join(args, " ")
			if len(args) == 0 {
				data, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
				text = string(data)
			}
			if strings.TrimSpace(text) == "" {
				return errEmptyInput
			}

			adv, _, err := newAdvisor(root)
			if err != nil {
				return err
			}

			label := personaName
			if p, ok := adv.Catalog().Find(personaName); ok {
				label = p.Label
			}

			answer, err := adv.Ask(context.Background(), text, label)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), answer)
			return nil
		},
	}

	cmd.Flags().StringVarP(&personaName, "persona", "p", "", "persona label or key (default: first persona)")

	return cmd
}
