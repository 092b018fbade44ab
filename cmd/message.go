package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nasalprom/nasalprom/internal/message"
)

var (
	messageNoTSV  bool
	messageMailto string
)

var messageCmd = &cobra.Command{
	Use:   "message",
	Short: "Compose the email subject and body",
	Long: `The message command composes an email: a subject naming the date and timepoint,
and a body holding the narrative report followed by the TSV row.

Use --mailto to print a mailto: link that opens the message in a mail client.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runMessage(cmd); err != nil {
			fail(cmd, err)
		}
	},
}

func init() {
	messageCmd.Flags().BoolVar(&messageNoTSV, "no-tsv", false, "Leave the TSV row out of the body")
	messageCmd.Flags().StringVar(&messageMailto, "mailto", "", "Print a mailto: link addressed to this recipient")
	rootCmd.AddCommand(messageCmd)
}

func runMessage(cmd *cobra.Command) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	res, err := s.resolve()
	if err != nil {
		return err
	}

	opts := message.DefaultOptions()
	opts.IncludeTSV = s.cfg.AttachTSV && !messageNoTSV
	m, err := message.Compose(s.ctx, res, opts)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("mailto") {
		return s.outputter(outputOptions{}).Emit(message.MailtoURL(messageMailto, m) + "\n")
	}
	text := fmt.Sprintf("Subject: %s\n\n%s", m.Subject, m.Body)
	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	return s.outputter(outputOptions{}).Emit(text)
}
