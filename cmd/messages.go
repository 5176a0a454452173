package main

import (
	"fmt"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/praguedigital/leadgen-cli/internal/export"
	"github.com/praguedigital/leadgen-cli/internal/outreach"
)

var (
	messagesInput    string
	messagesOut      string
	messagesLanguage string
	messagesSender   string
	messagesNoDemo   bool
)

var messagesCmd = &cobra.Command{
	Use:   "messages",
	Short: "Generate cold-outreach messages for enriched prospects",
	Long: `Loads prospects from a JSON export and writes one personalized message
per prospect to a text file. Messages address the extracted owner when
one is present.

Example:
  leadgen-cli messages --input prospects.json --out messages.txt --language cs --sender "Jana Dvořáková"`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if messagesInput == "" {
			return eris.New("messages: --input is required")
		}
		if messagesOut == "" {
			return eris.New("messages: --out is required")
		}

		prospects, err := export.ReadJSON(messagesInput)
		if err != nil {
			return eris.Wrap(err, "messages: load input")
		}
		zap.L().Info("loaded prospects", zap.Int("count", len(prospects)), zap.String("path", messagesInput))

		language := messagesLanguage
		if language == "" {
			language = cfg.Outreach.Language
		}
		sender := messagesSender
		if sender == "" {
			sender = cfg.Outreach.SenderName
		}

		gen := outreach.NewGenerator(language,
			outreach.WithSender(sender),
			outreach.WithDemoOffer(!messagesNoDemo),
		)

		if err := gen.WriteMessages(prospects, messagesOut); err != nil {
			return eris.Wrap(err, "messages: write")
		}

		fmt.Printf("saved %d messages to %s\n", len(prospects), messagesOut)
		return nil
	},
}

func init() {
	messagesCmd.Flags().StringVar(&messagesInput, "input", "", "JSON prospect export")
	messagesCmd.Flags().StringVar(&messagesOut, "out", "", "output text file")
	messagesCmd.Flags().StringVar(&messagesLanguage, "language", "", "message language (cs, en, ru)")
	messagesCmd.Flags().StringVar(&messagesSender, "sender", "", "sender name for the signature")
	messagesCmd.Flags().BoolVar(&messagesNoDemo, "no-demo", false, "omit the free demo offer")

	rootCmd.AddCommand(messagesCmd)
}
