package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nasalprom/nasalprom/internal/fhir"
)

var (
	exportOutput string
	exportBase   string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export completed instruments as a FHIR Bundle",
	Long: `The export command writes a FHIR R4 collection Bundle holding one
QuestionnaireResponse per completed instrument. Item answers are valueInteger;
the raw total (and the NOSE 0-100 score) are appended as extra items.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runExport(cmd); err != nil {
			fail(cmd, err)
		}
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Write the bundle to a file")
	exportCmd.Flags().StringVar(&exportBase, "questionnaire-base", fhir.DefaultQuestionnaireBase, "Canonical prefix for questionnaire references")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	res, err := s.resolve()
	if err != nil {
		return err
	}

	bundle := fhir.BuildBundle(s.ctx, res, fhir.Options{QuestionnaireBase: exportBase})
	data, err := json.MarshalIndent(bundle, "", "  ")
	if err != nil {
		return fmt.Errorf("error marshaling bundle: %w", err)
	}

	return s.outputter(outputOptions{path: exportOutput}).Emit(string(data) + "\n")
}
