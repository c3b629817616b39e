package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/artem13815/skillscan/pkg/keywords"
)

var vocabularyCmd = &cobra.Command{
	Use:   "vocabulary",
	Short: "Print the effective vocabulary, one phrase per line",
	Args:  cobra.NoArgs,
	RunE:  runVocabulary,
}

func runVocabulary(cmd *cobra.Command, args []string) error {
	vocab, err := loadVocabulary(vocabularyPath(cmd))
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	for _, v := range vocab {
		fmt.Fprintln(out, v)
	}
	return nil
}

func loadVocabulary(path string) ([]string, error) {
	if path == "" {
		return keywords.Vocabulary(), nil
	}
	extra, err := keywords.LoadVocabularyFile(path)
	if err != nil {
		return nil, err
	}
	return keywords.Vocabulary(extra...), nil
}
