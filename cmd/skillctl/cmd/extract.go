package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/artem13815/skillscan/api/http/presenter"
	"github.com/artem13815/skillscan/pkg/keywords"
	"github.com/artem13815/skillscan/pkg/nlp"
	"github.com/artem13815/skillscan/pkg/nlp/prose"
	"github.com/artem13815/skillscan/pkg/resume"
)

// newPipeline is swapped in tests.
var newPipeline = func() (nlp.Pipeline, error) { return prose.New() }

var extractCmd = &cobra.Command{
	Use:   "extract [file]",
	Short: "Extract skill keywords from a pdf, docx or txt file, or from stdin",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runExtract,
}

func runExtract(cmd *cobra.Command, args []string) error {
	req := keywords.Request{Source: keywords.SourceText}
	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		text, err := resume.ParseText(filepath.Base(args[0]), data)
		if err != nil {
			return fmt.Errorf("read %s: %w", args[0], err)
		}
		req = keywords.Request{Text: text, Source: keywords.SourceFile, Filename: filepath.Base(args[0])}
	} else {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		req.Text = string(data)
	}

	pipeline, err := newPipeline()
	if err != nil {
		return fmt.Errorf("load language pipeline: %w", err)
	}
	vocab, err := loadVocabulary(vocabularyPath(cmd))
	if err != nil {
		return err
	}
	matcher, err := keywords.NewMatcher(pipeline, vocab)
	if err != nil {
		return err
	}

	res, err := keywords.NewService(pipeline, matcher).Extract(cmd.Context(), req)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(presenter.KeywordsResponse{Keywords: res.Keywords})
}
