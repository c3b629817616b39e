package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	gojwt "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/skillscan/pkg/nlp"
)

type fieldsPipeline struct{}

func (fieldsPipeline) Tokenize(text string) ([]string, error) {
	var out []string
	for _, f := range strings.Fields(text) {
		out = append(out, strings.Trim(f, ".,;:"))
	}
	return out, nil
}

func (p fieldsPipeline) Annotate(text string) (nlp.Document, error) {
	toks, _ := p.Tokenize(text)
	return nlp.Document{Tokens: toks, Entities: []nlp.Entity{{Text: "Acme", Label: "ORG"}}}, nil
}

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func useFakePipeline(t *testing.T) {
	t.Helper()
	prev := newPipeline
	newPipeline = func() (nlp.Pipeline, error) { return fieldsPipeline{}, nil }
	t.Cleanup(func() { newPipeline = prev })
}

func TestExtractFromStdin(t *testing.T) {
	useFakePipeline(t)
	out, err := run(t, "Acme hires a Go and Docker engineer.", "extract", "--vocabulary", "")
	require.NoError(t, err)

	var res struct {
		Keywords []string `json:"keywords"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, []string{"acme", "docker", "go"}, res.Keywords)
}

func TestExtractFromFile(t *testing.T) {
	useFakePipeline(t)
	path := filepath.Join(t.TempDir(), "cv.txt")
	require.NoError(t, os.WriteFile(path, []byte("Python, Django and PostgreSQL"), 0o644))

	out, err := run(t, "", "extract", "--vocabulary", "", path)
	require.NoError(t, err)
	assert.Contains(t, out, `"django"`)
	assert.Contains(t, out, `"postgresql"`)
	assert.Contains(t, out, `"python"`)
}

func TestExtractRejectsUnsupportedFile(t *testing.T) {
	useFakePipeline(t)
	path := filepath.Join(t.TempDir(), "cv.rtf")
	require.NoError(t, os.WriteFile(path, []byte("python"), 0o644))

	_, err := run(t, "", "extract", "--vocabulary", "", path)
	assert.Error(t, err)
}

func TestVocabularyWithExtraFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vocab.yaml")
	require.NoError(t, os.WriteFile(path, []byte("keywords:\n  - Elixir\n  - python\n"), 0o644))

	out, err := run(t, "", "vocabulary", "--vocabulary", path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Equal(t, "python", lines[0])
	assert.Equal(t, "elixir", lines[len(lines)-1])
	assert.Contains(t, lines, "tdd")
}

func TestToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "cli-secret")
	t.Setenv("JWT_ISSUER", "skillscan")

	out, err := run(t, "", "token", "--subject", "recruiter")
	require.NoError(t, err)

	claims := &gojwt.RegisteredClaims{}
	_, err = gojwt.ParseWithClaims(strings.TrimSpace(out), claims, func(*gojwt.Token) (any, error) {
		return []byte("cli-secret"), nil
	})
	require.NoError(t, err)
	assert.Equal(t, "recruiter", claims.Subject)
	assert.Equal(t, "skillscan", claims.Issuer)
}

func TestTokenWithoutSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	_, err := run(t, "", "token", "--subject", "recruiter")
	assert.ErrorContains(t, err, "JWT_SECRET")
}
