package resume

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"strings"
	"unicode/utf8"

	pdf "github.com/ledongthuc/pdf"
)

// ErrUnsupportedFormat is returned for files other than .pdf, .docx and .txt.
var ErrUnsupportedFormat = errors.New("unsupported file format: only pdf, docx and txt are allowed")

var (
	reXMLTags    = regexp.MustCompile(`<[^>]+>`)
	reHSpace     = regexp.MustCompile(`[ \t\r\f\v]+`)
	reNewlineRun = regexp.MustCompile(`\n+`)
)

// Supported reports whether filename has an extension ParseText understands.
func Supported(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf", ".docx", ".txt":
		return true
	}
	return false
}

// ParseText extracts plain text from a resume or job description file.
func ParseText(filename string, data []byte) (string, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".pdf":
		return extractTextFromPDF(data)
	case ".docx":
		return extractTextFromDocx(data)
	case ".txt":
		if !utf8.Valid(data) {
			return "", errors.New("text file is not valid UTF-8")
		}
		return normalizeWhitespace(string(data)), nil
	default:
		return "", ErrUnsupportedFormat
	}
}

func extractTextFromPDF(data []byte) (string, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}
	rs, err := r.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("read pdf text: %w", err)
	}
	var buf bytes.Buffer
	if _, err = io.Copy(&buf, rs); err != nil {
		return "", err
	}
	return normalizeWhitespace(buf.String()), nil
}

func extractTextFromDocx(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("open docx: %w", err)
	}
	var docXML []byte
	for _, f := range zr.File {
		if f.Name != "word/document.xml" {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return "", err
		}
		docXML, err = io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return "", err
		}
		break
	}
	if len(docXML) == 0 {
		return "", errors.New("no document.xml found in docx")
	}
	xml := string(docXML)
	// paragraph boundaries become newlines
	xml = strings.ReplaceAll(xml, "</w:p>", "\n")
	xml = strings.ReplaceAll(xml, "<w:tab/>", "\t")
	txt := reXMLTags.ReplaceAllString(xml, " ")
	return normalizeWhitespace(unescapeXML(txt)), nil
}

var xmlEntities = strings.NewReplacer("&amp;", "&", "&lt;", "<", "&gt;", ">", "&quot;", `"`, "&apos;", "'")

func unescapeXML(s string) string { return xmlEntities.Replace(s) }

func normalizeWhitespace(s string) string {
	s = strings.ReplaceAll(s, "\u00A0", " ")
	s = reHSpace.ReplaceAllString(s, " ")
	s = reNewlineRun.ReplaceAllString(s, "\n")
	return strings.TrimSpace(s)
}
