package builder

import (
	"fmt"
	"io"
	"net/url"
	"regexp"

	readability "github.com/go-shiori/go-readability"
)

// wordPattern выделяет слова (с дефисами и апострофами, в том числе
// free2play и 4life) и команды вида {PLOVER:...}; чистые числа пропускаются.
var wordPattern = regexp.MustCompile(`(?:[\p{L}\p{M}\p{N}_\-']*[\p{L}\p{M}_]+[\p{L}\p{M}\p{N}_\-']*|\{\S*\})+`)

// ExtractWords возвращает слова текста в порядке появления (с повторами)
func ExtractWords(text string) []string {
	return wordPattern.FindAllString(text, -1)
}

// ExtractText извлекает основной текст статьи из HTML
func ExtractText(r io.Reader, pageURL string) (string, error) {
	parsed, err := url.Parse(pageURL)
	if err != nil {
		return "", fmt.Errorf("failed to parse page url: %w", err)
	}

	article, err := readability.FromReader(r, parsed)
	if err != nil {
		return "", fmt.Errorf("failed to extract article: %w", err)
	}

	return article.TextContent, nil
}
