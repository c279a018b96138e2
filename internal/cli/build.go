package cli

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/iudanet/stenodict/internal/builder"
	"github.com/iudanet/stenodict/internal/dictionary"
	"github.com/iudanet/stenodict/internal/steno"
)

// BuildOptions параметры сессии построения словаря
type BuildOptions struct {
	File string
	// HTML извлекать текст статьи из HTML; по умолчанию по расширению файла
	HTML bool
	// URL адрес страницы для разрешения относительных ссылок
	URL            string
	Order          string
	IncludeDefined bool
	Dictionary     string
}

const buildHelp = `Commands:
  <strokes> [translation]  define the current word (translation defaults to the word)
  <empty line>             skip to the next word
  :n / :p                  next / previous word
  :g <number>              go to word number
  :o <order>               word order: frequency, appearance, alphabetical
  :u                       undo the last definition
  :h                       show this help
  :q                       finish the session`

// RunBuild проводит интерактивную сессию построения словаря по тексту
func (c *Cli) RunBuild(ctx context.Context, opts BuildOptions) error {
	words, err := readWords(opts)
	if err != nil {
		return err
	}

	orderName := opts.Order
	if orderName == "" {
		orderName = c.cfg.Builder.Order
	}
	order, err := builder.ParseOrder(orderName)
	if err != nil {
		return err
	}

	return c.run(ctx, func(s *session) error {
		dictPath, err := resolveDictionary(s.dicts, opts.Dictionary)
		if err != nil {
			return err
		}

		includeDefined := opts.IncludeDefined || c.cfg.Builder.IncludeDefined
		b, err := builder.NewSession(s.engine, words, includeDefined, c.logger)
		if err != nil {
			if errors.Is(err, builder.ErrNoWords) {
				c.io.Println("No words left to define.")
				return nil
			}
			return err
		}
		if err := b.SetOrder(order); err != nil {
			return err
		}

		c.io.Println("=== Dictionary Builder ===")
		c.io.Printf("Found %d word(s), saving to %s\n", b.Len(), dictionary.ShortenPath(dictPath))
		c.io.Println(buildHelp)
		c.io.Println()

		err = c.buildLoop(b, dictPath)
		s.extra = b.Modified()
		if err != nil {
			return err
		}

		c.io.Printf("Session finished, %d dictionary(ies) changed.\n", len(s.extra))
		return nil
	})
}

func (c *Cli) buildLoop(b *builder.Session, dictPath string) error {
	interactive := c.io.IsTerminal()
	for {
		// без терминала ввод идет из скрипта: прогресс отдельной строкой, без приглашения
		prompt := ""
		if interactive {
			prompt = b.Progress() + "\n> "
		} else {
			c.io.Println(b.Progress())
		}

		line, err := c.io.ReadInput(prompt)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("failed to read input: %w", err)
		}
		line = strings.TrimSpace(line)

		if !strings.HasPrefix(line, ":") {
			if done := c.define(b, line, dictPath); done {
				return nil
			}
			continue
		}

		command, arg, _ := strings.Cut(line[1:], " ")
		arg = strings.TrimSpace(arg)

		switch command {
		case "q":
			return nil
		case "n":
			if !b.Next() {
				c.io.Println("Already at the last word.")
			}
		case "p":
			if !b.Previous() {
				c.io.Println("Already at the first word.")
			}
		case "g":
			n, err := strconv.Atoi(arg)
			if err != nil || !b.SetIndex(n-1) {
				c.io.Printf("Invalid word number: %s\n", arg)
			}
		case "o":
			order, err := builder.ParseOrder(arg)
			if err != nil {
				c.io.Printf("Error: %v\n", err)
				continue
			}
			if err := b.SetOrder(order); err != nil {
				return err
			}
		case "u":
			add, err := b.Undo()
			if err != nil {
				c.io.Printf("Error: %v\n", err)
				continue
			}
			c.io.Printf("Undone %s -> %s\n", add.Strokes, steno.EscapeTranslation(add.New))
		case "h":
			c.io.Println(buildHelp)
		default:
			c.io.Printf("Unknown command: %s\n", line)
		}
	}
}

// define добавляет перевод текущего слова; возвращает true,
// когда определено последнее слово списка
func (c *Cli) define(b *builder.Session, line, dictPath string) bool {
	if line == "" {
		if !b.Next() {
			c.io.Println("End of word list.")
			return true
		}
		return false
	}

	strokes, translation, _ := strings.Cut(line, " ")
	translation = strings.TrimSpace(translation)
	if translation == "" {
		translation = b.Current()
	}

	last := b.Index() == b.Len()-1
	add, err := b.AddAndNext(strokes, translation, dictPath)
	if err != nil {
		c.io.Printf("Error: %v\n", err)
		return false
	}

	c.io.Printf("Added %s -> %s\n", add.Strokes, steno.EscapeTranslation(add.New))
	if add.Old != nil {
		c.io.Printf("Replaced previous translation: %s\n", steno.EscapeTranslation(*add.Old))
	}
	if last {
		c.io.Println("End of word list.")
	}
	return last
}

func readWords(opts BuildOptions) ([]string, error) {
	data, err := os.ReadFile(opts.File)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", opts.File, err)
	}

	text := string(data)
	ext := strings.ToLower(filepath.Ext(opts.File))
	if opts.HTML || ext == ".html" || ext == ".htm" {
		text, err = builder.ExtractText(bytes.NewReader(data), opts.URL)
		if err != nil {
			return nil, err
		}
	}

	return builder.ExtractWords(text), nil
}
