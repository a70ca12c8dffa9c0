// Package transform заменяет слова в видимом тексте HTML-документа,
// не трогая разметку и значения атрибутов.
package transform

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"

	"github.com/Totarae/FaleProxy/internal/model"
)

// DefaultSkipTags — элементы, текст которых не виден пользователю.
var DefaultSkipTags = []string{"script", "style", "noscript", "template"}

// HTMLTransformer разбирает HTML, переписывает текст и сериализует результат.
type HTMLTransformer interface {
	Transform(r io.Reader) (string, error)
}

// TextReplacer заменяет вхождения по правилам только в текстовых узлах.
type TextReplacer struct {
	replacer *strings.Replacer
	skip     cascadia.Selector
}

// NewTextReplacer создаёт TextReplacer. Пустой skipTags означает, что
// переписывается текст во всех элементах.
func NewTextReplacer(rules []model.Rule, skipTags []string) (*TextReplacer, error) {
	if len(rules) == 0 {
		return nil, fmt.Errorf("no replacement rules")
	}

	pairs := make([]string, 0, len(rules)*2)
	for _, r := range rules {
		if r.From == "" {
			return nil, fmt.Errorf("replacement with empty source term")
		}
		pairs = append(pairs, r.From, r.To)
	}

	t := &TextReplacer{replacer: strings.NewReplacer(pairs...)}
	if len(skipTags) > 0 {
		sel, err := cascadia.Compile(strings.Join(skipTags, ", "))
		if err != nil {
			return nil, fmt.Errorf("invalid skip tags %v: %w", skipTags, err)
		}
		t.skip = sel
	}
	return t, nil
}

// Transform применяет правила к тексту документа и возвращает его HTML.
// Результат всегда полный документ: фрагмент вроде <p>..</p> возвращается
// обёрнутым в <html><head></head><body>..</body></html>. Повторный вызов
// на собственном результате ничего не меняет.
func (t *TextReplacer) Transform(r io.Reader) (string, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return "", fmt.Errorf("parse html: %w", err)
	}

	t.ReplaceText(doc.Selection)

	out, err := doc.Html()
	if err != nil {
		return "", fmt.Errorf("render html: %w", err)
	}
	return out, nil
}

// ReplaceText переписывает текстовые узлы внутри выборки на месте.
// Узлы комментариев и атрибуты не затрагиваются.
func (t *TextReplacer) ReplaceText(sel *goquery.Selection) {
	elements := sel.Find("*")
	if t.skip != nil {
		hidden := sel.FindMatcher(t.skip)
		elements = elements.NotSelection(hidden.AddSelection(hidden.Find("*")))
	}

	elements.Contents().Each(func(_ int, s *goquery.Selection) {
		node := s.Get(0)
		if node.Type != html.TextNode {
			return
		}
		node.Data = t.replacer.Replace(node.Data)
	})
}
