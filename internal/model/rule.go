package model

import (
	"fmt"
	"strings"
)

// Rule описывает одну литеральную замену в текстовых узлах.
type Rule struct {
	From string
	To   string
}

// ParseRules разбирает строку вида "Yale:Fale,yale:fale".
func ParseRules(raw string) ([]Rule, error) {
	var rules []Rule
	for _, pair := range strings.Split(raw, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		from, to, ok := strings.Cut(pair, ":")
		if !ok || from == "" {
			return nil, fmt.Errorf("invalid replacement %q, expected from:to", pair)
		}
		rules = append(rules, Rule{From: from, To: to})
	}
	return rules, nil
}
