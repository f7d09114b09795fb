package textrules

import (
	"context"
	"strings"
)

type service struct {
	repo Repo
}

func NewService(repo Repo) Service {
	return &service{repo: repo}
}

func (s *service) Process(ctx context.Context, text string) (string, error) {
	// 0) встроенные фразы
	text = PreprocessFrench(text)

	// 1) letters
	letterRules, err := s.repo.ListLetterRules(ctx)
	if err != nil {
		return "", err
	}

	if len(letterRules) > 0 {
		mapping := make(map[rune]rune, len(letterRules))
		for _, rule := range letterRules {
			from, to := []rune(rule.From), []rune(rule.To)
			if len(from) == 1 && len(to) == 1 {
				mapping[from[0]] = to[0]
			}
		}
		text = strings.Map(func(r rune) rune {
			if to, ok := mapping[r]; ok {
				return to
			}
			return r
		}, text)
	}

	// 2) words
	wordRules, err := s.repo.ListWordRules(ctx)
	if err != nil {
		return "", err
	}

	if len(wordRules) == 0 {
		return text, nil
	}

	return replaceWords(text, func(word string) (string, bool) {
		for _, rule := range wordRules {
			if strings.EqualFold(word, rule.From) {
				return matchCase(word, rule.To), true
			}
		}
		return "", false
	}), nil
}
