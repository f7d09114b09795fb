package textrules

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/Vovarama1992/moore_demo/internal/lang"
)

// Переводчик плохо знает "bienvenu(e)", поэтому подменяем на "bonne arrivée".
// Обе формы дают одну и ту же фразу, без согласования по роду.
const welcomeReplacement = "bonne arrivée"

var welcomeForms = []string{"bienvenu", "bienvenue"}

// PreprocessFrench переписывает известные фразы во французском тексте перед
// отправкой в переводчик. Регистр каждого совпадения сохраняется.
func PreprocessFrench(text string) string {
	if text == "" {
		return text
	}
	return replaceWords(text, func(word string) (string, bool) {
		for _, form := range welcomeForms {
			if strings.EqualFold(word, form) {
				return matchCase(word, welcomeReplacement), true
			}
		}
		return "", false
	})
}

// PreprocessValue — то же самое для произвольного значения из JSON:
// всё, что не строка, возвращается как есть.
func PreprocessValue(v any) any {
	s, ok := v.(string)
	if !ok {
		return v
	}
	return PreprocessFrench(s)
}

// IsFrenchSource решает, нужна ли предобработка перед переводом.
func IsFrenchSource(src string) bool {
	return src == lang.French
}

// matchCase рендерит replacement в регистре совпадения:
// ВСЁ ЗАГЛАВНЫМИ, С заглавной или строчными.
func matchCase(match, replacement string) string {
	if match == strings.ToUpper(match) {
		return strings.ToUpper(replacement)
	}

	first, _ := utf8.DecodeRuneInString(match)
	if unicode.IsUpper(first) {
		lower := strings.ToLower(replacement)
		if lower == "" {
			return lower
		}
		r, size := utf8.DecodeRuneInString(lower)
		return string(unicode.ToUpper(r)) + lower[size:]
	}

	return strings.ToLower(replacement)
}

// IsWord сообщает, что s целиком одно слово в смысле replaceWords.
// Правило с пробелом или пунктуацией в from никогда не сработает.
func IsWord(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !isWordRune(r) {
			return false
		}
	}
	return true
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.Is(unicode.Mn, r) || r == '_'
}

// replaceWords проходит по словам text (границы по Unicode) и подменяет те,
// для которых replace вернул true. Всё остальное копируется байт в байт.
func replaceWords(text string, replace func(word string) (string, bool)) string {
	var (
		b     strings.Builder
		last  int
		start = -1
	)

	emit := func(end int) {
		word := text[start:end]
		if repl, ok := replace(word); ok {
			b.WriteString(text[last:start])
			b.WriteString(repl)
			last = end
		}
		start = -1
	}

	for i, r := range text {
		if isWordRune(r) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			emit(i)
		}
	}
	if start >= 0 {
		emit(len(text))
	}

	if last == 0 && b.Len() == 0 {
		return text
	}
	b.WriteString(text[last:])
	return b.String()
}
