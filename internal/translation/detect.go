package translation

import (
	"github.com/abadojack/whatlanggo"

	"github.com/Vovarama1992/moore_demo/internal/lang"
)

// DetectSource угадывает язык для src_lang=auto. whatlanggo не знает мооре,
// поэтому всё, что не распознано как французский, считаем мооре.
func DetectSource(text string) string {
	info := whatlanggo.Detect(text)
	if info.Lang == whatlanggo.Fra {
		return lang.French
	}
	return lang.Moore
}
