package lang

// Коды языков удалённого сервиса перевода (NLLB-style)
const (
	French = "fra_Latn"
	Moore  = "mos_Latn"
	Auto   = "auto"
)

func Supported(code string) bool {
	return code == French || code == Moore
}

// Other — противоположный язык пары
func Other(code string) string {
	if code == French {
		return Moore
	}
	return French
}
