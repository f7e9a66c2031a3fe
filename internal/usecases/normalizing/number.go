package normalizing

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/yuuki-courage/aads/internal/domain"
)

var (
	numberNoise   = regexp.MustCompile(`[^0-9.,\-．]`)
	numberPrefix  = regexp.MustCompile(`^-?(?:[0-9]+\.?[0-9]*|\.[0-9]+)`)
	spaceVariants = strings.NewReplacer("\u3000", " ", "\u00a0", " ", "\u200b", " ")
)

// ToNumber converte um valor bruto em número. Remove símbolos de moeda, separadores de milhar
// e pontuação de largura total. Dígitos de largura total não são aceitos. Texto vazio,
// inválido ou não finito vira ausente.
func ToNumber(value any) domain.OptionalNumber {
	switch v := value.(type) {
	case nil:
		return domain.NoNumber()
	case float64:
		return domain.Number(v)
	case float32:
		return domain.Number(float64(v))
	case int:
		return domain.Number(float64(v))
	case int32:
		return domain.Number(float64(v))
	case int64:
		return domain.Number(float64(v))
	case uint:
		return domain.Number(float64(v))
	case uint64:
		return domain.Number(float64(v))
	case string:
		return parseNumberText(v)
	case bool, time.Time:
		return domain.NoNumber()
	default:
		return domain.NoNumber()
	}
}

func parseNumberText(raw string) domain.OptionalNumber {
	if raw == "" {
		return domain.NoNumber()
	}

	s := spaceVariants.Replace(raw)
	s = numberNoise.ReplaceAllString(s, "")
	s = strings.ReplaceAll(s, ",", "")
	s = strings.ReplaceAll(s, "．", ".")
	s = strings.TrimSpace(s)

	prefix := numberPrefix.FindString(s)
	if prefix == "" {
		return domain.NoNumber()
	}
	n, err := strconv.ParseFloat(strings.TrimSuffix(prefix, "."), 64)
	if err != nil {
		return domain.NoNumber()
	}
	return domain.Number(n)
}

// AsNumber converte um valor bruto em número usando fallback quando ausente
func AsNumber(value any, fallback float64) float64 {
	return ToNumber(value).Or(fallback)
}

// SafeDivide retorna a/b, ou 0 quando b é zero ou algum operando não é finito
func SafeDivide(a, b float64) float64 {
	if !isFinite(a) || !isFinite(b) || b == 0 {
		return 0
	}
	return a / b
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
