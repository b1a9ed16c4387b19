package mapper

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

// ParseFloat reads the text of a YAML float scalar using TOML's float
// grammar. YAML spellings TOML lacks (.inf, .nan, .5, 1.) are rewritten to
// their TOML form first; anything else TOML rejects is an error.
func ParseFloat(text string) (float64, error) {
	s := tomlFloatText(strings.TrimSpace(text))
	if s == "" || strings.IndexFunc(s, invalidFloatRune) >= 0 || radixPrefixed(s) {
		return 0, fmt.Errorf("%q is not a number", text)
	}

	var doc struct {
		V any `toml:"v"`
	}
	if _, err := toml.Decode("v = "+s, &doc); err != nil {
		return 0, fmt.Errorf("%q is not a number", text)
	}
	switch v := doc.V.(type) {
	case float64:
		return v, nil
	case int64:
		return float64(v), nil
	default:
		return 0, fmt.Errorf("%q is not a number", text)
	}
}

func tomlFloatText(s string) string {
	sign := ""
	body := s
	if strings.HasPrefix(body, "+") || strings.HasPrefix(body, "-") {
		sign, body = body[:1], body[1:]
	}

	switch strings.ToLower(body) {
	case ".inf":
		if body == ".inf" || body == ".Inf" || body == ".INF" {
			return sign + "inf"
		}
	case ".nan":
		if sign == "" && (body == ".nan" || body == ".NaN" || body == ".NAN") {
			return "nan"
		}
	}

	mantissa, exp := body, ""
	if i := strings.IndexAny(body, "eE"); i >= 0 {
		mantissa, exp = body[:i], body[i:]
	}
	if !strings.ContainsAny(mantissa, "0123456789") {
		return s
	}
	if strings.HasPrefix(mantissa, ".") {
		mantissa = "0" + mantissa
	}
	if strings.HasSuffix(mantissa, ".") {
		mantissa += "0"
	}
	return sign + mantissa + exp
}

// radixPrefixed reports whether s uses TOML's hex, octal or binary integer
// form, which is not a float spelling in either format.
func radixPrefixed(s string) bool {
	body := strings.TrimLeft(s, "+-")
	if len(body) < 2 || body[0] != '0' {
		return false
	}
	switch body[1] {
	case 'x', 'X', 'o', 'O', 'b', 'B':
		return true
	}
	return false
}

// invalidFloatRune rejects anything that could smuggle extra TOML syntax
// into the decoded line.
func invalidFloatRune(r rune) bool {
	switch {
	case r >= '0' && r <= '9', r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		return false
	case r == '+', r == '-', r == '.', r == '_':
		return false
	default:
		return true
	}
}
