package format

import "strings"

// ValidTaxID validación simplificada: exactamente 11 dígitos ASCII, sin puntos ni guiones.
// No verifica dígitos de control.
func ValidTaxID(taxID string) bool {
	if len(taxID) != 11 {
		return false
	}
	return len(extractDigits(taxID)) == 11
}

// ValidEmail validación simplificada: no vacío y contiene '@' y '.'.
func ValidEmail(email string) bool {
	if email == "" {
		return false
	}
	return strings.Contains(email, "@") && strings.Contains(email, ".")
}

func extractDigits(s string) []byte {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			out = append(out, s[i])
		}
	}
	return out
}
