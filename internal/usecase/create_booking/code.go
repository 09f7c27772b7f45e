package create_booking

import (
	"math/rand"
	"strings"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

const codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// generateBookingCode строит код записи вида GLOWSALON-A1B2C3:
// префикс из заглавных латинских букв названия бизнеса и случайный суффикс
func generateBookingCode(businessName string) string {
	var prefix strings.Builder
	for _, r := range strings.ToUpper(businessName) {
		if r >= 'A' && r <= 'Z' {
			prefix.WriteRune(r)
			if prefix.Len() >= domain.BookingCodePrefixMaxLen {
				break
			}
		}
	}

	suffix := make([]byte, domain.BookingCodeSuffixLen)
	for i := range suffix {
		suffix[i] = codeAlphabet[rand.Intn(len(codeAlphabet))]
	}

	return prefix.String() + "-" + string(suffix)
}
