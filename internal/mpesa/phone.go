package mpesa

import (
	"fmt"
	"strings"

	"github.com/SergeyBogomolovv/storefront/internal/entities"
)

// NormalizePhone приводит номер к формату 2547XXXXXXXX, который ждёт Daraja.
// Принимаются 07XXXXXXXX, 7XXXXXXXX, +2547XXXXXXXX и 2547XXXXXXXX.
func NormalizePhone(phone string) (string, error) {
	p := strings.NewReplacer(" ", "", "-", "").Replace(strings.TrimSpace(phone))
	p = strings.TrimPrefix(p, "+")

	switch {
	case len(p) == 10 && p[0] == '0':
		p = "254" + p[1:]
	case len(p) == 9:
		p = "254" + p
	}

	if len(p) != 12 || !strings.HasPrefix(p, "254") || !digitsOnly(p) {
		return "", fmt.Errorf("%w: invalid phone number", entities.ErrValidation)
	}
	if p[3] != '7' && p[3] != '1' {
		return "", fmt.Errorf("%w: invalid phone number", entities.ErrValidation)
	}
	return p, nil
}

func digitsOnly(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
