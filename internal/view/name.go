package view

import (
	"strings"

	"go-hris-admin/internal/domain"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Placeholder is shown when no name can be derived.
const Placeholder = "—"

// DisplayName normalizes the name fields a backend may send, in this order:
// name, firstName+lastName, fullName, username, the email local part split on
// '.', '_' and '-', and finally Placeholder. Names built from parts are
// title-cased word by word; an explicit name is returned as typed.
func DisplayName(n domain.NameFields, email string) string {
	if name := strings.TrimSpace(n.Name); name != "" {
		return name
	}
	if parts := strings.TrimSpace(strings.TrimSpace(n.FirstName) + " " + strings.TrimSpace(n.LastName)); parts != "" {
		return titleWords(strings.Fields(parts))
	}
	if full := strings.TrimSpace(n.FullName); full != "" {
		return full
	}
	if user := strings.TrimSpace(n.Username); user != "" {
		return user
	}
	if fromEmail := NameFromEmail(email); fromEmail != "" {
		return fromEmail
	}
	return Placeholder
}

// NameFromEmail turns "abel.kebede@x.com" into "Abel Kebede". It returns ""
// when the local part has no usable words.
func NameFromEmail(email string) string {
	local, _, _ := strings.Cut(strings.TrimSpace(email), "@")
	words := strings.FieldsFunc(local, func(r rune) bool {
		return r == '.' || r == '_' || r == '-'
	})
	if len(words) == 0 {
		return ""
	}
	return titleWords(words)
}

func titleWords(words []string) string {
	// a Caser keeps state, so each call gets its own
	caser := cases.Title(language.English, cases.NoLower)
	out := make([]string, 0, len(words))
	for _, w := range words {
		if w = strings.TrimSpace(w); w != "" {
			out = append(out, caser.String(w))
		}
	}
	return strings.Join(out, " ")
}

func EmployeeName(e domain.Employee) string {
	return DisplayName(e.Names(), e.Email)
}

func CandidateName(c domain.Candidate) string {
	return DisplayName(c.Names(), c.Email)
}
