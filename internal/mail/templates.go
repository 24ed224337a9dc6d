// AngelaMos | 2026
// templates.go

package mail

import (
	"fmt"
	"net/url"
	"strings"
)

func Welcome(to, firstName, frontendURL string) Message {
	var b strings.Builder
	fmt.Fprintf(&b, "Hi %s,\n\n", firstName)
	b.WriteString("Welcome to MentoraX. Your account is ready.\n\n")
	b.WriteString("Browse scholarships, connect with mentors and track your goals at:\n")
	fmt.Fprintf(&b, "%s\n", frontendURL)

	return Message{
		To:      to,
		Subject: "Welcome to MentoraX",
		Body:    b.String(),
	}
}

func PasswordReset(to, firstName, frontendURL, token string) Message {
	link := strings.TrimRight(frontendURL, "/") +
		"/reset-password?token=" + url.QueryEscape(token)

	var b strings.Builder
	fmt.Fprintf(&b, "Hi %s,\n\n", firstName)
	b.WriteString("We received a request to reset your MentoraX password.\n")
	b.WriteString("Use the link below within one hour:\n\n")
	fmt.Fprintf(&b, "%s\n\n", link)
	b.WriteString("If you did not ask for this, you can ignore this email.\n")

	return Message{
		To:      to,
		Subject: "Reset your MentoraX password",
		Body:    b.String(),
	}
}
