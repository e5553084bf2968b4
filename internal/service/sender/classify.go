package sender

import "strings"

// Outcome is the delivery verdict for one ChatGuru API response.
type Outcome int

const (
	// OutcomeOK means ChatGuru accepted the request.
	OutcomeOK Outcome = iota
	// OutcomeChatNotFound means the target chat does not exist. Routine
	// for contacts whose conversation was archived, so callers log a
	// warning and move on.
	OutcomeChatNotFound
	// OutcomeAPIError is any other application-level rejection.
	OutcomeAPIError
)

// Classify maps an HTTP status and response body to a delivery outcome.
// The "Chat n" prefix also matches bodies whose accented characters were
// mangled in transit.
func Classify(status int, body string) Outcome {
	if status >= 200 && status < 300 {
		return OutcomeOK
	}
	if strings.Contains(body, "Chat não encontrado") ||
		strings.Contains(body, "Chat não existe") ||
		strings.Contains(body, "Chat n") {
		return OutcomeChatNotFound
	}
	return OutcomeAPIError
}
