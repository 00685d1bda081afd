package auth

import "strings"

// Verdict is the per-request authorization outcome.
type Verdict int

const (
	Allow Verdict = iota
	Deny
	Redirect
)

type Decision struct {
	Verdict Verdict
	// Target is set when Verdict is Redirect.
	Target string
}

const (
	ProtectedPrefix = "/dashboard"
	LoginPath       = "/login"
)

// Decide gates access to the protected area. It is pure and evaluated on
// every request: unauthenticated requests under /dashboard are denied,
// authenticated requests outside it are sent to the dashboard landing page,
// everything else passes.
func Decide(isLoggedIn bool, path string) Decision {
	if strings.HasPrefix(path, ProtectedPrefix) {
		if isLoggedIn {
			return Decision{Verdict: Allow}
		}
		return Decision{Verdict: Deny}
	}

	if isLoggedIn {
		return Decision{Verdict: Redirect, Target: ProtectedPrefix}
	}

	return Decision{Verdict: Allow}
}
