package quran

import "strings"

// Environment selects which Quran Foundation deployment the client talks to.
type Environment string

const (
	// Production is the live API deployment.
	Production Environment = "production"

	// PreProduction is the prelive deployment with test credentials.
	PreProduction Environment = "pre-production"
)

// Endpoints is the pair of service origins for one environment.
type Endpoints struct {
	// ContentBaseURL is the content API origin including the API prefix.
	ContentBaseURL string

	// AuthBaseURL is the OAuth2 token service origin.
	AuthBaseURL string
}

var endpointsByEnvironment = map[Environment]Endpoints{
	Production: {
		ContentBaseURL: "https://apis.quran.foundation/content/api/v4",
		AuthBaseURL:    "https://oauth2.quran.foundation",
	},
	PreProduction: {
		ContentBaseURL: "https://apis-prelive.quran.foundation/content/api/v4",
		AuthBaseURL:    "https://prelive-oauth2.quran.foundation",
	},
}

// ParseEnvironment maps a config string to an Environment.
// Unrecognized or empty input falls back to Production rather than erroring.
func ParseEnvironment(s string) Environment {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(PreProduction):
		return PreProduction
	default:
		return Production
	}
}

// EndpointsFor resolves the service origins for an environment.
// The mapping is total: unknown values resolve to the Production pair.
func EndpointsFor(env Environment) Endpoints {
	if e, ok := endpointsByEnvironment[env]; ok {
		return e
	}
	return endpointsByEnvironment[Production]
}
