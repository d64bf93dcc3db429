package activity

import "strings"

type Category string

const (
	CategoryProductive  Category = "productive"
	CategoryNeutral     Category = "neutral"
	CategoryDistracting Category = "distracting"
)

var (
	DefaultProductiveKeywords = []string{"code", "editor", "terminal"}
	DefaultNeutralKeywords    = []string{"browser", "email", "chrome", "firefox", "safari"}
)

// Classifier buckets applications by case-insensitive substring match on
// the application name. Productive keywords win over neutral ones; anything
// unmatched is distracting.
type Classifier struct {
	productive []string
	neutral    []string
}

func NewClassifier(productive, neutral []string) *Classifier {
	if len(productive) == 0 {
		productive = DefaultProductiveKeywords
	}
	if len(neutral) == 0 {
		neutral = DefaultNeutralKeywords
	}
	return &Classifier{
		productive: lowerAll(productive),
		neutral:    lowerAll(neutral),
	}
}

func (c *Classifier) Classify(app string) Category {
	name := strings.ToLower(app)
	if containsAny(name, c.productive) {
		return CategoryProductive
	}
	if containsAny(name, c.neutral) {
		return CategoryNeutral
	}
	return CategoryDistracting
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}

func lowerAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.ToLower(strings.TrimSpace(s)); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// PlatformFromHostname returns the hostname prefix before the first hyphen,
// e.g. "linux-workstation" -> "linux".
func PlatformFromHostname(hostname string) string {
	prefix, _, found := strings.Cut(hostname, "-")
	if !found {
		return UnknownOS
	}
	return prefix
}
