package detector

import (
	"fmt"
	"strings"
)

// Rule pairs a match predicate with the classifier that fills out the
// Detection when the predicate holds. Rules are evaluated in order; the first
// match wins, so ordering is the tie-break policy for polyglot directories.
type Rule struct {
	Framework Framework
	Match     func(sig *RawSignals) bool
	Classify  func(sig *RawSignals) Detection
}

// DefaultRules returns the built-in classification rules in priority order.
// Callers that need a different precedence can reorder the slice and pass it
// to ClassifyWith.
func DefaultRules() []Rule {
	return []Rule{
		pythonRule(),
		nodeRule(),
		mavenRule(),
		gradleRule(),
		dotnetRule(),
	}
}

// Detect extracts signals from root and classifies them with the default
// rules.
func Detect(root string) (Detection, error) {
	sig, err := Extract(root)
	if err != nil {
		return Detection{}, err
	}
	det, err := Classify(sig)
	if err != nil {
		if derr, ok := err.(*DetectionError); ok {
			derr.Root = root
		}
		return Detection{}, err
	}
	return det, nil
}

// Classify runs the default rules against the given signals.
func Classify(sig *RawSignals) (Detection, error) {
	return ClassifyWith(DefaultRules(), sig)
}

// ClassifyWith runs an ordered rule list against the given signals. The first
// rule whose predicate matches wins. When nothing matches, a DetectionError
// is returned; there is no fallback framework.
func ClassifyWith(rules []Rule, sig *RawSignals) (Detection, error) {
	for _, rule := range rules {
		if rule.Match(sig) {
			return rule.Classify(sig), nil
		}
	}
	return Detection{}, &DetectionError{Root: "."}
}

// ClassifyAs forces classification as the named framework, running only that
// rule's extractors regardless of its match predicate. This is the
// --framework override path for projects whose markers are unrecognizable.
func ClassifyAs(name string, sig *RawSignals) (Detection, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, rule := range DefaultRules() {
		if string(rule.Framework) == name {
			return rule.Classify(sig), nil
		}
	}
	return Detection{}, fmt.Errorf("unknown framework '%s' (supported: %s)", name, frameworkList())
}

// Frameworks returns the names of all supported frameworks in rule order.
func Frameworks() []string {
	rules := DefaultRules()
	names := make([]string, 0, len(rules))
	for _, rule := range rules {
		names = append(names, string(rule.Framework))
	}
	return names
}

func frameworkList() string {
	return strings.Join(Frameworks(), ", ")
}
