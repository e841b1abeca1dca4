package rules

import (
	"regexp"
	"strconv"
	"strings"
)

// Comparator is the relational operator of a size rule.
type Comparator string

// Supported comparators.
const (
	Greater      Comparator = ">"
	GreaterEqual Comparator = ">="
	Less         Comparator = "<"
	LessEqual    Comparator = "<="
)

const bytesPerMB = 1e6

// SizeRule excludes files under PathPattern whose size satisfies Comparator against Threshold.
type SizeRule struct {
	PathPattern *regexp.Regexp
	Comparator  Comparator
	// Threshold is in bytes.
	Threshold float64
	// Valid is false when the threshold spec did not parse. Such a rule never triggers.
	Valid bool
}

// Holds reports whether size satisfies the rule's comparator.
func (r SizeRule) Holds(size int64) bool {
	if !r.Valid {
		return false
	}
	s := float64(size)
	switch r.Comparator {
	case Greater:
		return s > r.Threshold
	case GreaterEqual:
		return s >= r.Threshold
	case Less:
		return s < r.Threshold
	case LessEqual:
		return s <= r.Threshold
	default:
		return false
	}
}

// ParseThreshold parses a spec such as ">5" or "<=100" into a comparator and a byte threshold.
// The number is in megabytes and must consist of ASCII digits only.
func ParseThreshold(spec string) (Comparator, float64, bool) {
	// Two-character operators first so ">=5" is not read as ">" followed by "=5".
	for _, cmp := range []Comparator{GreaterEqual, LessEqual, Greater, Less} {
		rest, ok := strings.CutPrefix(spec, string(cmp))
		if !ok {
			continue
		}
		if !isDigits(rest) {
			return "", 0, false
		}
		n, err := strconv.ParseFloat(rest, 64)
		if err != nil {
			return "", 0, false
		}
		return cmp, n * bytesPerMB, true
	}
	return "", 0, false
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// SizeRules evaluates every configured size rule.
type SizeRules struct {
	rules []SizeRule
}

// NewSizeRules compiles the path patterns of limits.
// A pattern that does not compile is a configuration error; a threshold that does not parse is not.
func NewSizeRules(limits map[string]string) (*SizeRules, error) {
	rules := make([]SizeRule, 0, len(limits))
	for expr, spec := range limits {
		re, err := compileAnchored(expr)
		if err != nil {
			return nil, err
		}
		cmp, threshold, ok := ParseThreshold(spec)
		rules = append(rules, SizeRule{
			PathPattern: re,
			Comparator:  cmp,
			Threshold:   threshold,
			Valid:       ok,
		})
	}
	return &SizeRules{rules: rules}, nil
}

// Exceeds reports whether any rule matching path holds for size.
func (s *SizeRules) Exceeds(path string, size int64) bool {
	for _, rule := range s.rules {
		if rule.PathPattern.MatchString(path) && rule.Holds(size) {
			return true
		}
	}
	return false
}
