// Copyright 2026 The Prettycbor Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"strings"

	"github.com/spf13/pflag"
)

// suggestThreshold is the largest edit distance still offered as a
// "did you mean" suggestion. Distance 3 catches transpositions,
// dropped characters, and an extra character or two.
const suggestThreshold = 3

// closestCommand returns the subcommand name closest to the unknown
// input, or "" when nothing is within the threshold.
func closestCommand(unknown string, commands []*Command) string {
	best := ""
	bestDistance := suggestThreshold + 1
	for _, command := range commands {
		if d := levenshtein(unknown, command.Name); d < bestDistance {
			bestDistance = d
			best = command.Name
		}
	}
	return best
}

// closestFlag finds the first flag in args that flagSet does not
// define and returns the closest defined flag, formatted with its
// dash prefix. Returns "" when there is no good match.
func closestFlag(args []string, flagSet *pflag.FlagSet) string {
	var defined []string
	flagSet.VisitAll(func(f *pflag.Flag) {
		defined = append(defined, f.Name)
	})

	for _, arg := range args {
		if !strings.HasPrefix(arg, "-") {
			continue
		}
		name := strings.TrimLeft(arg, "-")
		if index := strings.IndexByte(name, '='); index >= 0 {
			name = name[:index]
		}
		if name == "" || flagSet.Lookup(name) != nil {
			continue
		}
		if len(name) == 1 && flagSet.ShorthandLookup(name) != nil {
			continue
		}

		best := ""
		bestDistance := suggestThreshold + 1
		for _, candidate := range defined {
			if d := levenshtein(name, candidate); d < bestDistance {
				bestDistance = d
				best = candidate
			}
		}
		if best == "" {
			return ""
		}
		if len(best) == 1 {
			return "-" + best
		}
		return "--" + best
	}
	return ""
}

// levenshtein computes the edit distance between a and b using a
// single rolling row of the distance matrix.
func levenshtein(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}
	if len(a) > len(b) {
		a, b = b, a
	}

	previous := make([]int, len(a)+1)
	for i := range previous {
		previous[i] = i
	}

	for j := 1; j <= len(b); j++ {
		current := make([]int, len(a)+1)
		current[0] = j
		for i := 1; i <= len(a); i++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			current[i] = min(previous[i]+1, current[i-1]+1, previous[i-1]+cost)
		}
		previous = current
	}

	return previous[len(a)]
}
