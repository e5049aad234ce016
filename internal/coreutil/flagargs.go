// SPDX-License-Identifier: MPL-2.0

package coreutil

import "strings"

// NormalizeArgs rewrites argv-style arguments so the standard flag package
// can parse traditional Unix usage: clustered boolean short flags ("-rf")
// are split apart, and a value attached to a short flag ("-n5") is
// detached. Everything after "--", the bare stdin marker "-", and any
// argument that already names a known flag pass through unchanged.
func NormalizeArgs(flags []FlagInfo, args []string) []string {
	known := make(map[string]FlagInfo, len(flags)*2)
	for _, f := range flags {
		if f.Name != "" {
			known[f.Name] = f
		}
		if f.ShortName != "" {
			known[f.ShortName] = f
		}
	}

	out := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]

		if arg == "--" {
			out = append(out, args[i:]...)
			return out
		}
		// Operands and the stdin marker pass through.
		if len(arg) < 2 || arg[0] != '-' || arg == "-" {
			out = append(out, arg)
			continue
		}
		// Long flags are already in a form the flag package understands.
		if strings.HasPrefix(arg, "--") {
			out = append(out, arg)
			continue
		}

		body := arg[1:]
		// "-name=value" and exact flag names such as "-SIGKILL" or "-n"
		// parse natively.
		if strings.ContainsRune(body, '=') {
			out = append(out, arg)
			continue
		}
		if _, ok := known[body]; ok {
			out = append(out, arg)
			continue
		}

		expanded, ok := splitCluster(known, body)
		if !ok {
			out = append(out, arg)
			continue
		}
		out = append(out, expanded...)

		// Consume the value argument of a trailing TakesValue flag so a
		// following "-x" value is not treated as another cluster.
		if len(expanded) > 0 && i+1 < len(args) {
			last := strings.TrimPrefix(expanded[len(expanded)-1], "-")
			if f, ok := known[last]; ok && f.TakesValue && expanded[len(expanded)-1] == "-"+last {
				i++
				out = append(out, args[i])
			}
		}
	}
	return out
}

// splitCluster expands a run of single-character flags, letting the first
// value-taking flag consume the remainder of the argument as its value.
// It reports false when any character is not a known single-character flag.
func splitCluster(known map[string]FlagInfo, body string) ([]string, bool) {
	var out []string
	for i := 0; i < len(body); i++ {
		name := string(body[i])
		f, ok := known[name]
		if !ok {
			return nil, false
		}
		if f.TakesValue {
			out = append(out, "-"+name)
			if rest := body[i+1:]; rest != "" {
				out = append(out, rest)
			}
			return out, true
		}
		out = append(out, "-"+name)
	}
	return out, true
}
