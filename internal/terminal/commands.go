// Package terminal implements the lab's command console: a fixed table of
// canned responses, a scrollback buffer and input recall.
package terminal

import (
	"sort"
	"strings"
)

// Banner lines shown when a console opens.
const (
	BannerTitle   = "AETHERONUM RESEARCH LAB TERMINAL v2.47.3"
	BannerConnect = `Secure connection established. Type "help" for commands.`
)

// ClearCommand resets the scrollback instead of printing output.
const ClearCommand = "clear"

var table = map[string]string{
	"help":     "Available commands: help, clear, status, users, projects, logs, scan, matrix, neural",
	"clear":    "",
	"status":   "System Status: OPERATIONAL | Security: MAXIMUM | Uptime: 47d 12h 34m",
	"users":    "Active users: 8 | Current session: Dr. Sarah Chen (CL-5)",
	"projects": "Active projects: 12 | Critical: 3 | High priority: 5",
	"logs":     "Recent activity: 2,847 entries | Errors: 0 | Warnings: 3",
	"scan":     "Network scan initiated... [47/255] hosts discovered | All secure",
	"matrix":   "Entering the matrix... Just kidding. This is a research lab.",
	"neural":   "Neural networks: 4 training | 12 deployed | Accuracy avg: 94.2%",
}

// Key normalizes raw input into a table key.
func Key(input string) string {
	return strings.ToLower(strings.TrimSpace(input))
}

// Lookup returns the canned response for a normalized key.
func Lookup(key string) (string, bool) {
	out, ok := table[key]
	return out, ok
}

// Commands lists the known command names in sorted order.
func Commands() []string {
	names := make([]string, 0, len(table))
	for name := range table {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Resolve maps raw input to its output. Unknown input yields
// "Command not found: <input>" with the input exactly as typed. clear
// reports whether the input was the clear command, whose output is empty.
func Resolve(input string) (output string, clear bool) {
	key := Key(input)
	if key == ClearCommand {
		return "", true
	}
	if out, ok := Lookup(key); ok {
		return out, false
	}
	return "Command not found: " + input, false
}
