package config

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/tintbar-io/tintbar/internal/engine"
)

// LoadBlacklist parses ~/.tintbar/exclude.conf into engine rules. A missing
// file yields an empty rule set.
func LoadBlacklist() (engine.Blacklist, error) {
	path, err := GlobalBlacklistFile()
	if err != nil {
		return engine.Blacklist{}, err
	}
	if !FileExists(path) {
		return emptyBlacklist(), nil
	}
	return ParseBlacklistFile(path)
}

// ParseBlacklistFile reads an exclusion file. Lines starting with ';' are
// comments; each rule line is a tag followed by comma-separated values:
//
//	class,TaskListThumbnailWnd
//	title,Volume Control
//	exename,searchui.exe
//
// Unknown tags are reported so typos don't silently disable a rule.
func ParseBlacklistFile(path string) (engine.Blacklist, error) {
	f, err := os.Open(path)
	if err != nil {
		return engine.Blacklist{}, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	bl := emptyBlacklist()
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, ";") {
			continue
		}

		tag, values := splitRuleLine(line)
		switch tag {
		case "class":
			for _, v := range values {
				bl.Classes[v] = struct{}{}
			}
		case "title", "windowtitle":
			bl.TitleSubstrings = append(bl.TitleSubstrings, values...)
		case "exename":
			for _, v := range values {
				bl.ExeNamesLower[strings.ToLower(v)] = struct{}{}
			}
		default:
			return engine.Blacklist{}, fmt.Errorf("%s:%d: unknown rule tag %q", path, lineNo, tag)
		}
	}
	if err := scanner.Err(); err != nil {
		return engine.Blacklist{}, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return bl, nil
}

// splitRuleLine splits "tag,v1,v2" into the lowercased tag and its trimmed,
// non-empty values.
func splitRuleLine(line string) (string, []string) {
	parts := strings.Split(line, ",")
	tag := strings.ToLower(strings.TrimSpace(parts[0]))

	var values []string
	for _, p := range parts[1:] {
		if v := strings.TrimSpace(p); v != "" {
			values = append(values, v)
		}
	}
	return tag, values
}

func emptyBlacklist() engine.Blacklist {
	return engine.Blacklist{
		Classes:       make(map[string]struct{}),
		ExeNamesLower: make(map[string]struct{}),
	}
}
