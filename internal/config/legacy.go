package config

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf16"
)

// legacyConfigPath is where earlier releases kept the default directory, as a
// Java-style properties file.
const legacyConfigPath = "~/.stigen/config.properties"

const defaultDirectoryKey = "default_directory"

// LoadLegacy reads default_directory from the legacy properties file. It is
// only consulted for the default store location; a missing file or key is
// reported as ok=false with a nil error.
func (s *Store) LoadLegacy() (string, bool, error) {
	if s.LegacyPath == "" {
		return "", false, nil
	}
	resolved, err := resolveConfigPath(s.LegacyPath)
	if err != nil {
		return "", false, err
	}

	data, err := os.ReadFile(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("read legacy config: %w", err)
	}

	props, err := parseProperties(data)
	if err != nil {
		return "", false, fmt.Errorf("parse legacy config %s: %w", resolved, err)
	}

	dir := strings.TrimSpace(props[defaultDirectoryKey])
	if dir == "" {
		return "", false, nil
	}
	return dir, true, nil
}

// parseProperties decodes the subset of the properties format written by
// java.util.Properties.store: comments, key/value separators, backslash
// escapes, \uXXXX and continuation lines.
func parseProperties(data []byte) (map[string]string, error) {
	props := make(map[string]string)
	scanner := bufio.NewScanner(bytes.NewReader(data))

	var logical strings.Builder
	for scanner.Scan() {
		line := strings.TrimLeft(scanner.Text(), " \t\f")
		if logical.Len() == 0 && (line == "" || line[0] == '#' || line[0] == '!') {
			continue
		}
		if continuesLine(line) {
			logical.WriteString(line[:len(line)-1])
			continue
		}
		logical.WriteString(line)

		key, value, err := splitProperty(logical.String())
		logical.Reset()
		if err != nil {
			return nil, err
		}
		props[key] = value
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if logical.Len() > 0 {
		key, value, err := splitProperty(logical.String())
		if err != nil {
			return nil, err
		}
		props[key] = value
	}
	return props, nil
}

// continuesLine reports a trailing unescaped backslash.
func continuesLine(line string) bool {
	n := 0
	for i := len(line) - 1; i >= 0 && line[i] == '\\'; i-- {
		n++
	}
	return n%2 == 1
}

func splitProperty(line string) (string, string, error) {
	end := len(line)
	for i := 0; i < len(line); i++ {
		c := line[i]
		if c == '\\' {
			i++
			continue
		}
		if c == '=' || c == ':' || c == ' ' || c == '\t' || c == '\f' {
			end = i
			break
		}
	}

	rest := line[end:]
	rest = strings.TrimLeft(rest, " \t\f")
	if rest != "" && (rest[0] == '=' || rest[0] == ':') {
		rest = strings.TrimLeft(rest[1:], " \t\f")
	}

	key, err := unescapeProperty(line[:end])
	if err != nil {
		return "", "", err
	}
	value, err := unescapeProperty(rest)
	if err != nil {
		return "", "", err
	}
	return key, value, nil
}

func unescapeProperty(s string) (string, error) {
	if !strings.Contains(s, `\`) {
		return s, nil
	}
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' || i == len(s)-1 {
			b.WriteByte(c)
			continue
		}
		i++
		switch s[i] {
		case 't':
			b.WriteByte('\t')
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case 'f':
			b.WriteByte('\f')
		case 'u':
			r, width, err := decodeUnicodeEscape(s[i+1:])
			if err != nil {
				return "", fmt.Errorf("%w in %q", err, s)
			}
			b.WriteRune(r)
			i += width
		default:
			b.WriteByte(s[i])
		}
	}
	return b.String(), nil
}

// decodeUnicodeEscape decodes the hex digits after a \u, joining a UTF-16
// surrogate pair written as two escapes. It returns the rune and how many
// bytes of s it consumed.
func decodeUnicodeEscape(s string) (rune, int, error) {
	unit, err := parseHex4(s)
	if err != nil {
		return 0, 0, err
	}
	r := rune(unit)
	if utf16.IsSurrogate(r) && len(s) >= 10 && s[4] == '\\' && s[5] == 'u' {
		if low, err := parseHex4(s[6:]); err == nil {
			if pair := utf16.DecodeRune(r, rune(low)); pair != unicode.ReplacementChar {
				return pair, 10, nil
			}
		}
	}
	return r, 4, nil
}

func parseHex4(s string) (uint64, error) {
	if len(s) < 4 {
		return 0, errors.New("malformed \\u escape")
	}
	v, err := strconv.ParseUint(s[:4], 16, 16)
	if err != nil {
		return 0, errors.New("malformed \\u escape")
	}
	return v, nil
}
