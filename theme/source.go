package theme

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"regexp"
	"strings"

	"swayzones/colormath"
)

// Raw maps lowercase theme keys to normalized "#rrggbb" colors.
type Raw map[string]string

// key = value, value optionally quoted, optional trailing "# comment".
var lineRE = regexp.MustCompile(`^\s*([A-Za-z0-9_]+)\s*=\s*["']?(#?[0-9a-fA-F]{6})["']?(?:\s+#.*)?\s*$`)

// NormalizeColor returns raw as lowercase "#rrggbb", or false when raw is not a
// six digit hex color. A malformed value is absent, not an error.
func NormalizeColor(raw string) (string, bool) {
	return colormath.Normalize(raw)
}

// Parse scans a colors.toml style source. Section headers and comments are
// skipped, lines that are not a color assignment are ignored.
func Parse(r io.Reader) (Raw, error) {
	out := Raw{}
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, "[") {
			continue
		}
		m := lineRE.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		if c, ok := NormalizeColor(m[2]); ok {
			out[strings.ToLower(m[1])] = c
		}
	}
	return out, sc.Err()
}

// ParseString is Parse over an in-memory source.
func ParseString(text string) Raw {
	raw, _ := Parse(strings.NewReader(text))
	return raw
}

// Load reads the theme file at path. A missing file is not an error and
// yields an empty mapping; other read failures return whatever was parsed
// plus the error so the caller can log it.
func Load(path string) (Raw, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Raw{}, nil
		}
		return Raw{}, fmt.Errorf("open theme: %w", err)
	}
	defer f.Close()
	raw, err := Parse(f)
	if err != nil {
		return raw, fmt.Errorf("read theme: %w", err)
	}
	return raw, nil
}

// Pick returns the first key in keys that holds a valid color, else the
// normalized fallback (black if the fallback itself is malformed).
func Pick(raw Raw, keys []string, fallback string) string {
	for _, k := range keys {
		if c, ok := NormalizeColor(raw[strings.ToLower(k)]); ok {
			return c
		}
	}
	if c, ok := NormalizeColor(fallback); ok {
		return c
	}
	return colormath.Black
}
