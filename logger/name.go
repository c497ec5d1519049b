package logger

import (
	"fmt"

	"github.com/philipp01105/nlog/core"
)

// CheckName reports whether name is a valid logger name: non-empty, made
// of ASCII letters, digits, '_', '-', '.' and '~', and not "." or "..".
func CheckName(name string) error {
	if name == "" || name == "." || name == ".." {
		return fmt.Errorf("%w: %q", core.ErrInvalidName, name)
	}
	for i := 0; i < len(name); i++ {
		if !isNameChar(name[i]) {
			return fmt.Errorf("%w: %q has invalid character %q at %d", core.ErrInvalidName, name, name[i], i)
		}
	}
	return nil
}

func isNameChar(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	case c == '_', c == '-', c == '.', c == '~':
		return true
	}
	return false
}
