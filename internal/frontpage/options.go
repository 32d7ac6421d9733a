package frontpage

import (
	"context"
	"strconv"
)

const (
	// OptionEnabled is the settings key of the enable flag.
	OptionEnabled = "extended_front_page_enabled"
	// OptionTargetID is the settings key of the target item id.
	OptionTargetID = "extended_front_page_post_id"
)

// Options are the two stored front page options.
type Options struct {
	Enabled  bool
	TargetID uint64
}

// Active reports whether the options name a front page item at all.
func (o Options) Active() bool {
	return o.Enabled && o.TargetID != 0
}

// OptionsReader provides the current options.
type OptionsReader interface {
	Options(ctx context.Context) (Options, error)
}

// OptionsReaderFunc adapts a function to OptionsReader.
type OptionsReaderFunc func(ctx context.Context) (Options, error)

// Options implements OptionsReader.
func (f OptionsReaderFunc) Options(ctx context.Context) (Options, error) {
	return f(ctx)
}

// Intval converts a submitted value to an integer the lenient way form input is
// sanitized: optional whitespace and sign, then the leading digits.
// Anything else yields 0, as does a value that overflows int64.
func Intval(s string) int64 {
	i := 0
	for i < len(s) && (s[i] == ' ' || s[i] == '\t' || s[i] == '\n' || s[i] == '\r') {
		i++
	}

	start := i
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}

	digits := i
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}

	if i == digits {
		return 0
	}

	n, err := strconv.ParseInt(s[start:i], 10, 64)
	if err != nil {
		return 0
	}

	return n
}

// SanitizeOptions builds Options from raw submitted values.
// A negative target id means no target.
func SanitizeOptions(enabled, targetID string) Options {
	id := Intval(targetID)
	if id < 0 {
		id = 0
	}

	return Options{
		Enabled:  Intval(enabled) != 0,
		TargetID: uint64(id),
	}
}

func encodeFlag(b bool) []byte {
	if b {
		return []byte("1")
	}

	return []byte("0")
}

func formatID(id uint64) string {
	return strconv.FormatUint(id, 10)
}

func decodeOptions(enabled, targetID []byte) Options {
	return SanitizeOptions(string(enabled), string(targetID))
}
