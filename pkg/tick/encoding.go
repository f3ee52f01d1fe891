package tick

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/tick/pkg/errors"
)

// Ticks are written as their bare integer count in text, JSON and YAML.
// Parsing additionally accepts a seconds value with an "s" suffix ("1.5s"),
// which is quantized through FromSeconds.

// String returns t formatted like "Tick(9009000)".
func (t Tick) String() string {
	return "Tick(" + strconv.FormatInt(int64(t), 10) + ")"
}

// Parse parses a tick count such as "9009000" or a seconds value such as
// "2.5s". Malformed input fails with ErrParsing.
func Parse(s string) (Tick, error) {
	s = strings.TrimSpace(s)
	if secs, ok := strings.CutSuffix(s, "s"); ok {
		f, err := strconv.ParseFloat(secs, 64)
		if err != nil {
			return 0, errors.Wrap("tick.Parse", errors.KindParsing, s, err)
		}
		return FromSeconds(f)
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, errors.Wrap("tick.Parse", errors.KindParsing, s, err)
	}
	return Tick(n), nil
}

// MarshalText implements encoding.TextMarshaler.
func (t Tick) MarshalText() ([]byte, error) {
	return strconv.AppendInt(nil, int64(t), 10), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Tick) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// MarshalJSON encodes t as a JSON number.
func (t Tick) MarshalJSON() ([]byte, error) {
	return t.MarshalText()
}

// UnmarshalJSON accepts a JSON number or a string understood by Parse.
func (t *Tick) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	return t.UnmarshalText(unquoteJSON(data))
}

// MarshalYAML implements yaml.Marshaler.
func (t Tick) MarshalYAML() (any, error) {
	return int64(t), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (t *Tick) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return errors.New("tick.UnmarshalYAML", errors.KindParsing,
			fmt.Sprintf("line %d: expected a scalar", value.Line))
	}
	return t.UnmarshalText([]byte(value.Value))
}

// ParseFrameRate parses a strict frame rate such as "60" or "60fps".
func ParseFrameRate(s string) (FrameRate, error) {
	s = strings.TrimSuffix(strings.TrimSpace(s), "fps")
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return FrameRate{}, errors.Wrap("tick.ParseFrameRate", errors.KindParsing, s, err)
	}
	return NewFrameRate(n)
}

// ParseApproxFrameRate parses a rate such as "29.97" or "29.97fps".
func ParseApproxFrameRate(s string) (ApproxFrameRate, error) {
	s = strings.TrimSuffix(strings.TrimSpace(s), "fps")
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return ApproxFrameRate{}, errors.Wrap("tick.ParseApproxFrameRate", errors.KindParsing, s, err)
	}
	return NewApproxFrameRate(f)
}

// MarshalText implements encoding.TextMarshaler.
func (r FrameRate) MarshalText() ([]byte, error) {
	return strconv.AppendUint(nil, uint64(r.rate), 10), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. The rate is validated
// with NewFrameRate.
func (r *FrameRate) UnmarshalText(text []byte) error {
	v, err := ParseFrameRate(string(text))
	if err != nil {
		return err
	}
	*r = v
	return nil
}

// MarshalJSON encodes r as a JSON number.
func (r FrameRate) MarshalJSON() ([]byte, error) {
	return r.MarshalText()
}

// UnmarshalJSON accepts a JSON number or a string such as "60fps".
func (r *FrameRate) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	return r.UnmarshalText(unquoteJSON(data))
}

// MarshalYAML implements yaml.Marshaler.
func (r FrameRate) MarshalYAML() (any, error) {
	return r.rate, nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (r *FrameRate) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return errors.New("tick.FrameRate.UnmarshalYAML", errors.KindParsing,
			fmt.Sprintf("line %d: expected a scalar", value.Line))
	}
	return r.UnmarshalText([]byte(value.Value))
}

// MarshalText implements encoding.TextMarshaler using the shortest decimal
// that round-trips, e.g. "29.97002997002997".
func (r ApproxFrameRate) MarshalText() ([]byte, error) {
	return strconv.AppendFloat(nil, r.fps, 'g', -1, 64), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. The rate is validated
// with NewApproxFrameRate.
func (r *ApproxFrameRate) UnmarshalText(text []byte) error {
	v, err := ParseApproxFrameRate(string(text))
	if err != nil {
		return err
	}
	*r = v
	return nil
}

// MarshalJSON encodes r as a JSON number.
func (r ApproxFrameRate) MarshalJSON() ([]byte, error) {
	return r.MarshalText()
}

// UnmarshalJSON accepts a JSON number or a string such as "29.97fps".
func (r *ApproxFrameRate) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	return r.UnmarshalText(unquoteJSON(data))
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (r *ApproxFrameRate) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return errors.New("tick.ApproxFrameRate.UnmarshalYAML", errors.KindParsing,
			fmt.Sprintf("line %d: expected a scalar", value.Line))
	}
	v, err := ParseApproxFrameRate(value.Value)
	if err != nil {
		return err
	}
	*r = v
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (r ApproxFrameRate) MarshalYAML() (any, error) {
	return r.fps, nil
}

func unquoteJSON(data []byte) []byte {
	if len(data) >= 2 && data[0] == '"' && data[len(data)-1] == '"' {
		return data[1 : len(data)-1]
	}
	return bytes.TrimSpace(data)
}
