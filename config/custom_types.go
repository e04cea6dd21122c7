/*
Copyright © 2024 Acronis International GmbH.

Released under MIT license.
*/

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"code.cloudfoundry.org/bytefmt"
	"gopkg.in/yaml.v3"
)

var errNegative = errors.New("negative value is not allowed")

// ByteSize is a size in bytes. It's decoded from plain integers or from
// human-readable strings such as "250M", "10MB" or "1Gi".
type ByteSize uint64

// ParseByteSize parses a size in bytes.
func ParseByteSize(s string) (ByteSize, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "-") {
		return 0, fmt.Errorf("%w: %s", errNegative, s)
	}
	if n, err := strconv.ParseUint(s, 10, 64); err == nil {
		return ByteSize(n), nil
	}
	// bytefmt has no "Mi" style suffixes, its "M" is already a power of two.
	if len(s) > 2 && strings.HasSuffix(s, "i") {
		s = strings.TrimSuffix(s, "i")
	}
	n, err := bytefmt.ToBytes(s)
	if err != nil {
		return 0, fmt.Errorf("invalid byte size %q: %w", s, err)
	}
	return ByteSize(n), nil
}

// String formats the size with bytefmt ("512B", "2M").
func (b ByteSize) String() string {
	return bytefmt.ByteSize(uint64(b))
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (b *ByteSize) UnmarshalText(text []byte) error {
	v, err := ParseByteSize(string(text))
	if err != nil {
		return err
	}
	*b = v
	return nil
}

// UnmarshalJSON accepts JSON numbers and strings.
func (b *ByteSize) UnmarshalJSON(data []byte) error {
	text, err := jsonScalar(data)
	if err != nil {
		return err
	}
	return b.UnmarshalText(text)
}

// UnmarshalYAML accepts YAML scalars.
func (b *ByteSize) UnmarshalYAML(node *yaml.Node) error {
	text, err := yamlScalar(node)
	if err != nil {
		return err
	}
	return b.UnmarshalText(text)
}

// TimeDuration is a time.Duration decoded from integers (nanoseconds)
// or from strings accepted by time.ParseDuration. Negative values are rejected.
type TimeDuration time.Duration

// ParseTimeDuration parses a non-negative duration.
func ParseTimeDuration(s string) (TimeDuration, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "-") {
		return 0, fmt.Errorf("%w: %s", errNegative, s)
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return TimeDuration(n), nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid time duration %q: %w", s, err)
	}
	return TimeDuration(d), nil
}

// String formats the duration like time.Duration does.
func (d TimeDuration) String() string {
	return time.Duration(d).String()
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *TimeDuration) UnmarshalText(text []byte) error {
	v, err := ParseTimeDuration(string(text))
	if err != nil {
		return err
	}
	*d = v
	return nil
}

// UnmarshalJSON accepts JSON numbers and strings.
func (d *TimeDuration) UnmarshalJSON(data []byte) error {
	text, err := jsonScalar(data)
	if err != nil {
		return err
	}
	return d.UnmarshalText(text)
}

// UnmarshalYAML accepts YAML scalars.
func (d *TimeDuration) UnmarshalYAML(node *yaml.Node) error {
	text, err := yamlScalar(node)
	if err != nil {
		return err
	}
	return d.UnmarshalText(text)
}

// jsonScalar returns the text of a JSON string or number.
func jsonScalar(data []byte) ([]byte, error) {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return nil, err
		}
		return []byte(s), nil
	}
	return data, nil
}

func yamlScalar(node *yaml.Node) ([]byte, error) {
	if node.Kind != yaml.ScalarNode {
		return nil, fmt.Errorf("line %d: scalar value expected", node.Line)
	}
	return []byte(node.Value), nil
}
