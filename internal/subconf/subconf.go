// Package subconf loads the TOML subscription files consumed by the pulse
// CLI. A file declares listeners by registration name, so weight suffixes in
// the names carry straight through to the emitter:
//
//	[[subscription]]
//	name = "deploy.9"
//	action = "deploy started: {args}"
//
//	[[subscription]]
//	name = "deploy"
//	action = "audit trail: {event} {args}"
//	once = true
package subconf

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/rlange/pulse/weight"
)

// Subscription declares one listener.
type Subscription struct {
	// Name is the registration name, weight suffix included.
	Name string `toml:"name"`

	// Action is the line printed on delivery. The placeholders {event} and
	// {args} expand to the event key and the forwarded arguments.
	Action string `toml:"action"`

	// Once removes the listener after its first delivery.
	Once bool `toml:"once"`
}

// Render expands the action's placeholders for one delivery.
func (s Subscription) Render(event string, args []any) string {
	rendered := strings.ReplaceAll(s.Action, "{event}", event)
	if strings.Contains(rendered, "{args}") {
		parts := make([]string, 0, len(args))
		for _, a := range args {
			parts = append(parts, fmt.Sprint(a))
		}
		rendered = strings.ReplaceAll(rendered, "{args}", strings.Join(parts, ", "))
	}
	return rendered
}

// File is a parsed subscription file.
type File struct {
	Subscriptions []Subscription `toml:"subscription"`
}

// Load reads and validates a subscription file. Unlike an editor config, a
// missing file is an error: the CLI has nothing to do without one.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading subscription file %s: %w", path, err)
	}
	return parse(path, data)
}

// LoadReader reads and validates a subscription file from r.
func LoadReader(r io.Reader) (*File, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading subscriptions: %w", err)
	}
	return parse("<reader>", data)
}

func parse(source string, data []byte) (*File, error) {
	var f File
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", source, err)
	}
	if err := f.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", source, err)
	}
	return &f, nil
}

// Validate checks every declared name against the registration grammar.
func (f *File) Validate() error {
	if len(f.Subscriptions) == 0 {
		return fmt.Errorf("no subscriptions declared")
	}
	for i, sub := range f.Subscriptions {
		if _, err := weight.ParseName(sub.Name); err != nil {
			return fmt.Errorf("subscription %d: %w", i, err)
		}
	}
	return nil
}
