package subconf

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `
[[subscription]]
name = "deploy.9"
action = "deploy started: {args}"

[[subscription]]
name = "deploy"
action = "audit: {event} {args}"
once = true
`

func TestLoadReader(t *testing.T) {
	f, err := LoadReader(strings.NewReader(sample))
	require.NoError(t, err)
	require.Len(t, f.Subscriptions, 2)

	assert.Equal(t, "deploy.9", f.Subscriptions[0].Name)
	assert.False(t, f.Subscriptions[0].Once)
	assert.Equal(t, "deploy", f.Subscriptions[1].Name)
	assert.True(t, f.Subscriptions[1].Once)
}

func TestLoadReader_RejectsBadName(t *testing.T) {
	bad := `
[[subscription]]
name = "deploy.1.2.3"
action = "never"
`
	_, err := LoadReader(strings.NewReader(bad))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "subscription 0")
}

func TestLoadReader_RejectsEmptyFile(t *testing.T) {
	_, err := LoadReader(strings.NewReader(""))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no subscriptions")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(t.TempDir() + "/nope.toml")
	require.Error(t, err)
}

func TestSubscription_Render(t *testing.T) {
	sub := Subscription{Action: "got {event}: {args}"}

	assert.Equal(t, "got deploy: api, v42", sub.Render("deploy", []any{"api", "v42"}))
	assert.Equal(t, "got deploy: ", sub.Render("deploy", nil))
}

func TestSubscription_RenderWithoutPlaceholders(t *testing.T) {
	sub := Subscription{Action: "static line"}
	assert.Equal(t, "static line", sub.Render("deploy", []any{"ignored"}))
}
