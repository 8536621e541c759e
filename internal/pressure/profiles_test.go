package pressure

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultProfiles(t *testing.T) {
	p := Default()
	require.Len(t, p, 4)
	assert.Equal(t, "national", p[0].Key)
	assert.Equal(t, 1.0, p[0].Reach)
	assert.Equal(t, 1.35, p[3].CostSensitivity)
	assert.NotEmpty(t, p[1].Tooltip)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stakeholders.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
- key: ec
  name: Election Commission
  reach: 0.5
  costSensitivity: 2
`), 0o644))

	p, err := Load(path)
	require.NoError(t, err)
	require.Len(t, p, 1)
	assert.Equal(t, "Election Commission", p[0].Name)
	assert.Equal(t, 2.0, p[0].CostSensitivity)

	p, err = Load("")
	require.NoError(t, err)
	assert.Len(t, p, 4)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestParseRejectsBadProfiles(t *testing.T) {
	cases := map[string]string{
		"empty":       `[]`,
		"no key":      `[{name: x, reach: 0.5, costSensitivity: 1}]`,
		"duplicate":   `[{key: a, reach: 0.5}, {key: a, reach: 0.5}]`,
		"reach":       `[{key: a, reach: 1.5}]`,
		"sensitivity": `[{key: a, reach: 0.5, costSensitivity: -1}]`,
		"nan reach":   `[{key: a, reach: .nan, costSensitivity: 1}]`,
		"inf cost":    `[{key: a, reach: 0.5, costSensitivity: .inf}]`,
		"nan cost":    `[{key: a, reach: 0.5, costSensitivity: .nan}]`,
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(doc))
			assert.ErrorIs(t, err, ErrInvalidProfile)
		})
	}
	_, err := Parse([]byte(`{not: [a list`))
	assert.Error(t, err)
}
