package flagx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilter(t *testing.T) {
	spec := Spec{Valued: []string{"-a", "-d"}, Switches: []string{"-secure-cookie"}}

	tests := []struct {
		name string
		args []string
		want []string
	}{
		{
			name: "valued flag with separate value",
			args: []string{"-a", ":9000", "-x", "1"},
			want: []string{"-a", ":9000"},
		},
		{
			name: "equals form and double dash",
			args: []string{"--d=postgres://db", "-z=1"},
			want: []string{"--d=postgres://db"},
		},
		{
			name: "switch does not swallow a positional",
			args: []string{"-secure-cookie", "positional", "-a", ":1"},
			want: []string{"-secure-cookie", "-a", ":1"},
		},
		{
			name: "valued flag at the end is kept without value",
			args: []string{"-d"},
			want: []string{"-d"},
		},
		{
			name: "valued flag followed by another flag",
			args: []string{"-d", "-a", ":1"},
			want: []string{"-d", "-a", ":1"},
		},
		{
			name: "unknown flags ignored",
			args: []string{"-q", "1", "--w=2", "pos"},
			want: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Filter(tt.args, spec))
		})
	}
}

func TestConfigPath(t *testing.T) {
	assert.Equal(t, "conf.json", ConfigPath([]string{"-a", ":1", "-c", "conf.json"}))
	assert.Equal(t, "alt.json", ConfigPath([]string{"--config=alt.json"}))
	assert.Equal(t, "", ConfigPath([]string{"-a", ":1"}))
}
