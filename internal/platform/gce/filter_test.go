package gce

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLabelEquals(t *testing.T) {
	assert.Equal(t, "(labels.pool = debian-9)", LabelEquals("pool", "debian-9"))
}

func TestAllOf(t *testing.T) {
	got := AllOf(LabelEquals("vm", "vm17"), LabelEquals("snapshot_name", "nightly"))
	assert.Equal(t, "(labels.vm = vm17) AND (labels.snapshot_name = nightly)", got)
}

func TestLabelNotIn(t *testing.T) {
	tests := []struct {
		name   string
		values []string
		want   string
	}{
		{
			name:   "no values matches only missing label",
			values: nil,
			want:   "-labels.pool:*",
		},
		{
			name:   "single value",
			values: []string{"debian-9"},
			want:   "(labels.pool != debian-9) OR -labels.pool:*",
		},
		{
			name:   "multiple values",
			values: []string{"debian-9", "centos-8"},
			want:   "(labels.pool != debian-9) AND (labels.pool != centos-8) OR -labels.pool:*",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LabelNotIn("pool", tt.values))
		})
	}
}
