package labels

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuilder(t *testing.T) {
	got := New().
		WithPool("debian-9").
		WithVM("vm17").
		WithSnapshotName("nightly").
		WithDiskName("vm17-disk0").
		WithBoot(true).
		Build()

	assert.Equal(t, map[string]string{
		"pool":          "debian-9",
		"vm":            "vm17",
		"snapshot_name": "nightly",
		"diskname":      "vm17-disk0",
		"boot":          "true",
	}, got)
}

func TestBuilderBootFalse(t *testing.T) {
	got := New().WithBoot(false).Build()
	assert.Equal(t, "false", got[KeyBoot])
}

func TestBuilderMergePassthrough(t *testing.T) {
	got := New().WithPool("p").Merge(map[string]string{"team": "qa"}).Build()
	assert.Equal(t, "qa", got["team"])
	assert.Equal(t, "p", got[KeyPool])
}

func TestBuilderBuildReturnsCopy(t *testing.T) {
	b := New().WithPool("p")
	first := b.Build()
	first[KeyPool] = "mutated"
	assert.Equal(t, "p", b.Build()[KeyPool])
}

func TestIsBoot(t *testing.T) {
	assert.True(t, IsBoot(map[string]string{KeyBoot: "true"}))
	assert.False(t, IsBoot(map[string]string{KeyBoot: "false"}))
	assert.False(t, IsBoot(map[string]string{}))
}

func TestShouldIgnore(t *testing.T) {
	tests := []struct {
		name      string
		labels    map[string]string
		allowList []string
		want      bool
	}{
		{
			name:      "nil allow-list exempts nothing",
			labels:    map[string]string{"pool": "x"},
			allowList: nil,
			want:      false,
		},
		{
			name:      "pool value in allow-list",
			labels:    map[string]string{"pool": "x"},
			allowList: []string{"x"},
			want:      true,
		},
		{
			name:      "pool value not in allow-list",
			labels:    map[string]string{"pool": "x"},
			allowList: []string{"y"},
			want:      false,
		},
		{
			name:      "empty sentinel matches missing pool label",
			labels:    map[string]string{},
			allowList: []string{"x", ""},
			want:      true,
		},
		{
			name:      "empty sentinel does not match labeled resource",
			labels:    map[string]string{"pool": "x"},
			allowList: []string{""},
			want:      false,
		},
		{
			name:      "key=value token matches exact pair",
			labels:    map[string]string{"user": "bob"},
			allowList: []string{"user=bob"},
			want:      true,
		},
		{
			name:      "key=value token requires exact value",
			labels:    map[string]string{"user": "bob"},
			allowList: []string{"user=alice"},
			want:      false,
		},
		{
			name:      "entries are lower-cased before matching",
			labels:    map[string]string{"pool": "x"},
			allowList: []string{"X"},
			want:      true,
		},
		{
			name:      "empty allow-list (non-nil) exempts nothing",
			labels:    map[string]string{"pool": "x"},
			allowList: []string{},
			want:      false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ShouldIgnore(tt.labels, tt.allowList))
		})
	}
}

func TestShouldIgnoreDoesNotMutateAllowList(t *testing.T) {
	allowList := []string{"Mixed-Case", "USER=Bob"}
	ShouldIgnore(map[string]string{"pool": "mixed-case"}, allowList)
	assert.Equal(t, []string{"Mixed-Case", "USER=Bob"}, allowList)
}
