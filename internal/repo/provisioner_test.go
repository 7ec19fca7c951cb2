package repo

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingMeter captures Advance calls for assertions.
type recordingMeter struct {
	reports [][2]int
}

func (m *recordingMeter) Advance(cur, max int) {
	m.reports = append(m.reports, [2]int{cur, max})
}

// TestEnsure_ExistingDirSkipsClone verifies that a present checkout
// directory short-circuits provisioning: no clone, no progress, no error.
func TestEnsure_ExistingDirSkipsClone(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "zmk")
	require.NoError(t, os.Mkdir(dir, 0o755))

	meter := &recordingMeter{}
	// An unreachable URL proves no network access happens on this path.
	p := NewProvisioner("https://invalid.invalid/nope.git")

	cloned, err := p.Ensure(context.Background(), dir, meter)
	require.NoError(t, err)
	assert.False(t, cloned)
	assert.Empty(t, meter.reports)
}

// TestEnsure_CloneFailurePropagates verifies that a failing clone surfaces
// as an error naming the URL, with no retry.
func TestEnsure_CloneFailurePropagates(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "zmk")

	src := filepath.Join(t.TempDir(), "missing-repo")
	p := NewProvisioner(src)

	_, err := p.Ensure(context.Background(), dir, &recordingMeter{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), src)
}

// TestSidebandParser verifies extraction of (current, max) counts from
// git's textual progress stream, including lines split across writes and
// carriage-return redraws.
func TestSidebandParser(t *testing.T) {
	tests := []struct {
		name   string
		chunks []string
		want   [][2]int
	}{
		{
			name:   "counted phase line",
			chunks: []string{"Receiving objects:  42% (1234/2945)\r"},
			want:   [][2]int{{1234, 2945}},
		},
		{
			name:   "enumerating has no max",
			chunks: []string{"remote: Enumerating objects: 517, done.\n"},
			want:   [][2]int{{517, 0}},
		},
		{
			name:   "counting without percentage",
			chunks: []string{"remote: Counting objects: 88\r"},
			want:   [][2]int{{88, 0}},
		},
		{
			name: "line split across writes",
			chunks: []string{
				"Resolving deltas: 10",
				"0% (812/812), done.\n",
			},
			want: [][2]int{{812, 812}},
		},
		{
			name: "multiple redraws in one chunk",
			chunks: []string{
				"Receiving objects:  10% (100/1000)\rReceiving objects:  20% (200/1000)\r",
			},
			want: [][2]int{{100, 1000}, {200, 1000}},
		},
		{
			name:   "unrecognized lines are ignored",
			chunks: []string{"warning: redirecting to https://...\n", "\n"},
			want:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meter := &recordingMeter{}
			w := newSidebandParser(meter)
			for _, c := range tt.chunks {
				n, err := w.Write([]byte(c))
				require.NoError(t, err)
				assert.Equal(t, len(c), n)
			}
			assert.Equal(t, tt.want, meter.reports)
		})
	}
}
