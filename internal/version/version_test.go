package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	v, c, b := Version, GitCommit, BuildTime
	t.Cleanup(func() { Version, GitCommit, BuildTime = v, c, b })

	Version, GitCommit, BuildTime = "1.2.3", "abc123", "2026-10-19"
	assert.Equal(t, "gotruss v1.2.3 (commit abc123, built 2026-10-19)", String())
}
