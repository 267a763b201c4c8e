package testutil

import (
	"testing"

	"github.com/sebdah/goldie/v2"
)

// Golden compares content against the named golden file under
// testdata/golden of the calling package.
//
// To regenerate golden files, run:
//
//	go test ./... -update
func Golden(t *testing.T, name string, content []byte) {
	t.Helper()
	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, content)
}
