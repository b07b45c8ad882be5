package metrics

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseTag(t *testing.T) {
	req := require.New(t)
	req.Nil(parseTag(nil))
	req.Equal([]string{"op:list", "status:ok"}, parseTag([]string{"op", "list", "status", "ok"}))
	req.Panics(func() { parseTag([]string{"dangling"}) })
}

func TestNewWithoutAgentFallsBackToLog(t *testing.T) {
	req := require.New(t)
	met := New("test", WithoutPodName())
	req.NotPanics(func() {
		met.BumpSum("count", 1, "k", "v")
		met.BumpAvg("avg", 2)
		met.BumpHistogram("hist", 3)
		met.BumpTime("time").End()
	})
	_, ok := nextClient().(*LogClient)
	req.True(ok)
}

func TestOddTagsDoNotPanicCaller(t *testing.T) {
	met := New("test")
	require.NotPanics(t, func() {
		met.BumpSum("count", 1, "dangling")
	})
}
