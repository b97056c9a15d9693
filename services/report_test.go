package services

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRenderListenReport(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.Local)
	end := time.Date(2024, 1, 2, 23, 59, 59, 0, time.Local)

	buckets := []DayCount{
		{Day: "2024-01-01", Count: 4},
		{Day: "2024-01-02", Count: 1},
	}

	out := RenderListenReport("Morning Show", buckets, start, end)

	assert.Contains(t, out, "Morning Show")
	assert.Contains(t, out, "2024-01-01")
	assert.Contains(t, out, "2024-01-02")
	assert.Contains(t, out, "Total")
	assert.Contains(t, out, "5")
	assert.Greater(t, len(strings.Split(out, "\n")), 4)
}
