package sysmon

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSample(t *testing.T) {
	s := Sample()

	assert.GreaterOrEqual(t, s.CPUPercent, 0.0)
	assert.LessOrEqual(t, s.CPUPercent, 100.0)
	assert.GreaterOrEqual(t, s.MemPercent, 0.0)
	assert.LessOrEqual(t, s.MemPercent, 100.0)
}

func TestStatsString(t *testing.T) {
	s := Stats{CPUPercent: 42.4, MemPercent: 87.6}
	assert.Equal(t, "CPU 42% MEM 88%", s.String())
}
