package controllers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMinorUnits(t *testing.T) {
	assert.Equal(t, 255, minorUnits(2.55))
	assert.Equal(t, 1999, minorUnits(19.99))
	assert.Equal(t, 10000, minorUnits(100))
	assert.Equal(t, 0, minorUnits(0))
}
