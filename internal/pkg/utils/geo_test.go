package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/placement-microservice/internal/pkg/utils"
)

func TestHaversineDistance(t *testing.T) {
	t.Run("Berlin to Munich is about 504 km", func(t *testing.T) {
		d := utils.HaversineDistance(52.5200, 13.4050, 48.1351, 11.5820)
		assert.InDelta(t, 504.0, d, 5.0)
	})

	t.Run("Hamburg to Frankfurt is about 393 km", func(t *testing.T) {
		d := utils.HaversineDistance(53.5511, 9.9937, 50.1109, 8.6821)
		assert.InDelta(t, 393.0, d, 5.0)
	})

	t.Run("same point is zero", func(t *testing.T) {
		d := utils.HaversineDistance(51.1657, 10.4515, 51.1657, 10.4515)
		assert.Equal(t, 0.0, d)
	})

	t.Run("symmetric", func(t *testing.T) {
		d1 := utils.HaversineDistance(52.52, 13.405, 48.1351, 11.582)
		d2 := utils.HaversineDistance(48.1351, 11.582, 52.52, 13.405)
		assert.InDelta(t, d1, d2, 1e-9)
	})
}

func TestValidateCoordinates(t *testing.T) {
	assert.True(t, utils.ValidateCoordinates(51.1657, 10.4515))
	assert.True(t, utils.ValidateCoordinates(-90, 180))
	assert.False(t, utils.ValidateCoordinates(91, 0))
	assert.False(t, utils.ValidateCoordinates(0, -181))
}

func TestValidateRadius(t *testing.T) {
	assert.True(t, utils.ValidateRadius(5))
	assert.True(t, utils.ValidateRadius(500))
	assert.False(t, utils.ValidateRadius(0.5))
	assert.False(t, utils.ValidateRadius(1500))
}
