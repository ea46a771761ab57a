package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateBMI(t *testing.T) {
	tests := []struct {
		name     string
		heightCm float64
		weightKg float64
		expected float64
		wantErr  bool
	}{
		{name: "normal adult", heightCm: 175, weightKg: 70, expected: 22.857},
		{name: "tall heavy adult", heightCm: 198, weightKg: 110, expected: 28.058},
		{name: "zero height", heightCm: 0, weightKg: 70, wantErr: true},
		{name: "negative weight", heightCm: 175, weightKg: -5, wantErr: true},
		{name: "implausible height", heightCm: 300, weightKg: 70, wantErr: true},
		{name: "implausible weight", heightCm: 175, weightKg: 500, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bmi, err := CalculateBMI(tt.heightCm, tt.weightKg)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, bmi, 0.001)
		})
	}
}

func TestBMICategory(t *testing.T) {
	tests := []struct {
		bmi      float64
		expected string
	}{
		{17.0, "Underweight"},
		{18.5, "Normal weight"},
		{24.9, "Normal weight"},
		{25.0, "Overweight"},
		{29.9, "Overweight"},
		{30.0, "Obesity class I"},
		{35.0, "Obesity class II"},
		{40.0, "Obesity class III"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, BMICategory(tt.bmi))
		})
	}
}
