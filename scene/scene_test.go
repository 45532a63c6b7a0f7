package scene

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		scenes   []Scene
		expected error
	}{
		{"valid", []Scene{{"a", time.Second}, {"b", 2 * time.Second}}, nil},
		{"empty", nil, ErrEmpty},
		{"missing id", []Scene{{"", time.Second}}, ErrMissingID},
		{"duplicate id", []Scene{{"a", time.Second}, {"a", time.Second}}, ErrDuplicateID},
		{"zero duration", []Scene{{"a", 0}}, ErrInvalidDuration},
		{"negative duration", []Scene{{"a", -time.Second}}, ErrInvalidDuration},
	}

	for _, testCase := range testCases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			err := Validate(testCase.scenes)
			if testCase.expected == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, testCase.expected)
		})
	}
}

func TestTotalDurationAndIndexOf(t *testing.T) {
	t.Parallel()

	scenes := []Scene{{"a", time.Second}, {"b", 2 * time.Second}}
	assert.Equal(t, 3*time.Second, TotalDuration(scenes))
	assert.Equal(t, 1, IndexOf(scenes, "b"))
	assert.Equal(t, -1, IndexOf(scenes, "missing"))
}
