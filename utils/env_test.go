package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvOrDefault(t *testing.T) {
	t.Setenv("HOTELHUB_TEST_KEY", "set")
	assert.Equal(t, "set", EnvOrDefault("HOTELHUB_TEST_KEY", "fallback"))

	t.Setenv("HOTELHUB_TEST_KEY", "   ")
	assert.Equal(t, "fallback", EnvOrDefault("HOTELHUB_TEST_KEY", "fallback"))

	assert.Equal(t, "fallback", EnvOrDefault("HOTELHUB_UNSET_KEY", "fallback"))
}

func TestGenerateReferenceCode(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		code, err := GenerateReferenceCode()
		require.NoError(t, err)
		require.True(t, strings.HasPrefix(code, "BK-"))
		require.Len(t, code, len("BK-")+8)
		for _, r := range code[3:] {
			assert.Contains(t, referenceCharset, string(r))
		}
		assert.False(t, seen[code], "reference codes should not repeat in a small sample")
		seen[code] = true
	}
}
