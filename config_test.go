package rowflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJoinConfigDefaults(t *testing.T) {
	c := newJoinConfig()
	assert.Equal(t, "_1", c.SuffixA)
	assert.Equal(t, "_2", c.SuffixB)

	WithSuffixes("_left", "_right")(c)
	assert.Equal(t, "_left", c.SuffixA)
	assert.Equal(t, "_right", c.SuffixB)
}

func TestTFConfigDefaults(t *testing.T) {
	c := newTFConfig()
	assert.Equal(t, "tf", c.ResultColumn)

	WithResultColumn("freq")(c)
	assert.Equal(t, "freq", c.ResultColumn)
}

func TestOptionsDoNotLeakBetweenJoiners(t *testing.T) {
	custom := newJoinerBase([]JoinOption{WithSuffixes("_a", "_b")})
	plain := newJoinerBase(nil)

	assert.Equal(t, "_a", custom.suffixA)
	assert.Equal(t, "_1", plain.suffixA)
	assert.Equal(t, "_2", plain.suffixB)
}
