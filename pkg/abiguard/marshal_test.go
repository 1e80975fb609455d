//go:build cgo && !windows

package abiguard_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abiguard/abiguard-go/pkg/abiguard"
)

func TestCStringRoundTrip(t *testing.T) {
	p, err := abiguard.CString("hello boundary")
	require.NoError(t, err)
	require.NotNil(t, p)
	defer abiguard.FreeCString(p)

	assert.Equal(t, "hello boundary", abiguard.GoString(p))
}

func TestCStringEmbeddedNUL(t *testing.T) {
	p, err := abiguard.CString("bad\x00text")
	assert.Nil(t, p)
	require.Error(t, err)
	assert.ErrorIs(t, err, abiguard.ErrEmbeddedNUL)
}

func TestCStringEmpty(t *testing.T) {
	p, err := abiguard.CString("")
	require.NoError(t, err)
	require.NotNil(t, p)
	defer abiguard.FreeCString(p)

	assert.Equal(t, "", abiguard.GoString(p))
}

func TestGoStringNil(t *testing.T) {
	assert.Equal(t, "", abiguard.GoString(nil))
}

func TestGoStringRepairsInvalidUTF8(t *testing.T) {
	// 0xFF can never appear in valid UTF-8.
	p, err := abiguard.CString("ab\xffcd")
	require.NoError(t, err)
	defer abiguard.FreeCString(p)

	assert.Equal(t, "ab�cd", abiguard.GoString(p))
}

func TestFreeCStringNil(t *testing.T) {
	abiguard.FreeCString(nil) // must not crash
}

func TestGoPath(t *testing.T) {
	p, err := abiguard.CString("/tmp/state/snapshot.car")
	require.NoError(t, err)
	defer abiguard.FreeCString(p)

	assert.Equal(t, "/tmp/state/snapshot.car", abiguard.GoPath(p))
}

func TestGoPathNil(t *testing.T) {
	assert.Equal(t, "", abiguard.GoPath(nil))
}

func TestSelfCheck(t *testing.T) {
	assert.True(t, abiguard.CGOEnabled())
	require.NoError(t, abiguard.SelfCheck())
}
