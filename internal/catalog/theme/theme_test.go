package theme

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRootCSS(t *testing.T) {
	t.Parallel()

	css := RootCSS()
	require.Contains(t, css, "--color-white:hsl(0deg 0% 100%);")
	require.Contains(t, css, "--color-gray-700:"+string(Colors.Gray.G700)+";")
	require.Contains(t, css, "--color-gray-900:"+string(Colors.Gray.G900)+";")
	require.Contains(t, css, "--color-primary:hsl(340deg 65% 47%);")
	require.Contains(t, css, "--color-secondary:hsl(240deg 60% 63%);")
	require.Contains(t, css, "--weight-normal:500;")
	require.Contains(t, css, "--weight-medium:600;")
	require.Equal(t, ":root{", css[:6])
}
