package card

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	sale := int64(5000)

	tests := []struct {
		name        string
		salePrice   *int64
		releaseDate time.Time
		want        Variant
	}{
		{
			name:        "sale price wins over old release",
			salePrice:   &sale,
			releaseDate: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
			want:        VariantOnSale,
		},
		{
			name:        "sale price wins over recent release",
			salePrice:   &sale,
			releaseDate: now.AddDate(0, 0, -2),
			want:        VariantOnSale,
		},
		{
			name:        "recent release without sale",
			releaseDate: now.AddDate(0, 0, -5),
			want:        VariantNewRelease,
		},
		{
			name:        "old release without sale",
			releaseDate: now.AddDate(0, 0, -400),
			want:        VariantDefault,
		},
		{
			name:        "future release counts as new",
			releaseDate: now.AddDate(0, 0, 10),
			want:        VariantNewRelease,
		},
		{
			name:        "exactly thirty days old is not new",
			releaseDate: now.Add(-DefaultNewReleaseWindow),
			want:        VariantDefault,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, Resolve(tc.salePrice, tc.releaseDate, now, DefaultNewReleaseWindow))
		})
	}
}

func TestIsNewReleaseWindow(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	released := now.AddDate(0, 0, -10)

	require.True(t, IsNewRelease(released, now, 0), "zero window falls back to default")
	require.False(t, IsNewRelease(released, now, 7*24*time.Hour))
	require.True(t, IsNewRelease(released, now, 14*24*time.Hour))
}
