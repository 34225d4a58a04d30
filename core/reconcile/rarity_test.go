package reconcile

import (
	"testing"

	"github.com/GiyoMoon/WitchTrade-BE/core/models"

	"github.com/stretchr/testify/assert"
)

func TestDecodeRarity(t *testing.T) {
	tests := []struct {
		name string
		mask int
		want []string
	}{
		{"None", 0, []string{}},
		{"Common only", 0b10000, []string{models.RarityCommon}},
		{"Whimsical only", 0b00001, []string{models.RarityWhimsical}},
		{"Uncommon and very rare", 0b01010, []string{models.RarityUncommon, models.RarityVeryRare}},
		{"Truncated to known tiers", 0b110001, []string{models.RarityCommon, models.RarityWhimsical}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DecodeRarity(tt.mask))
		})
	}
}

func TestRarityRoundTrip(t *testing.T) {
	for mask := 0; mask < AllRarities; mask++ {
		assert.Equal(t, mask, EncodeRarity(DecodeRarity(mask)), "mask %d", mask)
	}
}

func TestRarityFilter(t *testing.T) {
	assert.Equal(t, 31, AllRarities)

	all := RarityFilter(AllRarities)
	assert.True(t, all(models.RarityRare))
	assert.True(t, all("unknown"))

	some := RarityFilter(EncodeRarity([]string{models.RarityRare, models.RarityWhimsical}))
	assert.True(t, some(models.RarityRare))
	assert.True(t, some(models.RarityWhimsical))
	assert.False(t, some(models.RarityCommon))
	assert.False(t, some("unknown"))
}
