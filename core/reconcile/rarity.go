package reconcile

import "github.com/GiyoMoon/WitchTrade-BE/core/models"

// AllRarities is the mask selecting every rarity tier. It disables rarity
// filtering instead of being decoded.
var AllRarities = 1<<len(models.Rarities) - 1

// DecodeRarity returns the rarity tags selected by mask, in declaration order.
// The mask is read as a binary string padded or truncated to the number of
// tiers; the leftmost digit selects models.Rarities[0].
func DecodeRarity(mask int) []string {
	tiers := len(models.Rarities)
	tags := make([]string, 0, tiers)
	for i, tag := range models.Rarities {
		if mask>>(tiers-1-i)&1 == 1 {
			tags = append(tags, tag)
		}
	}
	return tags
}

// EncodeRarity is the inverse of DecodeRarity. Unknown tags are ignored.
func EncodeRarity(tags []string) int {
	tiers := len(models.Rarities)
	mask := 0
	for _, tag := range tags {
		for i, known := range models.Rarities {
			if tag == known {
				mask |= 1 << (tiers - 1 - i)
			}
		}
	}
	return mask
}

// RarityFilter returns a predicate accepting the rarity tags selected by mask.
func RarityFilter(mask int) func(rarity string) bool {
	if mask == AllRarities {
		return func(string) bool { return true }
	}
	allowed := make(map[string]struct{})
	for _, tag := range DecodeRarity(mask) {
		allowed[tag] = struct{}{}
	}
	return func(rarity string) bool {
		_, ok := allowed[rarity]
		return ok
	}
}
