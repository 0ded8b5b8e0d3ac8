package game

import "math/rand"

// newSecret draws rules.NumPegs palette colors. With repeats each slot is
// independently uniform; without repeats it takes a prefix of a shuffled
// palette, which samples without replacement. Rules.Validate guarantees the
// palette is large enough before this is ever called.
func newSecret(r *rand.Rand, rules *Rules) []PegColor {
	secret := make([]PegColor, rules.NumPegs)

	if rules.AllowRepeats {
		for i := range secret {
			secret[i] = PegColor(r.Intn(rules.NumColors) + 1)
		}
		return secret
	}

	palette := make([]PegColor, rules.NumColors)
	for i := range palette {
		palette[i] = PegColor(i + 1)
	}
	r.Shuffle(len(palette), func(i, j int) {
		palette[i], palette[j] = palette[j], palette[i]
	})
	copy(secret, palette)

	return secret
}
