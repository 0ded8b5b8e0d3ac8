package game

// score runs the classic two-pass evaluation of guess against secret.
//
// Pass 1 records a black mark for every exact position match and consumes
// both sides, so those positions are invisible to pass 2. Pass 2 scans, for
// each unconsumed guess position, the unconsumed secret positions in
// ascending order and records a white mark on the first color match,
// consuming that secret position (first-fit). Consumption is what keeps the
// counts correct when colors repeat on either side.
func score(secret, guess []PegColor) (black, white int) {
	n := len(secret)
	secretUsed := make([]bool, n)
	guessUsed := make([]bool, n)

	for i := 0; i < n; i++ {
		if guess[i] == secret[i] {
			black++
			secretUsed[i] = true
			guessUsed[i] = true
		}
	}

	for i := 0; i < n; i++ {
		if guessUsed[i] {
			continue
		}
		for j := 0; j < n; j++ {
			if !secretUsed[j] && guess[i] == secret[j] {
				white++
				secretUsed[j] = true
				break
			}
		}
	}

	return black, white
}

// feedbackRow lays marks out black-first, then white, padded with none.
func feedbackRow(black, white, n int) []Feedback {
	row := make([]Feedback, n)
	for i := 0; i < black; i++ {
		row[i] = FeedbackBlack
	}
	for i := 0; i < white; i++ {
		row[black+i] = FeedbackWhite
	}
	return row
}

// exactMatch reports whether guess reproduces secret element-wise. The win
// check is kept as a pass independent of score; the two must agree
// (black == len(secret) exactly when this returns true).
func exactMatch(secret, guess []PegColor) bool {
	for i := range secret {
		if guess[i] != secret[i] {
			return false
		}
	}
	return true
}
