package scoring

import (
	"errors"
	"fmt"
)

// mtldTTRThreshold is the type-token ratio at which an MTLD factor completes
const mtldTTRThreshold = 0.72

// MTLD computes the Measure of Textual Lexical Diversity over a token list:
// the mean of a forward and a backward pass, where each pass counts how many
// times the running type-token ratio drops to the threshold.
func MTLD(tokens []string) (float64, error) {
	if len(tokens) == 0 {
		return 0, errors.New("mtld: empty token list")
	}

	fwd, err := mtldPass(tokens)
	if err != nil {
		return 0, err
	}

	rev := make([]string, len(tokens))
	for i, tok := range tokens {
		rev[len(tokens)-1-i] = tok
	}
	bwd, err := mtldPass(rev)
	if err != nil {
		return 0, err
	}

	return (fwd + bwd) / 2, nil
}

func mtldPass(tokens []string) (float64, error) {
	types := make(map[string]struct{})
	tokenCount := 0
	factors := 0.0
	ttr := 1.0

	for _, tok := range tokens {
		tokenCount++
		types[tok] = struct{}{}
		ttr = float64(len(types)) / float64(tokenCount)
		if ttr <= mtldTTRThreshold {
			factors++
			types = make(map[string]struct{})
			tokenCount = 0
			ttr = 1.0
		}
	}

	// Partial factor for the remainder of the sequence
	if tokenCount > 0 {
		factors += (1 - ttr) / (1 - mtldTTRThreshold)
	}

	if factors == 0 {
		return 0, errors.New("mtld: no factors, text too short or fully unique")
	}
	return float64(len(tokens)) / factors, nil
}

// HDD computes the Hypergeometric Distribution Diversity index: for each type,
// the probability of drawing it at least once in a random sample of `draws`
// tokens, summed and scaled by 1/draws. Typical values fall in [0, 1].
func HDD(tokens []string, draws int) (float64, error) {
	n := len(tokens)
	if n == 0 {
		return 0, errors.New("hdd: empty token list")
	}
	if draws < 1 || draws > n {
		return 0, fmt.Errorf("hdd: invalid draw count %d for %d tokens", draws, n)
	}

	freq := make(map[string]int)
	for _, tok := range tokens {
		freq[tok]++
	}

	sum := 0.0
	for _, k := range freq {
		p0 := hypergeomProbZero(n, k, draws)
		sum += (1 - p0) / float64(draws)
	}
	return sum, nil
}

// hypergeomProbZero returns P(X=0) for X ~ Hypergeometric(N, K, n), i.e.
// C(N-K, n) / C(N, n), as a running product to avoid factorial overflow.
func hypergeomProbZero(N, K, n int) float64 {
	if n > N-K {
		return 0
	}
	p := 1.0
	for i := 0; i < n; i++ {
		p *= float64(N-K-i) / float64(N-i)
	}
	return p
}
