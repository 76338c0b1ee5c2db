package scoring

import "strings"

// FleschReadingEase computes the Flesch Reading Ease of a text given its word
// tokens and sentence count. Higher scores read easier. Returns 0 when there
// are no words.
func FleschReadingEase(words []string, sentences int) float64 {
	if len(words) == 0 {
		return 0
	}
	if sentences < 1 {
		sentences = 1
	}
	syllables := 0
	for _, w := range words {
		syllables += countSyllables(w)
	}
	wordCount := float64(len(words))
	return 206.835 - 1.015*(wordCount/float64(sentences)) - 84.6*(float64(syllables)/wordCount)
}

// GunningFog computes the Gunning Fog index of a text given its word tokens
// and sentence count. Lower scores read easier. Complex words have three or
// more syllables.
func GunningFog(words []string, sentences int) float64 {
	if len(words) == 0 {
		return 0
	}
	if sentences < 1 {
		sentences = 1
	}
	complexWords := 0
	for _, w := range words {
		if countSyllables(w) >= 3 {
			complexWords++
		}
	}
	wordCount := float64(len(words))
	return 0.4 * (wordCount/float64(sentences) + 100*float64(complexWords)/wordCount)
}

// countSyllables estimates syllables by counting vowel groups, discounting a
// trailing silent e. Always at least 1.
func countSyllables(word string) int {
	const vowels = "aeiouy"
	count := 0
	prevVowel := false
	for _, r := range strings.ToLower(word) {
		isVowel := strings.ContainsRune(vowels, r)
		if isVowel && !prevVowel {
			count++
		}
		prevVowel = isVowel
	}
	if strings.HasSuffix(word, "e") && count > 1 {
		count--
	}
	if count < 1 {
		count = 1
	}
	return count
}
