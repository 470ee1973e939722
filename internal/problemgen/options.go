package problemgen

// optionCount is the number of multiple-choice options per question.
const optionCount = 4

// generateOptions returns four distinct values in random order: the answer
// plus three distractors within ±spread of it. Negative distractors are
// allowed. spread must be at least 2 so that enough distinct values exist.
func generateOptions(r Rand, answer, spread int) []int {
	seen := map[int]struct{}{answer: {}}
	options := []int{answer}
	for len(options) < optionCount {
		opt := answer + randInt(r, -spread, spread)
		if _, dup := seen[opt]; dup {
			continue
		}
		seen[opt] = struct{}{}
		options = append(options, opt)
	}
	shuffle(r, options)
	return options
}
