package problemgen

// fallback produces a question without consulting the cache. It uses the
// same tier builders as the retry loop, so block counts, per-block operation
// minimums and the HARD complexity requirement still hold. Inside a quiz it
// keeps drawing until the signature is new to the quiz or FallbackBudget
// draws are spent. It returns the question and the number of draws made.
func (g *Generator) fallback(t QuizType, d Difficulty, prof DifficultyProfile, quizSeen map[string]struct{}) (*Question, int) {
	var q *Question
	draws := 0
	for draws < g.config.FallbackBudget {
		draws++
		q = g.candidate(t, d, prof)
		if runValidators(g.config.Validators, q) != nil {
			continue
		}
		if _, dup := quizSeen[q.Signature()]; !dup {
			break
		}
	}
	return q, draws
}
