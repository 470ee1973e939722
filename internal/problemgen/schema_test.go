package problemgen

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateJSON_GeneratedQuiz(t *testing.T) {
	g := newTestGenerator(12)
	for _, qt := range AllQuizTypes() {
		quiz, err := g.GenerateQuiz(qt, DifficultyMedium, 5)
		require.NoError(t, err)

		raw, err := json.Marshal(quiz)
		require.NoError(t, err)
		assert.NoError(t, ValidateJSON(raw))

		one, err := json.Marshal(quiz[0])
		require.NoError(t, err)
		assert.NoError(t, ValidateJSON(one))
	}
}

func TestValidateJSON_Rejects(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not json", `{"id":`},
		{"missing options", `{"id":"a","type":"arithmetics","difficulty":"easy","question":"1 + 1 = ?","correctAnswer":2}`},
		{"three options", `{"id":"a","type":"arithmetics","difficulty":"easy","question":"1 + 1 = ?","correctAnswer":2,"options":[1,2,3]}`},
		{"repeated options", `{"id":"a","type":"arithmetics","difficulty":"easy","question":"1 + 1 = ?","correctAnswer":2,"options":[1,2,2,3]}`},
		{"bad type", `{"id":"a","type":"geometry","difficulty":"easy","question":"1 + 1 = ?","correctAnswer":2,"options":[1,2,3,4]}`},
		{"fractional answer", `{"id":"a","type":"arithmetics","difficulty":"easy","question":"1 + 1 = ?","correctAnswer":2.5,"options":[1,2,3,4]}`},
		{"extra field", `{"id":"a","type":"arithmetics","difficulty":"easy","question":"1 + 1 = ?","correctAnswer":2,"options":[1,2,3,4],"hint":"add"}`},
		{"bad element in array", `[{"id":"a","type":"arithmetics","difficulty":"easy","question":"1 + 1 = ?","correctAnswer":2,"options":[1,2,3,4]},{"id":""}]`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Error(t, ValidateJSON([]byte(tc.raw)))
		})
	}
}
