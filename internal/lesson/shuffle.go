package lesson

import (
	"math/rand/v2"
	"sync"
)

// Shuffler reorders quiz options while keeping the answer letter bound to
// the same option text. Safe for concurrent use.
type Shuffler struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewShuffler uses rng, or a randomly seeded source when rng is nil.
func NewShuffler(rng *rand.Rand) *Shuffler {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Shuffler{rng: rng}
}

type optionPair struct {
	en      string
	zh      string
	correct bool
}

// ShuffleOptions shuffles a four-option question. Any other option count
// is returned unchanged. Chinese options are paired with English ones by
// index; a short non-empty Chinese list is padded with "".
func (s *Shuffler) ShuffleOptions(en, zh []string, answer string) ([]string, []string, string) {
	if len(en) != 4 {
		return en, zh, answer
	}

	correct := LetterIndex(answer)
	pairs := make([]optionPair, 4)
	for i := range pairs {
		pairs[i] = optionPair{en: en[i], correct: i == correct}
		if i < len(zh) {
			pairs[i].zh = zh[i]
		}
	}

	s.mu.Lock()
	s.rng.Shuffle(len(pairs), func(i, j int) { pairs[i], pairs[j] = pairs[j], pairs[i] })
	s.mu.Unlock()

	outEn := make([]string, 4)
	outZh := []string{}
	if len(zh) > 0 {
		outZh = make([]string, 4)
	}
	letter := "A"
	for i, p := range pairs {
		outEn[i] = p.en
		if len(zh) > 0 {
			outZh[i] = p.zh
		}
		if p.correct {
			letter = IndexLetter(i)
		}
	}
	return outEn, outZh, letter
}

// ShuffleQuiz returns a copy of items with every four-option question
// shuffled.
func (s *Shuffler) ShuffleQuiz(items []QuizItem) []QuizItem {
	out := make([]QuizItem, len(items))
	for i, q := range items {
		q.OptionsEn, q.OptionsZh, q.Answer = s.ShuffleOptions(q.OptionsEn, q.OptionsZh, q.Answer)
		out[i] = q
	}
	return out
}
