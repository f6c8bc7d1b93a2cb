package ml

import (
	"math"
	"regexp"
	"strings"
)

var tokenRe = regexp.MustCompile(`[a-z0-9_]{2,}`)

// Tokenize lowercases text and splits it into word tokens of at least two
// characters. The same tokenizer runs at training and inference time.
func Tokenize(text string) []string {
	return tokenRe.FindAllString(strings.ToLower(text), -1)
}

// Vectorizer maps free text onto the tf-idf feature space fixed at
// training time. Tokens outside the vocabulary are ignored.
type Vectorizer struct {
	Vocabulary []string  `json:"vocabulary"`
	IDF        []float64 `json:"idf"`

	index map[string]int
}

func (v *Vectorizer) buildIndex() {
	v.index = make(map[string]int, len(v.Vocabulary))
	for i, term := range v.Vocabulary {
		v.index[term] = i
	}
}

// Transform converts text into a tf-idf vector over the fixed vocabulary.
func (v *Vectorizer) Transform(text string) []float64 {
	if v.index == nil {
		v.buildIndex()
	}

	x := make([]float64, len(v.Vocabulary))
	for _, tok := range Tokenize(text) {
		if i, ok := v.index[tok]; ok {
			x[i] += v.IDF[i]
		}
	}
	return x
}

// Classifier is a multinomial naive Bayes over the vectorizer's feature
// space.
type Classifier struct {
	Classes       []string    `json:"classes"`
	LogPrior      []float64   `json:"log_prior"`
	LogLikelihood [][]float64 `json:"log_likelihood"` // [class][term]
}

// Predict returns the most likely class and a probability per class.
// Probabilities are normalized with log-sum-exp, so they always sum to 1.
func (c *Classifier) Predict(x []float64) (string, []float64) {
	joint := make([]float64, len(c.Classes))
	for i := range c.Classes {
		s := c.LogPrior[i]
		ll := c.LogLikelihood[i]
		for j, v := range x {
			if v != 0 {
				s += v * ll[j]
			}
		}
		joint[i] = s
	}

	maxLog := joint[0]
	best := 0
	for i, s := range joint {
		if s > maxLog {
			maxLog = s
			best = i
		}
	}

	var total float64
	probs := make([]float64, len(joint))
	for i, s := range joint {
		probs[i] = math.Exp(s - maxLog)
		total += probs[i]
	}
	for i := range probs {
		probs[i] /= total
	}

	return c.Classes[best], probs
}

// CategoryModel ties the vectorizer and classifier into one artifact,
// produced offline by the train-classifier command.
type CategoryModel struct {
	Vectorizer *Vectorizer `json:"vectorizer"`
	Classifier *Classifier `json:"classifier"`
	TrainedOn  int         `json:"trained_on"`
}

// CategoryPrediction is a label plus a confidence percentage per known
// class, echoing the input title.
type CategoryPrediction struct {
	PredictedCategory string             `json:"predicted_category"`
	Confidence        map[string]float64 `json:"confidence"`
	Title             string             `json:"title"`
}

// Predict classifies a posting from its title and description.
func (m *CategoryModel) Predict(title, description string) *CategoryPrediction {
	x := m.Vectorizer.Transform(title + " " + description)
	label, probs := m.Classifier.Predict(x)

	confidence := make(map[string]float64, len(probs))
	for i, cls := range m.Classifier.Classes {
		confidence[cls] = math.Round(probs[i]*1000) / 10
	}

	return &CategoryPrediction{
		PredictedCategory: label,
		Confidence:        confidence,
		Title:             title,
	}
}
