package train

import (
	"context"
	"fmt"
	"math"
	"sort"

	"go.uber.org/zap"

	"jobmarket/internal/ml"
	"jobmarket/internal/store"
)

const (
	maxFeatures        = 500
	minCategorizedRows = 20
	// Laplace smoothing for the naive Bayes term counts.
	smoothingAlpha = 1.0
)

// stopwords are excluded from the classifier vocabulary. Short English
// list; the fixed skill vocabulary is unaffected.
var stopwords = map[string]bool{
	"an": true, "and": true, "are": true, "as": true, "at": true,
	"be": true, "but": true, "by": true, "for": true, "from": true,
	"has": true, "have": true, "in": true, "is": true, "it": true,
	"of": true, "on": true, "or": true, "our": true, "that": true,
	"the": true, "their": true, "this": true, "to": true, "we": true,
	"will": true, "with": true, "you": true, "your": true,
}

// CategoryModel trains the tf-idf + naive Bayes classifier on stored rows
// labeled by the category rules, and writes the artifact under dir. Rows
// no rule claims are dropped, as are rules that match nothing.
func CategoryModel(ctx context.Context, st *store.Store, dir, rulesPath string, logger *zap.Logger) (*ml.CategoryModel, error) {
	rules, err := LoadRules(rulesPath)
	if err != nil {
		return nil, err
	}

	jobs, err := st.Query(ctx, store.Filter{Limit: trainingQueryLimit})
	if err != nil {
		return nil, fmt.Errorf("load training rows: %w", err)
	}

	var texts []string
	var labels []string
	for _, j := range jobs {
		cat := Categorize(rules, j.Title)
		if cat == OtherCategory {
			continue
		}
		texts = append(texts, j.Title+" "+j.Description)
		labels = append(labels, cat)
	}
	logger.Info("classifier training set",
		zap.Int("total_rows", len(jobs)),
		zap.Int("categorized", len(texts)),
	)
	if len(texts) < minCategorizedRows {
		return nil, fmt.Errorf("need at least %d categorized rows, have %d", minCategorizedRows, len(texts))
	}

	vec := fitVectorizer(texts)
	clf := fitNaiveBayes(vec, texts, labels)

	m := &ml.CategoryModel{Vectorizer: vec, Classifier: clf, TrainedOn: len(texts)}
	if err := m.Save(dir); err != nil {
		return nil, err
	}
	logger.Info("classifier saved",
		zap.String("dir", dir),
		zap.Int("trained_on", m.TrainedOn),
		zap.Int("vocabulary", len(vec.Vocabulary)),
		zap.Strings("classes", clf.Classes),
	)
	return m, nil
}

// fitVectorizer picks the most frequent non-stopword tokens (up to
// maxFeatures) and computes smoothed idf weights over the corpus.
func fitVectorizer(texts []string) *ml.Vectorizer {
	termCount := map[string]int{}
	docFreq := map[string]int{}

	for _, text := range texts {
		seen := map[string]bool{}
		for _, tok := range ml.Tokenize(text) {
			if stopwords[tok] {
				continue
			}
			termCount[tok]++
			if !seen[tok] {
				seen[tok] = true
				docFreq[tok]++
			}
		}
	}

	terms := make([]string, 0, len(termCount))
	for t := range termCount {
		terms = append(terms, t)
	}
	// Most frequent first; ties alphabetical so runs are reproducible.
	sort.Slice(terms, func(i, j int) bool {
		if termCount[terms[i]] != termCount[terms[j]] {
			return termCount[terms[i]] > termCount[terms[j]]
		}
		return terms[i] < terms[j]
	})
	if len(terms) > maxFeatures {
		terms = terms[:maxFeatures]
	}
	sort.Strings(terms)

	n := float64(len(texts))
	idf := make([]float64, len(terms))
	for i, t := range terms {
		idf[i] = math.Log((1+n)/(1+float64(docFreq[t]))) + 1
	}

	return &ml.Vectorizer{Vocabulary: terms, IDF: idf}
}

// fitNaiveBayes fits multinomial naive Bayes over the tf-idf vectors.
func fitNaiveBayes(vec *ml.Vectorizer, texts, labels []string) *ml.Classifier {
	classes := []string{}
	seen := map[string]bool{}
	for _, l := range labels {
		if !seen[l] {
			seen[l] = true
			classes = append(classes, l)
		}
	}
	sort.Strings(classes)

	classIdx := make(map[string]int, len(classes))
	for i, c := range classes {
		classIdx[c] = i
	}

	nTerms := len(vec.Vocabulary)
	classCount := make([]float64, len(classes))
	featureSum := make([][]float64, len(classes))
	for i := range featureSum {
		featureSum[i] = make([]float64, nTerms)
	}

	for i, text := range texts {
		ci := classIdx[labels[i]]
		classCount[ci]++
		for j, v := range vec.Transform(text) {
			featureSum[ci][j] += v
		}
	}

	logPrior := make([]float64, len(classes))
	logLikelihood := make([][]float64, len(classes))
	total := float64(len(texts))
	for i := range classes {
		logPrior[i] = math.Log(classCount[i] / total)

		var rowSum float64
		for _, v := range featureSum[i] {
			rowSum += v
		}

		logLikelihood[i] = make([]float64, nTerms)
		denom := rowSum + smoothingAlpha*float64(nTerms)
		for j := range logLikelihood[i] {
			logLikelihood[i][j] = math.Log((featureSum[i][j] + smoothingAlpha) / denom)
		}
	}

	return &ml.Classifier{
		Classes:       classes,
		LogPrior:      logPrior,
		LogLikelihood: logLikelihood,
	}
}
