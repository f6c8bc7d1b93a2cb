package ml

import (
	"math"
	"reflect"
	"testing"
)

func testCategoryModel() *CategoryModel {
	// Tiny two-class model: "python"/"model" lean Data Scientist,
	// "pipeline"/"spark" lean Data Engineer.
	return &CategoryModel{
		Vectorizer: &Vectorizer{
			Vocabulary: []string{"model", "pipeline", "python", "spark"},
			IDF:        []float64{1, 1, 1, 1},
		},
		Classifier: &Classifier{
			Classes:  []string{"Data Engineer", "Data Scientist"},
			LogPrior: []float64{math.Log(0.5), math.Log(0.5)},
			LogLikelihood: [][]float64{
				{math.Log(0.1), math.Log(0.4), math.Log(0.1), math.Log(0.4)},
				{math.Log(0.4), math.Log(0.1), math.Log(0.4), math.Log(0.1)},
			},
		},
		TrainedOn: 10,
	}
}

func TestTokenize(t *testing.T) {
	got := Tokenize("Senior ML-Engineer: build Models!")
	want := []string{"senior", "ml", "engineer", "build", "models"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tokenize = %v, want %v", got, want)
	}
}

func TestVectorizerIgnoresUnknownTokens(t *testing.T) {
	m := testCategoryModel()
	x := m.Vectorizer.Transform("python python banana")
	want := []float64{0, 0, 2, 0}
	if !reflect.DeepEqual(x, want) {
		t.Errorf("Transform = %v, want %v", x, want)
	}
}

func TestCategoryPredict(t *testing.T) {
	m := testCategoryModel()

	pred := m.Predict("Data Scientist", "train a python model")
	if pred.PredictedCategory != "Data Scientist" {
		t.Errorf("category = %q, want Data Scientist", pred.PredictedCategory)
	}
	if pred.Title != "Data Scientist" {
		t.Errorf("title not echoed: %q", pred.Title)
	}

	var total float64
	for _, pct := range pred.Confidence {
		total += pct
	}
	if math.Abs(total-100) > 0.2 {
		t.Errorf("confidence sums to %v, want ~100", total)
	}
	if pred.Confidence["Data Scientist"] <= pred.Confidence["Data Engineer"] {
		t.Errorf("confidence = %v", pred.Confidence)
	}
}

func TestCategoryPredictOtherClass(t *testing.T) {
	m := testCategoryModel()
	pred := m.Predict("Data Engineer", "build a spark pipeline")
	if pred.PredictedCategory != "Data Engineer" {
		t.Errorf("category = %q, want Data Engineer", pred.PredictedCategory)
	}
}
