package etl

import "strings"

// Vocabulary is the closed set of skill terms the extractor recognizes:
// languages, cloud platforms, frameworks and data tooling. Matching is
// plain substring containment, so a term occurring inside a longer word
// still counts. That imprecision is a known limitation of the extractor,
// kept deliberately; do not add word-boundary checks here.
var Vocabulary = []string{
	"python", "sql", "r", "java", "javascript", "scala", "c++",
	"aws", "azure", "gcp", "google cloud", "cloud",
	"docker", "kubernetes", "jenkins", "ci/cd", "git", "github",
	"spark", "hadoop", "kafka", "airflow", "databricks",
	"tableau", "powerbi", "power bi", "looker", "qlik",
	"excel", "pandas", "numpy", "scipy", "matplotlib", "seaborn",
	"tensorflow", "pytorch", "keras", "scikit-learn", "sklearn",
	"machine learning", "deep learning", "nlp", "computer vision", "ai",
	"fastapi", "flask", "django", "streamlit",
	"postgresql", "mysql", "mongodb", "redis", "elasticsearch",
	"api", "rest", "etl", "data pipeline", "data warehouse",
}

// ExtractSkills returns the vocabulary terms found in the cleaned
// description and title, case-folded. Output order follows the vocabulary,
// so equal inputs always produce identical slices.
func ExtractSkills(description, title string) []string {
	text := strings.ToLower(description + " " + title)

	var found []string
	for _, term := range Vocabulary {
		if strings.Contains(text, term) {
			found = append(found, term)
		}
	}
	return found
}
