package skills

// DefaultSynonyms returns the built-in synonym table. Canonical names map to
// the alias spellings commonly seen in job postings and resumes. The table is
// static configuration; callers may load their own via config instead.
func DefaultSynonyms() SynonymTable {
	return SynonymTable{
		"algorithms":                  {"algo", "algorithmic thinking"},
		"artificial intelligence":     {"ai"},
		"big data":                    {"big data analytics"},
		"c++":                         {"cpp"},
		"data structures":             {"dsa", "data structures & algorithms"},
		"deep learning":               {"dl", "neural networks", "nn"},
		"distributed systems":         {"distributed computing"},
		"javascript":                  {"js"},
		"kubernetes":                  {"k8s"},
		"machine learning":            {"ml", "machine-learning"},
		"natural language processing": {"nlp"},
		"postgresql":                  {"postgres"},
		"python":                      {"py"},
		"speech recognition":          {"asr"},
		"speech-to-speech":            {"s2s", "speech2speech"},
		"statistics":                  {"stats", "probability and statistics"},
	}
}
