package store

// Result is a cached evaluation: the 7-card input, the winning 5 cards and
// the category name.
type Result struct {
	Cards    []string `json:"cards"`
	Best     []string `json:"best"`
	Category string   `json:"category"`
}

// EvalCache looks up past evaluations by canonical hand key. Load returns
// (nil, nil) on a miss.
type EvalCache interface {
	Save(key string, res *Result) error
	Load(key string) (*Result, error)
}
