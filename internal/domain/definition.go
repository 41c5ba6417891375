package domain

// CageDef is one cage in a puzzle definition file.
type CageDef struct {
	Value int      `json:"value" yaml:"value"`
	Op    Op       `json:"op" yaml:"op"`
	Cells [][2]int `json:"cells" yaml:"cells"`
}

// Definition is the serialized shape of a puzzle before assembly. Row and
// column uniqueness constraints are implied and added by the loader.
type Definition struct {
	Width int       `json:"width" yaml:"width"`
	Cages []CageDef `json:"cages" yaml:"cages"`
}

// Record is a persisted solve result.
type Record struct {
	ID             string     `json:"id"`
	Name           string     `json:"name,omitempty"`
	Width          int        `json:"width"`
	Definition     Definition `json:"definition"`
	Solution       [][]int    `json:"solution,omitempty"`
	Solved         bool       `json:"solved"`
	Backtracks     int        `json:"backtracks"`
	RecursiveCalls int        `json:"recursiveCalls"`
	DurationMs     int64      `json:"durationMs"`
	CreatedAt      int64      `json:"createdAt,omitempty"`
}

// RecordMeta is a lightweight listing entry.
type RecordMeta struct {
	ID        string `json:"id"`
	Name      string `json:"name,omitempty"`
	Width     int    `json:"width"`
	Solved    bool   `json:"solved"`
	CreatedAt int64  `json:"createdAt"`
}
