package question

// PageSize is the number of questions returned per page.
const PageSize = 10

// Question is the client-facing shape of a stored question. Category holds the
// category id.
type Question struct {
	ID         int64  `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   int64  `json:"category"`
	Difficulty int32  `json:"difficulty"`
}

// ListRequest selects questions. A nil SearchTerm means no text filter, a nil
// CategoryID means every category. Page is 1-based; values below 1 are read as 1.
type ListRequest struct {
	CategoryID *int64
	SearchTerm *string
	Page       int
}

// Listing is one page of matching questions plus navigation data.
type Listing struct {
	Questions       []Question
	Total           int
	CurrentCategory *string
	Categories      []string
}

// CreateRequest is passed to the store untouched; nil fields are rejected there.
type CreateRequest struct {
	Question   *string
	Answer     *string
	Category   *int64
	Difficulty *int32
}

// DeleteResult reports the removed id and the refreshed first page.
type DeleteResult struct {
	DeletedID int64
	Questions []Question
	Total     int
}

// CreateResult reports the new id and the refreshed first page.
type CreateResult struct {
	CreatedID int64
	Questions []Question
	Total     int
}
