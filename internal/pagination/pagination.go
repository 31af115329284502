package pagination

// Params is the page window requested by the caller. Zero values mean
// "unset"; stores apply the defaults, handlers apply the cap.
type Params struct {
	Page  int
	Limit int
}

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// OrDefaults fills unset fields. Applied at the store boundary so that a
// missing pagination never produces an unbounded result set.
func (p Params) OrDefaults() Params {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.Limit < 1 {
		p.Limit = DefaultLimit
	}
	return p
}

func (p Params) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Envelope wraps one page of results with its navigation metadata.
type Envelope[T any] struct {
	Data        []T   `json:"data"`
	Count       int64 `json:"count"`
	CurrentPage int   `json:"currentPage"`
	NextPage    *int  `json:"nextPage"`
	PrevPage    *int  `json:"prevPage"`
	LastPage    int   `json:"lastPage"`
}

// Paginate derives the envelope from (total, page, limit). Pure; recomputed
// per request.
func Paginate[T any](data []T, total int64, page, limit int) Envelope[T] {
	lastPage := int((total + int64(limit) - 1) / int64(limit))

	var nextPage, prevPage *int
	if page < lastPage {
		n := page + 1
		nextPage = &n
	}
	if page > 1 {
		p := page - 1
		prevPage = &p
	}

	if data == nil {
		data = []T{}
	}

	return Envelope[T]{
		Data:        data,
		Count:       total,
		CurrentPage: page,
		NextPage:    nextPage,
		PrevPage:    prevPage,
		LastPage:    lastPage,
	}
}
