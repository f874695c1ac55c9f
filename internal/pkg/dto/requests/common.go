package requests

type QueryParams struct {
	Page     int
	PageSize int
}

func (q *QueryParams) Normalize() {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PageSize < 1 || q.PageSize > 100 {
		q.PageSize = 20
	}
}
