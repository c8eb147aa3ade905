package experience

import "errors"

type OrderBy struct {
	v string
}

var (
	// OrderByLatest is the zero value and the default listing order.
	OrderByLatest     OrderBy = OrderBy{}
	OrderByOldest     OrderBy = OrderBy{v: "oldest"}
	OrderByMostViewed OrderBy = OrderBy{v: "most_viewed"}
)

var ErrParseOrderBy = errors.New("invalid sort order")

func ParseOrderBy(value string) (OrderBy, error) {
	switch value {
	case "latest":
		return OrderByLatest, nil
	case "oldest":
		return OrderByOldest, nil
	case "most_viewed":
		return OrderByMostViewed, nil
	default:
		return OrderByLatest, ErrParseOrderBy
	}
}
