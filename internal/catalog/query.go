package catalog

import "net/url"

// URL query parameters that carry view state.
const (
	ParamCategory  = "category"
	ParamRetailer  = "retailer"
	ParamCondition = "condition"
	ParamSort      = "sort"
	ParamSearch    = "q"
)

var recognizedParams = []string{
	ParamCategory,
	ParamRetailer,
	ParamCondition,
	ParamSort,
	ParamSearch,
}

// EncodeQuery writes c as URL query values. Parameters whose value equals
// the default are left out, so default criteria encode to an empty set.
func EncodeQuery(c Criteria) url.Values {
	v := url.Values{}
	if c.Category != "" {
		v.Set(ParamCategory, string(c.Category))
	}
	if c.Retailer != "" {
		v.Set(ParamRetailer, c.Retailer)
	}
	if c.Condition != "" {
		v.Set(ParamCondition, c.Condition)
	}
	if c.Sort != DefaultSort {
		v.Set(ParamSort, c.Sort.String())
	}
	if c.Search != "" {
		v.Set(ParamSearch, c.Search)
	}
	return v
}

// DecodeQuery rebuilds criteria from URL query values. Values that match no
// known option are treated as "no filter" and an invalid sort falls back to
// DefaultSort. Unknown keys are ignored. The second result reports whether
// any recognized parameter was present.
func DecodeQuery(v url.Values, opts Options) (Criteria, bool) {
	c := DefaultCriteria()
	if cat, ok := opts.Category(v.Get(ParamCategory)); ok {
		c.Category = cat
	}
	if r, ok := opts.Retailer(v.Get(ParamRetailer)); ok {
		c.Retailer = r
	}
	if cond, ok := opts.Condition(v.Get(ParamCondition)); ok {
		c.Condition = cond
	}
	if s := v.Get(ParamSort); s != "" {
		c.Sort, _ = ParseSortOrder(s)
	}
	c.Search = v.Get(ParamSearch)

	return c, hasRecognized(v)
}

// QueryString returns the encoded query for c without the leading "?".
func QueryString(c Criteria) string {
	return EncodeQuery(c).Encode()
}

func hasRecognized(v url.Values) bool {
	for _, p := range recognizedParams {
		if v.Get(p) != "" {
			return true
		}
	}
	return false
}
