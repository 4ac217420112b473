package catalog

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HerbHall/diskprices/pkg/models"
)

func TestCriteria_JSONRoundTrip(t *testing.T) {
	in := Criteria{
		Category: models.CategorySSD,
		Retailer: "Amazon",
		Search:   "990 pro",
		Sort:     SortOrder{SortByCapacity, Descending},
	}

	data, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{"category":"SSD","retailer":"Amazon","search":"990 pro","sort":"capacity-desc"}`, string(data))

	var out Criteria
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, in, out)
}

func TestSortOrder_UnmarshalText(t *testing.T) {
	tests := []struct {
		in   string
		want SortOrder
	}{
		{`"price-desc"`, SortOrder{SortByPrice, Descending}},
		{`"PRICEPERTB-ASC"`, SortOrder{SortByPricePerUnit, Ascending}},
		{`"cheapest"`, DefaultSort},
		{`""`, DefaultSort},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			var got SortOrder
			require.NoError(t, json.Unmarshal([]byte(tt.in), &got), "invalid orders fall back instead of failing")
			assert.Equal(t, tt.want, got)
		})
	}
}
