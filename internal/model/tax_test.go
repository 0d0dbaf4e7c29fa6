package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseApplyScope(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    ApplyScope
		wantErr bool
	}{
		{name: "all", input: "all", want: ApplyAll},
		{name: "some", input: "some", want: ApplySome},
		{name: "unknown", input: "most", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "case sensitive", input: "ALL", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseApplyScope(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTaxSubmission_MarshalJSON(t *testing.T) {
	sub := TaxSubmission{Name: "VAT", Rate: 20, AppliedTo: ApplySome}

	data, err := json.Marshal(sub)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"VAT","rate":20,"search":"","applied_to":"some","applicable_items":[]}`, string(data))

	sub.ApplicableItems = []int{3, 1}
	data, err = json.Marshal(sub)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"VAT","rate":20,"search":"","applied_to":"some","applicable_items":[3,1]}`, string(data))
}

func TestItem_CategoryName(t *testing.T) {
	assert.Equal(t, "", Item{ID: 1, Name: "Loose"}.CategoryName())
	assert.Equal(t, "Food", Item{ID: 2, Name: "Bread", Category: &ItemCategory{Name: "Food"}}.CategoryName())
}
