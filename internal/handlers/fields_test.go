package handlers

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlexLines_SplitsTextareaString(t *testing.T) {
	var f FlexLines
	err := json.Unmarshal([]byte(`"2 eggs\n 1 cup flour \n\npinch of salt"`), &f)
	assert.NoError(t, err)
	assert.Equal(t, FlexLines{"2 eggs", "1 cup flour", "pinch of salt"}, f)
}

func TestFlexLines_KeepsArrayVerbatim(t *testing.T) {
	var f FlexLines
	err := json.Unmarshal([]byte(`["2 eggs", " 1 cup flour "]`), &f)
	assert.NoError(t, err)
	assert.Equal(t, FlexLines{"2 eggs", " 1 cup flour "}, f)
}

func TestFlexLines_RejectsNonStringElements(t *testing.T) {
	var f FlexLines
	err := json.Unmarshal([]byte(`[1, 2]`), &f)
	assert.Error(t, err)
}

func TestFlexCSV_SplitsCommaString(t *testing.T) {
	var f FlexCSV
	err := json.Unmarshal([]byte(`"breakfast, high-protein ,"`), &f)
	assert.NoError(t, err)
	assert.Equal(t, FlexCSV{"breakfast", "high-protein"}, f)
}

func TestFlexCSV_AcceptsArray(t *testing.T) {
	var f FlexCSV
	err := json.Unmarshal([]byte(`["breakfast", "vegan"]`), &f)
	assert.NoError(t, err)
	assert.Equal(t, FlexCSV{"breakfast", "vegan"}, f)
}

func TestFlexCSV_EmptyStringYieldsNoTags(t *testing.T) {
	var f FlexCSV
	err := json.Unmarshal([]byte(`""`), &f)
	assert.NoError(t, err)
	assert.Empty(t, f)
}
