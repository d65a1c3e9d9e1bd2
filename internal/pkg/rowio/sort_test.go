package rowio

import (
	"errors"
	"testing"

	"github.com/bcongdon/rowflow"
	"github.com/stretchr/testify/assert"
)

func TestSortRows(t *testing.T) {
	rows := []rowflow.Row{
		rowflow.MustRowOf(map[string]interface{}{"player_id": 3, "game_id": 1}),
		rowflow.MustRowOf(map[string]interface{}{"player_id": 1, "game_id": 2}),
		rowflow.MustRowOf(map[string]interface{}{"player_id": 1, "game_id": 3}),
		rowflow.MustRowOf(map[string]interface{}{"player_id": 2, "game_id": 4}),
	}

	assert.Nil(t, SortRows(rows, []string{"player_id"}))

	gameIDs := make([]int64, len(rows))
	for i, row := range rows {
		gameIDs[i], _ = row["game_id"].AsInt()
	}
	assert.Equal(t, []int64{2, 3, 4, 1}, gameIDs)
}

func TestSortRowsMissingKey(t *testing.T) {
	rows := []rowflow.Row{
		{"a": rowflow.Int(1)},
		{"b": rowflow.Int(2)},
	}

	err := SortRows(rows, []string{"a"})
	var schemaErr *rowflow.SchemaError
	assert.True(t, errors.As(err, &schemaErr))
	assert.Equal(t, "a", schemaErr.Column)
}
