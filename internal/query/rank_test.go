package query

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/ecoquery/internal/panel"
)

func TestParseOrder(t *testing.T) {
	for _, o := range ValidOrders {
		got, err := ParseOrder(string(o))
		require.NoError(t, err)
		assert.Equal(t, o, got)
	}

	for _, bad := range []string{"", "LOSS", "up", "gains"} {
		_, err := ParseOrder(bad)
		requireKind(t, err, panel.KindInvalidArgument)
		assert.Equal(t, "order must be 'loss' or 'gain'.", err.Error())
	}
}

func TestRanked_LossOrder(t *testing.T) {
	got, err := Ranked(forestFixture(), 2020, OrderLoss, 2, countriesOnly)
	require.NoError(t, err)
	assert.Equal(t, []Entry{
		{Entity: "Brazil", Value: -2628412.5},
		{Entity: "Angola", Value: -510031.25},
	}, got)
}

func TestRanked_GainOrderIncludingAggregates(t *testing.T) {
	got, err := Ranked(forestFixture(), 2020, OrderGain, 10, nil)
	require.NoError(t, err)

	names := make([]string, len(got))
	for i, e := range got {
		names[i] = e.Entity
	}
	assert.Equal(t, []string{"China", "Canada", "Angola", "Brazil", "Africa", "World"}, names)
}

func TestTopN_CO2(t *testing.T) {
	rows := []panel.CO2Row{
		co2("Canada", 2020, 13.732821),
		co2("Qatar", 2020, 36.145443),
		co2("Brazil", 2020, 2.1),
		co2("Bahrain", 2020, 25.23751),
		co2("Qatar", 2019, 38.2),
	}

	got, err := TopN(rows, 2020, 2, nil)
	require.NoError(t, err)
	assert.Equal(t, []Entry{
		{Entity: "Qatar", Value: 36.145443},
		{Entity: "Bahrain", Value: 25.23751},
	}, got)
}

func TestTopN_Boundary(t *testing.T) {
	rows := forestFixture()
	available := CountForYear(rows, 2020, countriesOnly)
	require.Equal(t, 4, available)

	for _, n := range []int{0, 1, 4, 5, 100} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			got, err := TopN(rows, 2020, n, countriesOnly)
			require.NoError(t, err)
			assert.Len(t, got, min(n, available))
		})
	}
}

func TestTopN_NoDataNamesYear(t *testing.T) {
	_, err := TopN(forestFixture(), 1800, 5, nil)
	pe := requireKind(t, err, panel.KindNoData)
	assert.Equal(t, 1800, pe.Year)
	assert.Empty(t, pe.Entity)

	_, err = TopN([]panel.CO2Row{}, 2020, 5, nil)
	requireKind(t, err, panel.KindNoData)
}

func TestTopN_NoDataNamesYearZero(t *testing.T) {
	_, err := TopN(forestFixture(), 0, 3, nil)
	pe := requireKind(t, err, panel.KindNoData)
	assert.True(t, pe.HasYear)
	assert.Equal(t, 0, pe.Year)
	assert.Equal(t, "No data found for year 0.", pe.Error())
}

func TestRanking_TieBreakIsDeterministic(t *testing.T) {
	rows := []panel.CO2Row{
		co2("Bhutan", 2020, 0),
		co2("Andorra", 2020, 0),
		co2("Chile", 2020, 0),
		co2("Zambia", 2020, 5),
	}

	for i := 0; i < 10; i++ {
		top, err := TopN(rows, 2020, 4, nil)
		require.NoError(t, err)
		assert.Equal(t, []Entry{
			{Entity: "Zambia", Value: 5},
			{Entity: "Chile", Value: 0},
			{Entity: "Bhutan", Value: 0},
			{Entity: "Andorra", Value: 0},
		}, top)

		loss, err := Ranked(rows, 2020, OrderLoss, 4, nil)
		require.NoError(t, err)
		assert.Equal(t, []Entry{
			{Entity: "Andorra", Value: 0},
			{Entity: "Bhutan", Value: 0},
			{Entity: "Chile", Value: 0},
			{Entity: "Zambia", Value: 5},
		}, loss)
	}

	r, err := RankOfEntity(rows, "bhutan", yearPtr(2020), OrderGain, nil)
	require.NoError(t, err)
	assert.Equal(t, 3, r.Rank)
}

func TestRankOfEntity(t *testing.T) {
	got, err := RankOfEntity(forestFixture(), "Brazil", yearPtr(2020), OrderLoss, countriesOnly)
	require.NoError(t, err)
	assert.Equal(t, Rank{Entity: "Brazil", Year: 2020, Rank: 1, Value: -2628412.5}, got)

	got, err = RankOfEntity(forestFixture(), "Brazil", yearPtr(2020), OrderGain, countriesOnly)
	require.NoError(t, err)
	assert.Equal(t, 4, got.Rank)

	// World and Africa outrank Brazil once aggregates are included.
	got, err = RankOfEntity(forestFixture(), "Brazil", yearPtr(2020), OrderLoss, nil)
	require.NoError(t, err)
	assert.Equal(t, 3, got.Rank)
}

func TestRankOfEntity_DefaultYear(t *testing.T) {
	got, err := RankOfEntity(forestFixture(), "Brazil", nil, OrderLoss, countriesOnly)
	require.NoError(t, err)
	assert.Equal(t, 2025, got.Year)
	assert.Equal(t, 1, got.Rank)
	assert.Equal(t, -3256050.0, got.Value)
}

func TestRankOfEntity_Errors(t *testing.T) {
	rows := forestFixture()

	_, err := RankOfEntity(rows, "Brazil", yearPtr(2020), Order("sideways"), countriesOnly)
	requireKind(t, err, panel.KindInvalidArgument)

	_, err = RankOfEntity(rows, "Narnia", yearPtr(2020), OrderLoss, countriesOnly)
	requireKind(t, err, panel.KindUnknownEntity)

	_, err = RankOfEntity(rows, "Brazil", yearPtr(1990), OrderLoss, countriesOnly)
	pe := requireKind(t, err, panel.KindNoData)
	assert.Equal(t, 1990, pe.Year)

	// The year has rows, but none for Angola.
	_, err = RankOfEntity(rows, "Angola", yearPtr(2025), OrderLoss, countriesOnly)
	pe = requireKind(t, err, panel.KindNoData)
	assert.Equal(t, "Angola", pe.Entity)
	assert.Equal(t, 2025, pe.Year)
}

func TestRankOfEntity_ConsistentWithTotal(t *testing.T) {
	rows := append(forestFixture(),
		forest("India", "IND", 2020, 266250),
		forest("Gabon", "GAB", 2020, -41000),
	)

	for _, order := range ValidOrders {
		total := CountForYear(rows, 2020, countriesOnly)
		for _, name := range UniqueEntities(YearRows(rows, 2020, countriesOnly), nil) {
			r, err := RankOfEntity(rows, name, yearPtr(2020), order, countriesOnly)
			require.NoError(t, err)
			require.LessOrEqual(t, r.Rank, total)

			ahead := 0
			for _, other := range YearRows(rows, 2020, countriesOnly) {
				if sortsAhead(other, r, order) {
					ahead++
				}
			}
			assert.Equal(t, r.Rank-1, ahead, "%s order=%s", name, order)
		}
	}
}

func sortsAhead(row panel.ForestChangeRow, r Rank, order Order) bool {
	if order == OrderLoss {
		return row.ChangeHa < r.Value || (row.ChangeHa == r.Value && row.EntityName < r.Entity)
	}
	return row.ChangeHa > r.Value || (row.ChangeHa == r.Value && row.EntityName > r.Entity)
}

func TestCountForYear(t *testing.T) {
	rows := forestFixture()
	assert.Equal(t, 6, CountForYear(rows, 2020, nil))
	assert.Equal(t, 4, CountForYear(rows, 2020, countriesOnly))
	assert.Equal(t, 0, CountForYear(rows, 1800, nil))
}
