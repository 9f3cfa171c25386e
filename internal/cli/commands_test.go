package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeforestation_SingleValue(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "explicit_year",
			args: []string{"deforestation", "Brazil", "--year", "2020"},
			want: "Annual change in forest area for Brazil in 2020: -2,628,412.50 ha\n",
		},
		{
			name: "latest_year_for_entity",
			args: []string{"deforestation", "brazil"},
			want: "Annual change in forest area for Brazil in 2025: -3,256,050 ha\n",
		},
		{
			name: "accent_insensitive",
			args: []string{"deforestation", "cote d ivoire", "--year", "2020"},
			want: "Annual change in forest area for Côte d'Ivoire in 2020: -27,000 ha\n",
		},
		{
			name: "aggregate_with_flag",
			args: []string{"deforestation", "World", "--include-aggregates"},
			want: "Annual change in forest area for World in 2020: -4,740,000 ha\n",
		},
		{
			name: "decimals",
			args: []string{"deforestation", "Brazil", "--year", "2020", "--decimals", "1"},
			want: "Annual change in forest area for Brazil in 2020: -2,628,412.5 ha\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, stderr, err := execute(t, tt.args...)
			require.NoError(t, err, stderr)
			assert.Equal(t, tt.want, stdout)
		})
	}
}

func TestDeforestation_List(t *testing.T) {
	stdout, _, err := execute(t, "deforestation", "--year", "2020", "--top", "3")
	require.NoError(t, err)
	assert.Equal(t, "Top 3 entities for Annual change in forest area in 2020 (order=loss, countries only):\n"+
		"1. Brazil: -2,628,412.50 ha\n"+
		"2. Angola: -510,031.25 ha\n"+
		"3. Canada: -41,000 ha\n", stdout)
}

func TestDeforestation_ListDefaultsToLatestYear(t *testing.T) {
	stdout, _, err := execute(t, "deforestation")
	require.NoError(t, err)
	assert.Equal(t, "Top 1 entities for Annual change in forest area in 2025 (order=loss, countries only):\n"+
		"1. Brazil: -3,256,050 ha\n", stdout)
}

func TestDeforestation_ListIncludingAggregates(t *testing.T) {
	stdout, _, err := execute(t, "deforestation", "--year", "2020", "--top", "2", "--include-aggregates")
	require.NoError(t, err)
	assert.Equal(t, "Top 2 entities for Annual change in forest area in 2020 (order=loss, including aggregates):\n"+
		"1. World: -4,740,000 ha\n"+
		"2. Africa: -3,900,000 ha\n", stdout)
}

func TestDeforestation_Errors(t *testing.T) {
	tests := []struct {
		name       string
		args       []string
		wantStderr string
	}{
		{
			name:       "no_data_for_year",
			args:       []string{"deforestation", "Canada", "--year", "2025"},
			wantStderr: "Error [E005]: No forest change data for Canada in 2025.\n",
		},
		{
			name:       "no_rows_for_list_year",
			args:       []string{"deforestation", "--year", "1990"},
			wantStderr: "Error [E005]: No forest change data found for year 1990.\n",
		},
		{
			name:       "year_zero_is_named",
			args:       []string{"deforestation", "--year", "0"},
			wantStderr: "Error [E005]: No forest change data found for year 0.\n",
		},
		{
			name:       "aggregate_hidden_by_default",
			args:       []string{"deforestation", "World"},
			wantStderr: "Error [E004]: Unknown entity name.\n",
		},
		{
			name:       "typo_gets_suggestion",
			args:       []string{"deforestation", "Brazl"},
			wantStderr: "Error [E004]: Unknown entity name. Did you mean one of: Brazil\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, stderr, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.Equal(t, ExitCommandError, GetExitCode(err))
			assert.Empty(t, stdout)
			assert.Equal(t, tt.wantStderr, stderr)
		})
	}
}

func TestCO2_SingleValue(t *testing.T) {
	stdout, _, err := execute(t, "co2", "Canada", "--year", "2021")
	require.NoError(t, err)
	assert.Equal(t, "Annual CO₂ emissions (per capita) for Canada in 2021: 13.98 t/person\n", stdout)
}

func TestCO2_SingleValueLatestYear(t *testing.T) {
	stdout, _, err := execute(t, "co2", "kuwait", "--include-aggregates")
	require.NoError(t, err)
	assert.Equal(t, "Annual CO₂ emissions (per capita) for Kuwait in 2022: 22.40 t/person\n", stdout)
}

func TestCO2_List(t *testing.T) {
	stdout, _, err := execute(t, "co2", "--year", "2020")
	require.NoError(t, err)
	assert.Equal(t, "Top 4 entities for Annual CO₂ emissions (per capita) in 2020 (countries only):\n"+
		"1. Canada: 13.73 t/person\n"+
		"2. China: 7.99 t/person\n"+
		"3. Brazil: 2.10 t/person\n"+
		"4. Angola: 0.60 t/person\n", stdout)
}

func TestCO2_ListIncludingAggregates(t *testing.T) {
	stdout, _, err := execute(t, "co2", "--year", "2020", "--top", "3", "--include-aggregates")
	require.NoError(t, err)
	assert.Equal(t, "Top 3 entities for Annual CO₂ emissions (per capita) in 2020 (including aggregates):\n"+
		"1. Qatar: 36.15 t/person\n"+
		"2. Bahrain: 25.24 t/person\n"+
		"3. Kuwait: 20.10 t/person\n", stdout)
}

func TestCO2_ListIgnoresOrder(t *testing.T) {
	stdout, _, err := execute(t, "co2", "--year", "2020", "--top", "1", "--order", "loss")
	require.NoError(t, err)
	assert.Contains(t, stdout, "1. Canada: 13.73 t/person\n")
}

func TestCO2_CountryRestrictionUsesForestDataset(t *testing.T) {
	_, stderr, err := execute(t, "co2", "Qatar", "--year", "2020")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, stderr, "Error [E004]: Unknown entity name.")
}

func TestRanking_Entity(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "countries_only",
			args: []string{"ranking", "Brazil", "--year", "2020"},
			want: "Brazil rank in 2020 (Annual change in forest area, order=loss): 1 of 6 | value: -2,628,412.50 ha\n",
		},
		{
			name: "including_aggregates",
			args: []string{"ranking", "Brazil", "--year", "2020", "--include-aggregates"},
			want: "Brazil rank in 2020 (Annual change in forest area, order=loss): 3 of 8 | value: -2,628,412.50 ha\n",
		},
		{
			name: "gain_order",
			args: []string{"ranking", "India", "--year", "2020", "--order", "gain"},
			want: "India rank in 2020 (Annual change in forest area, order=gain): 2 of 6 | value: 266,250 ha\n",
		},
		{
			name: "latest_year_for_entity",
			args: []string{"ranking", "Angola"},
			want: "Angola rank in 2020 (Annual change in forest area, order=loss): 2 of 6 | value: -510,031.25 ha\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, stderr, err := execute(t, tt.args...)
			require.NoError(t, err, stderr)
			assert.Equal(t, tt.want, stdout)
		})
	}
}

func TestRanking_List(t *testing.T) {
	stdout, _, err := execute(t, "ranking", "--year", "2020", "--order", "gain", "--top", "2")
	require.NoError(t, err)
	assert.Equal(t, "Forest change ranking for 2020 (order=gain, countries only):\n"+
		"1. China: 1,936,788 ha\n"+
		"2. India: 266,250 ha\n", stdout)
}

func TestRanking_TopZero(t *testing.T) {
	stdout, _, err := execute(t, "ranking", "--year", "2020", "--top", "0")
	require.NoError(t, err)
	assert.Equal(t, "Forest change ranking for 2020 (order=loss, countries only):\n", stdout)
}

func TestEntities(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "forest_countries",
			args: []string{"entities"},
			want: "Angola\nBrazil\nCanada\nChina\nCôte d'Ivoire\nIndia\n",
		},
		{
			name: "co2_countries",
			args: []string{"entities", "--dataset", "co2"},
			want: "Angola\nBrazil\nCanada\nChina\n",
		},
		{
			name: "co2_including_aggregates",
			args: []string{"entities", "--dataset", "co2", "--include-aggregates"},
			want: "Angola\nBahrain\nBrazil\nCanada\nChina\nHigh-income countries\nKuwait\nQatar\nWorld\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, stderr, err := execute(t, tt.args...)
			require.NoError(t, err, stderr)
			assert.Equal(t, tt.want, stdout)
		})
	}
}

func TestEntities_InvalidDataset(t *testing.T) {
	_, stderr, err := execute(t, "entities", "--dataset", "ozone")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, stderr, `invalid dataset "ozone"`)
}

func TestMissingDataDir(t *testing.T) {
	out, errOut, err := executeIn(t, t.TempDir(), "deforestation", "Brazil")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Empty(t, out)
	assert.Contains(t, errOut, "Error [E002]: CSV file not found:")
	assert.Contains(t, errOut, "annual-change-forest-area.csv")
}

func TestJSONOutput(t *testing.T) {
	stdout, stderr, err := execute(t, "ranking", "Brazil", "--year", "2020", "--format", "json")
	require.NoError(t, err)
	assert.Empty(t, stderr)

	var resp struct {
		Status  string     `json:"status"`
		Data    RankResult `json:"data"`
		TraceID string     `json:"trace_id"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "q-1", resp.TraceID)
	assert.Equal(t, RankResult{
		Dataset: "forest",
		Metric:  "Annual change in forest area",
		Unit:    "ha",
		Order:   "loss",
		Entity:  "Brazil",
		Year:    2020,
		Rank:    1,
		Total:   6,
		Value:   -2628412.5,
	}, resp.Data)
}

func TestJSONOutput_Error(t *testing.T) {
	stdout, stderr, err := execute(t, "co2", "Atlantis", "--format", "json")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Empty(t, stderr)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp))
	assert.Equal(t, "error", resp.Status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, ErrCodeUnknownEntity, resp.Error.Code)
	assert.Equal(t, "q-1", resp.TraceID)
}

func TestTableOutput(t *testing.T) {
	stdout, _, err := execute(t, "co2", "--year", "2020", "--format", "table", "--top", "2")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Top 2 entities for Annual CO₂ emissions (per capita) in 2020 (countries only):\n")
	assert.Contains(t, stdout, "Canada")
	assert.Contains(t, stdout, "13.73")
	assert.NotContains(t, stdout, "Angola")
}

func TestTableOutput_SingleValueIsText(t *testing.T) {
	stdout, _, err := execute(t, "co2", "Canada", "--year", "2021", "--format", "table")
	require.NoError(t, err)
	assert.Equal(t, "Annual CO₂ emissions (per capita) for Canada in 2021: 13.98 t/person\n", stdout)
}
