package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fantravel1/cheapretreats-sub001/internal/database"
	"github.com/fantravel1/cheapretreats-sub001/internal/model"
	"github.com/fantravel1/cheapretreats-sub001/internal/testing/fixtures"
	"github.com/fantravel1/cheapretreats-sub001/internal/testing/testdb"
)

var _ database.Database = (*fakeDB)(nil)

// fakeDB returns canned statement responses.
type fakeDB struct {
	results []interface{}
	err     error
	queries []string
}

func (f *fakeDB) Connect(context.Context) error { return nil }
func (f *fakeDB) Close() error                  { return nil }
func (f *fakeDB) Ping(context.Context) error    { return nil }

func (f *fakeDB) Query(_ context.Context, query string, _ map[string]interface{}) ([]interface{}, error) {
	f.queries = append(f.queries, query)
	return f.results, f.err
}

func (f *fakeDB) Execute(ctx context.Context, query string, vars map[string]interface{}) error {
	_, err := f.Query(ctx, query, vars)
	return err
}

func okResult(rows ...interface{}) interface{} {
	return map[string]interface{}{"status": "OK", "result": rows}
}

// ============================================================================
// Unit tests against canned results
// ============================================================================

func TestSurrealSource_ParsesRows(t *testing.T) {
	t.Parallel()

	db := &fakeDB{results: []interface{}{
		okResult(map[string]interface{}{
			"id": "location:pt", "ordinal": uint64(0), "code": "PT", "name": "Portugal",
			"region": "Europe", "highlights": []interface{}{"Volunteer weeks"},
		}),
		okResult(map[string]interface{}{"slug": "silent-retreat", "name": "Silent Retreat", "icon": "🤫"}),
		okResult(map[string]interface{}{
			"slug": "burnout", "title": "Burnout",
			"related": []interface{}{"quiet"},
			"samples": []interface{}{
				map[string]interface{}{"name": "Forest Stay", "price": int64(120)},
				"not-an-object",
			},
			"theme": map[string]interface{}{"accent": "#d97706"},
		}),
		okResult(
			map[string]interface{}{
				"name": "Farm Week", "country": "PT", "price": uint64(0),
				"work_exchange": true, "community_run": true, "tags": []interface{}{"farm", 3},
			},
			map[string]interface{}{
				"name": "Quiet Week", "country": "PT", "price": float64(480),
				"type": "silent-retreat", "scholarship": true,
			},
		),
	}}

	defs, err := NewSurrealSource(db).Load(context.Background())
	require.NoError(t, err)

	want := &model.Definitions{
		Locations: []model.Location{{Code: "PT", Name: "Portugal", Region: model.RegionEurope, Highlights: []string{"Volunteer weeks"}}},
		Types:     []model.RetreatType{{Slug: "silent-retreat", Name: "Silent Retreat", Icon: "🤫"}},
		Needs: []model.NeedCategory{{
			Slug: "burnout", Title: "Burnout", Related: []string{"quiet"},
			Samples: []model.NeedSample{{Name: "Forest Stay", Price: 120}},
			Theme:   model.Theme{Accent: "#d97706"},
		}},
		Retreats: []model.Retreat{
			{Name: "Farm Week", Country: "PT", Price: 0, WorkExchange: true, CommunityRun: true, Tags: []string{"farm"}},
			{Name: "Quiet Week", Country: "PT", Price: 480, Type: "silent-retreat", Scholarship: true},
		},
	}
	if diff := cmp.Diff(want, defs, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("definitions mismatch (-want +got):\n%s", diff)
	}
	require.Len(t, db.queries, 1, "all tables are read in one round trip")
}

func TestSurrealSource_QueryError(t *testing.T) {
	t.Parallel()

	db := &fakeDB{err: database.ErrConnection}
	_, err := NewSurrealSource(db).Load(context.Background())

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSource))
}

func TestSurrealSource_WrongStatementCount(t *testing.T) {
	t.Parallel()

	db := &fakeDB{results: []interface{}{okResult(), okResult()}}
	_, err := NewSurrealSource(db).Load(context.Background())

	assert.ErrorIs(t, err, ErrSource)
}

func TestSurrealSource_MalformedPriceIsSourceError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		price interface{}
	}{
		{"missing", nil},
		{"string", "450"},
		{"fractional", float64(450.5)},
		{"bool", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			row := map[string]interface{}{"name": "Quiet Week", "country": "PT"}
			if tt.price != nil {
				row["price"] = tt.price
			}
			db := &fakeDB{results: []interface{}{okResult(), okResult(), okResult(), okResult(row)}}

			defs, err := NewSurrealSource(db).Load(context.Background())

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrSource)
			assert.Contains(t, err.Error(), "Quiet Week")
			assert.Nil(t, defs)
		})
	}
}

func TestLookupInt(t *testing.T) {
	t.Parallel()

	m := map[string]interface{}{
		"int": 7, "int64": int64(-3), "uint64": uint64(1000), "float": float64(480), "float32": float32(12),
		"frac": 1.5, "text": "12", "huge": uint64(1 << 63),
	}
	for key, want := range map[string]int{"int": 7, "int64": -3, "uint64": 1000, "float": 480, "float32": 12} {
		got, ok := lookupInt(m, key)
		if !ok || got != want {
			t.Errorf("lookupInt(%q) = %d, %v; want %d, true", key, got, ok, want)
		}
	}
	for _, key := range []string{"frac", "text", "huge", "absent"} {
		if _, ok := lookupInt(m, key); ok {
			t.Errorf("lookupInt(%q) should fail", key)
		}
	}
}

func TestSurrealSource_EmptyTables(t *testing.T) {
	t.Parallel()

	db := &fakeDB{results: []interface{}{okResult(), okResult(), okResult(), okResult()}}
	defs, err := NewSurrealSource(db).Load(context.Background())

	require.NoError(t, err)
	assert.Empty(t, defs.Locations)
	assert.Empty(t, defs.Retreats)
}

// ============================================================================
// Integration test against a real SurrealDB
// ============================================================================

func TestSurrealSource_RoundTrip(t *testing.T) {
	tdb := testdb.New(t)
	defer tdb.Close()

	want := fixtures.Definitions()
	fixtures.New(tdb.DB).SeedDefinitions(t, want)

	got, err := NewSurrealSource(tdb.DB).Load(tdb.Ctx())
	require.NoError(t, err)

	if diff := cmp.Diff(&want, got, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("definitions mismatch (-want +got):\n%s", diff)
	}
}
