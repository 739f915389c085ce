package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/fantravel1/cheapretreats-sub001/internal/database"
	"github.com/fantravel1/cheapretreats-sub001/internal/model"
)

// Table names read by SurrealSource.
const (
	TableLocation     = "location"
	TableRetreatType  = "retreat_type"
	TableNeedCategory = "need_category"
	TableRetreat      = "retreat"
)

// definitionsQuery reads all four tables in one round trip. Each table keeps
// definition order in an integer ordinal field.
const definitionsQuery = `
SELECT * FROM location ORDER BY ordinal ASC;
SELECT * FROM retreat_type ORDER BY ordinal ASC;
SELECT * FROM need_category ORDER BY ordinal ASC;
SELECT * FROM retreat ORDER BY ordinal ASC;
`

// SurrealSource reads definitions from SurrealDB tables.
type SurrealSource struct {
	db database.Database
}

// NewSurrealSource creates a source over an already connected database.
func NewSurrealSource(db database.Database) *SurrealSource {
	return &SurrealSource{db: db}
}

// Name implements Source.
func (s *SurrealSource) Name() string {
	return "surrealdb"
}

// Load implements Source.
func (s *SurrealSource) Load(ctx context.Context) (*model.Definitions, error) {
	results, err := s.db.Query(ctx, definitionsQuery, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: querying definitions: %v", ErrSource, err)
	}
	if len(results) != 4 {
		return nil, fmt.Errorf("%w: expected 4 result sets, got %d", ErrSource, len(results))
	}

	defs := &model.Definitions{}
	for _, row := range statementRows(results[0]) {
		defs.Locations = append(defs.Locations, parseLocation(row))
	}
	for _, row := range statementRows(results[1]) {
		defs.Types = append(defs.Types, parseRetreatType(row))
	}
	for _, row := range statementRows(results[2]) {
		defs.Needs = append(defs.Needs, parseNeedCategory(row))
	}
	var bad []error
	for _, row := range statementRows(results[3]) {
		r, err := parseRetreat(row)
		if err != nil {
			bad = append(bad, err)
			continue
		}
		defs.Retreats = append(defs.Retreats, r)
	}
	if len(bad) > 0 {
		return nil, fmt.Errorf("%w: %w", ErrSource, errors.Join(bad...))
	}
	return defs, nil
}

func parseLocation(m map[string]interface{}) model.Location {
	return model.Location{
		Code:        getString(m, "code"),
		Name:        getString(m, "name"),
		Region:      model.Region(getString(m, "region")),
		Description: getString(m, "description"),
		Highlights:  getStringSlice(m, "highlights"),
	}
}

func parseRetreatType(m map[string]interface{}) model.RetreatType {
	return model.RetreatType{
		Slug:        getString(m, "slug"),
		Name:        getString(m, "name"),
		Icon:        getString(m, "icon"),
		Description: getString(m, "description"),
	}
}

func parseNeedCategory(m map[string]interface{}) model.NeedCategory {
	n := model.NeedCategory{
		Slug:         getString(m, "slug"),
		Title:        getString(m, "title"),
		Headline:     getString(m, "headline"),
		Subtitle:     getString(m, "subtitle"),
		Description:  getString(m, "description"),
		WhatToExpect: getStringSlice(m, "what_to_expect"),
		WhoItsFor:    getStringSlice(m, "who_its_for"),
		Related:      getStringSlice(m, "related"),
	}
	if theme := getMap(m, "theme"); theme != nil {
		n.Theme = model.Theme{
			Accent:   getString(theme, "accent"),
			Gradient: getString(theme, "gradient"),
			Icon:     getString(theme, "icon"),
		}
	}
	if samples, ok := m["samples"].([]interface{}); ok {
		for _, item := range samples {
			sm, ok := item.(map[string]interface{})
			if !ok {
				continue
			}
			n.Samples = append(n.Samples, model.NeedSample{
				Name:  getString(sm, "name"),
				Place: getString(sm, "place"),
				Price: getInt(sm, "price"),
				Note:  getString(sm, "note"),
			})
		}
	}
	return n
}

// parseRetreat rejects a row whose price is missing or not a whole number;
// defaulting it would list the retreat as free.
func parseRetreat(m map[string]interface{}) (model.Retreat, error) {
	price, ok := lookupInt(m, "price")
	if !ok {
		return model.Retreat{}, fmt.Errorf("retreat %q: price %v is not a whole number", getString(m, "name"), m["price"])
	}
	return model.Retreat{
		Name:         getString(m, "name"),
		Country:      getString(m, "country"),
		Price:        price,
		Scholarship:  getBool(m, "scholarship"),
		SlidingScale: getBool(m, "sliding_scale"),
		WorkExchange: getBool(m, "work_exchange"),
		CommunityRun: getBool(m, "community_run"),
		Duration:     getString(m, "duration"),
		Type:         getString(m, "type"),
		Tags:         getStringSlice(m, "tags"),
		Description:  getString(m, "description"),
		Website:      getString(m, "website"),
	}, nil
}
