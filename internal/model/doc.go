// Package model defines the domain entities of the retreat directory.
//
// Everything in here is plain data: retreats, the three taxonomies they are
// browsed by (locations, retreat types, need categories), the derived price
// tiers, and the RFC 9457 problem type returned by the read API.
//
// # Domain Entities
//
//   - Retreat: one listing, keyed at runtime by its generated slug
//   - Location: a country entry keyed by code, routed by the slug of its name
//   - RetreatType: a modality such as "Silent Retreat", keyed by slug
//   - NeedCategory: an editorial "what you need" page, keyed by slug
//   - Definitions: the raw load unit read by a data source
//
// # Validation
//
// Each entity validates its own fields and reports problems as FieldError
// values. Cross-entity checks (foreign keys, uniqueness, slug collisions)
// belong to the catalog builder, which sees the whole data set:
//
//	if errs := loc.Validate(); len(errs) > 0 {
//	    // reject the definition
//	}
//
// # Price Tiers
//
// Tiers are not stored. They are a fixed partition of the price axis declared
// once in tier.go:
//
//	tier, ok := model.TierForPrice(500) // tier.ID == model.Tier500To749
package model
