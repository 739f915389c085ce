// Package catalog is the in-memory query engine behind every listing page.
//
// Build validates a model.Definitions value and freezes it into a Catalog:
// three taxonomy registries (locations, retreat types, need categories), the
// retreat list in definition order, and the indices every page filters by
// (country, type, price tier, flag, slug). A Catalog is never modified after
// Build returns, so any number of goroutines may read it without locking.
// Refreshing content means building a new Catalog and swapping the pointer.
//
// # Errors
//
// Only bad catalog data is an error. Build collects every integrity problem
// it finds and returns them joined, so one run reports the whole list:
//
//	cat, err := catalog.Build(defs)
//	if err != nil {
//	    var ie *catalog.IntegrityError
//	    errors.As(err, &ie) // first problem; errors.Join holds the rest
//	}
//
// Query input is never an error. An unknown country, slug, tier or flag is
// simply "no match": lookups return ok == false and filters return an empty
// slice.
//
// # Ordering
//
// Lists come back in source definition order unless a function says
// otherwise. SortByPrice breaks price ties by that same order, so output is
// identical for identical input.
package catalog
