// Package helpers provides test utilities for the HTTP read API.
//
// # Requests
//
//	rec := helpers.Get(t, "/v1/retreats").
//	    WithQuery("country", "US").
//	    WithHeader("If-None-Match", etag).
//	    Do(router)
//
// # Assertions
//
//	helpers.AssertStatus(t, rec, http.StatusOK)
//	helpers.AssertProblemDetails(t, rec, http.StatusNotFound, model.ErrCodeNotFound)
//
// # Decoding
//
//	retreats := helpers.DecodeData[[]model.Retreat](t, rec)
package helpers
