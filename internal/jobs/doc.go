// Package jobs keeps the served catalog fresh in the background.
//
//   - CatalogRefresher: reloads on a fixed interval
//   - SourceWatcher: reloads when the definitions file changes (fsnotify)
//
// Both drive a Reloader, normally *service.CatalogService, and both stop
// cleanly with Stop. A failed reload never interrupts serving; the service
// keeps the last good catalog.
//
//	refresher := jobs.NewCatalogRefresher(svc, 10*time.Minute, logger)
//	refresher.Start()
//	defer refresher.Stop()
package jobs
