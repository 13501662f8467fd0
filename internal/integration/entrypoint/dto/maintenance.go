// Package dto defines data transfer objects for API requests and responses.
package dto

// CleanupResponse reports what a catalog maintenance pass removed.
type CleanupResponse struct {
	ClearedReferences int `json:"cleared_references"`
	RemovedGhostItems int `json:"removed_ghost_items"`
	RemovedCategories int `json:"removed_categories"`
	RemovedLocations  int `json:"removed_locations"`
}
