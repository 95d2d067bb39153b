package services

// pageOffset converts a 1-based page number into a row offset. Non-positive
// pages count as the first page; a non-positive perPage disables paging.
func pageOffset(page, perPage int) int {
	if page < 1 || perPage <= 0 {
		return 0
	}
	return (page - 1) * perPage
}
