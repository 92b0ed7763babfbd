package utils

const (
	// PageParamKey is the key for the 1-based page number used in pagination query parameters.
	PageParamKey = "page"

	// SizeParamKey is the key for the page size used in pagination query parameters.
	SizeParamKey = "size"
)
