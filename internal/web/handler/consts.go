package handler

const (
	// BaseLayout is the default path for layout templates.
	BaseLayout = "layouts/base"

	// RootPath is the root path of the route group.
	RootPath = "/"

	// RouterRootPath is the root path within a registered route group.
	RouterRootPath = "/"
)
