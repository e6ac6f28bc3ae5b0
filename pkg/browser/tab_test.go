package browser

// Compile-time checks that the live tab satisfies both pipeline seams.
// A signature drift in tab.go (Navigate, Reload, the Document methods)
// breaks the build here before any behavioral test runs.
var (
	_ Document  = (*Tab)(nil)
	_ Document  = (*StaticPage)(nil)
	_ navigator = (*Tab)(nil)
)
