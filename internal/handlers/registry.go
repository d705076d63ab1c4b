package handlers

// AppHandlers bundles every HTTP handler for route registration.
type AppHandlers struct {
	AccountHandler *AccountHandler
	AuthHandler    *AuthHandler
	PostHandler    *PostHandler
}
