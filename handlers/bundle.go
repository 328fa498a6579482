package handlers

// HandlerBundle groups the API's handlers for route registration.
type HandlerBundle struct {
	Catalog *CatalogHandler
	Booking *BookingHandler
	Auth    *AuthHandler
	Admin   *AdminHandler
}
