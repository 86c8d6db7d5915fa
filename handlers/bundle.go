package handlers

// HandlerBundle aggregates every handler the route registry wires up.
type HandlerBundle struct {
	AdminHandler   *AdminHandler
	BookingHandler *BookingHandler
	RefundHandler  *RefundHandler
	ListingHandler *ListingHandler
	LegalHandler   *LegalHandler
}
