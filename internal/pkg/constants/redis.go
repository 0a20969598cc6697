package constants

// Redis key formats
const (
	// Pricing service
	KeyServiceAreaSnapshot = "pricing:serviceareas:active"
	KeyRouteDistance       = "pricing:route:%s:%s" // Format: pricing:route:{pickup_geohash}:{delivery_geohash}
)
