package usecase

import (
	"github.com/kirimkilat/kirimkilat/internal/pkg/models"
	"github.com/kirimkilat/kirimkilat/internal/utils"
)

// resolveAreas returns every active service area whose boundary contains the
// point. Zones may overlap, so all matches are returned; the engine picks one.
func resolveAreas(point models.Coordinate, areas []models.ServiceArea) []models.ServiceArea {
	matches := make([]models.ServiceArea, 0, 2)
	for _, area := range areas {
		if !area.IsActive {
			continue
		}
		if utils.PointInPolygon(point, area.Boundary) {
			matches = append(matches, area)
		}
	}
	return matches
}
