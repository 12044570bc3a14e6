package zone

import (
	"math"
	"sort"

	"marketplace/internal/entities"
)

const earthRadiusKm = 6371.0

type Calculator struct{}

func NewCalculator() *Calculator {
	return &Calculator{}
}

func (c *Calculator) Calculate(vendorLoc, customerLoc entities.GeoPoint, zones []entities.DeliveryZone) entities.ZoneQuote {
	distance := HaversineKm(vendorLoc.Lat, vendorLoc.Lng, customerLoc.Lat, customerLoc.Lng)

	active := make([]entities.DeliveryZone, 0, len(zones))
	for _, z := range zones {
		if z.Active {
			active = append(active, z)
		}
	}
	sort.Slice(active, func(i, j int) bool {
		return active[i].MinKm < active[j].MinKm
	})

	for _, z := range active {
		if distance >= z.MinKm && distance < z.MaxKm {
			return entities.ZoneQuote{
				DistanceKm:    distance,
				Fee:           z.Fee,
				EtaMinMinutes: z.EtaMinMinutes,
				EtaMaxMinutes: z.EtaMaxMinutes,
				Available:     true,
			}
		}
	}

	return entities.ZoneQuote{
		DistanceKm: distance,
		Available:  false,
		Reason:     "outside delivery range",
	}
}

// ValidateBrackets проверяет инвариант конфигурации зон вендора:
// minKm < maxKm, скобки смежные и не пересекаются.
func ValidateBrackets(zones []entities.DeliveryZone) error {
	active := make([]entities.DeliveryZone, 0, len(zones))
	for _, z := range zones {
		if z.Active {
			active = append(active, z)
		}
	}
	sort.Slice(active, func(i, j int) bool {
		return active[i].MinKm < active[j].MinKm
	})

	for i, z := range active {
		if z.MinKm >= z.MaxKm {
			return ErrInvalidBracket
		}
		if i > 0 && active[i-1].MaxKm != z.MinKm {
			return ErrBracketsNotContiguous
		}
	}
	return nil
}

// HaversineKm — расстояние по дуге большого круга в километрах.
func HaversineKm(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := degreesToRadians(lat2 - lat1)
	dLng := degreesToRadians(lng2 - lng1)

	rLat1 := degreesToRadians(lat1)
	rLat2 := degreesToRadians(lat2)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(rLat1)*math.Cos(rLat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

func degreesToRadians(deg float64) float64 {
	return deg * math.Pi / 180.0
}
