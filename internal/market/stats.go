package market

import (
	"slices"

	"github.com/theirongolddev/automarket/internal/model"
)

// Stats computes price and age statistics for a collection. The median is the
// element at len/2 of the price-sorted list.
func Stats(c *model.Collection) model.MarketStats {
	var stats model.MarketStats
	if c == nil || c.Size() == 0 {
		return stats
	}

	prices := make([]int64, 0, c.Size())
	stats.ByDrive = make(map[model.DriveType]int)
	stats.OldestYear, stats.NewestYear = -1, -1

	for _, car := range c.All() {
		prices = append(prices, car.Price)
		stats.Total += car.Price
		stats.ByDrive[car.DriveType]++
		if stats.OldestYear < 0 || car.Year < stats.OldestYear {
			stats.OldestYear = car.Year
		}
		if car.Year > stats.NewestYear {
			stats.NewestYear = car.Year
		}
	}

	slices.Sort(prices)
	stats.Count = len(prices)
	stats.Lowest = prices[0]
	stats.Highest = prices[len(prices)-1]
	stats.Median = prices[len(prices)/2]
	return stats
}

// Prices returns the prices in collection order.
func Prices(c *model.Collection) []float64 {
	out := make([]float64, 0, c.Size())
	for _, car := range c.All() {
		out = append(out, float64(car.Price))
	}
	return out
}
