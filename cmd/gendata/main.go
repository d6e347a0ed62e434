// Command gendata writes a daily_waste_data.csv with twelve days of
// realistic city-wide collection totals. Three of the days are collection
// days where the accumulated amounts drop sharply.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"
)

const (
	days           = 12
	collectionDays = 3

	// Base daily amounts (kg) for a mid-size city
	baseOrganicKg    = 120.0
	baseRecyclableKg = 80.0
	baseHazardousKg  = 25.0
)

func main() {
	out := flag.String("out", "daily_waste_data.csv", "output CSV path")
	start := flag.String("start", "", "first date (YYYY-MM-DD), defaults to 12 days ago")
	flag.Parse()

	startDate := time.Now().AddDate(0, 0, -days)
	if *start != "" {
		parsed, err := time.Parse("2006-01-02", *start)
		if err != nil {
			log.Fatalf("invalid -start date: %v", err)
		}
		startDate = parsed
	}

	// Pick the collection days
	collection := map[int]bool{}
	for len(collection) < collectionDays {
		collection[rand.Intn(days)] = true
	}

	file, err := os.Create(*out)
	if err != nil {
		log.Fatalf("failed to create %s: %v", *out, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write([]string{"date", "total_organic_kg", "total_recyclable_kg", "total_hazardous_kg"}); err != nil {
		log.Fatalf("failed to write header: %v", err)
	}

	for i := 0; i < days; i++ {
		date := startDate.AddDate(0, 0, i).Format("2006-01-02")

		// Collection days drop to 20-40% of normal; other days vary 70-130%
		low, high := 0.7, 1.3
		if collection[i] {
			low, high = 0.2, 0.4
		}

		record := []string{
			date,
			amount(baseOrganicKg, low, high),
			amount(baseRecyclableKg, low, high),
			amount(baseHazardousKg, low, high),
		}
		if err := writer.Write(record); err != nil {
			log.Fatalf("failed to write row for %s: %v", date, err)
		}

		if collection[i] {
			log.Printf("🚛 %s: collection day (lower amounts)", date)
		}
	}

	log.Printf("✅ Generated %s with %d days of data starting %s", *out, days, startDate.Format("2006-01-02"))
}

// amount renders a random value between base*low and base*high with one
// decimal place.
func amount(base, low, high float64) string {
	v := base*low + rand.Float64()*base*(high-low)
	return fmt.Sprintf("%.1f", v)
}
