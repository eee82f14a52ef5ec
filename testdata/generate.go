//go:build ignore

// generate writes the sample fixtures used in the README examples:
// movies.csv and the same rows as movies.parquet.
//
//	go run testdata/generate.go
package main

import (
	"encoding/csv"
	"log"
	"os"
	"strconv"

	"github.com/segmentio/parquet-go"
)

type Movie struct {
	Name   string  `parquet:"name"`
	Year   int64   `parquet:"year"`
	Rating float64 `parquet:"rating"`
}

var movies = []Movie{
	{Name: "Drunken Master", Year: 1978, Rating: 7.7},
	{Name: "The Young Master", Year: 1980, Rating: 6.7},
	{Name: "Project A", Year: 1983, Rating: 7.8},
	{Name: "Police Story", Year: 1985, Rating: 8.2},
	{Name: "Armour of God", Year: 1986, Rating: 7.6},
	{Name: "Police Story 2", Year: 1988, Rating: 8.0},
	{Name: "Miracles", Year: 1989, Rating: 7.6},
	{Name: "Drunken Master II", Year: 1994, Rating: 7.6},
	{Name: "Rumble in the Bronx", Year: 1995, Rating: 6.2},
	{Name: "The Medallion", Year: 2003, Rating: 5.3},
}

func main() {
	writeCSV("movies.csv")
	writeParquet("movies.parquet")
	log.Printf("Generated movies.csv and movies.parquet with %d rows", len(movies))
}

func writeCSV(path string) {
	file, err := os.Create(path)
	if err != nil {
		log.Fatal(err)
	}
	defer file.Close()

	w := csv.NewWriter(file)
	if err := w.Write([]string{"name", "year", "rating"}); err != nil {
		log.Fatal(err)
	}
	for _, m := range movies {
		record := []string{m.Name, strconv.FormatInt(m.Year, 10), strconv.FormatFloat(m.Rating, 'f', 1, 64)}
		if err := w.Write(record); err != nil {
			log.Fatal(err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		log.Fatal(err)
	}
}

func writeParquet(path string) {
	file, err := os.Create(path)
	if err != nil {
		log.Fatal(err)
	}
	defer file.Close()

	writer := parquet.NewGenericWriter[Movie](file)
	if _, err := writer.Write(movies); err != nil {
		log.Fatal(err)
	}
	if err := writer.Close(); err != nil {
		log.Fatal(err)
	}
}
