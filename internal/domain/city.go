package domain

import "fmt"

// Schema records which optional columns a city's trip data provides.
// It is fixed per city rather than discovered by probing loaded rows.
type Schema struct {
	HasGender    bool
	HasBirthYear bool
}

// City is one entry of the fixed city table.
type City struct {
	// Name is the lowercase name the user types at the city prompt.
	Name string
	// File is the CSV file name, relative to the configured data directory.
	File   string
	Schema Schema
}

// Cities is the fixed table of supported cities, in prompt order.
var Cities = []City{
	{Name: "chicago", File: "chicago.csv", Schema: Schema{HasGender: true, HasBirthYear: true}},
	{Name: "new york city", File: "new_york_city.csv", Schema: Schema{HasGender: true, HasBirthYear: true}},
	{Name: "washington", File: "washington.csv"},
}

// LookupCity returns the table entry whose Name equals name exactly.
// Returns ErrNotFound for any other value.
func LookupCity(name string) (City, error) {
	for _, c := range Cities {
		if c.Name == name {
			return c, nil
		}
	}
	return City{}, fmt.Errorf("%w: city %q", ErrNotFound, name)
}
